// Command benchcharts shows and exports the matrix multiplication benchmark charts.
//
//	benchcharts list
//	benchcharts show naive parallel
//	benchcharts show --file mydeck.yaml --chart 2
//	benchcharts export --out charts --format svg --backend plot
package main

import (
	"os"

	"github.com/CarlosSanchess/benchcharts/src/logging"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
