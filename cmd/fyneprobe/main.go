// Command fyneprobe checks that chart windows can be opened on this display.
// It shows one built-in chart and closes it automatically.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/CarlosSanchess/benchcharts/src/catalog"
	"github.com/CarlosSanchess/benchcharts/src/charts"
	"github.com/CarlosSanchess/benchcharts/src/render"
	"github.com/CarlosSanchess/benchcharts/src/viewer"
)

func main() {
	var (
		deck    string
		backend string
		after   time.Duration
	)
	cmd := &cobra.Command{
		Use:          "fyneprobe",
		Short:        "Open one chart window and close it after a delay",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := catalog.Load(deck)
			if err != nil {
				return err
			}
			b, err := render.New(backend)
			if err != nil {
				return err
			}
			fmt.Printf("[fyneprobe] showing %q for %s\n", d.Charts[0].Title(), after)
			err = viewer.Run(viewer.Options{}, func(v *viewer.Viewer) error {
				ctx, cancel := context.WithTimeout(context.Background(), after)
				defer cancel()
				return charts.New(b, v).Render(ctx, d.Charts[0])
			})
			if errors.Is(err, context.DeadlineExceeded) {
				fmt.Println("[fyneprobe] closed window after timeout, exited cleanly")
				return nil
			}
			if err == nil {
				fmt.Println("[fyneprobe] window closed by user, exited cleanly")
			}
			return err
		},
	}
	cmd.Flags().StringVar(&deck, "deck", "naive", "built-in deck to take the chart from")
	cmd.Flags().StringVar(&backend, "backend", "chart", "render backend: chart or plot")
	cmd.Flags().DurationVar(&after, "after", 5*time.Second, "close the window after this long")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
