// Package catalog loads chart decks: ordered groups of charts described in YAML.
//
// The decks shipped with the binary reproduce the matrix multiplication
// benchmark plots (naive, line-by-line and parallel variants). User decks use
// the same format:
//
//	name: mydeck
//	x: &sizes [600, 1000, 1400]        # optional deck-wide x-axis
//	charts:
//	  - title: Execution Time
//	    x_label: Matrix Size (NxN)
//	    y_label: Seconds
//	    x: *sizes                      # falls back to the deck x-axis when omitted
//	    size: {width: 1000, height: 600}
//	    note: optional footnote
//	    series:
//	      - {name: C++, marker: o, line: "-", color: blue, values: [0.1, 0.4, 1.5]}
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CarlosSanchess/benchcharts/src/chartspec"
)

//go:embed decks/*.yaml
var deckFS embed.FS

// ErrUnknownDeck is returned by Load for names not shipped with the binary.
var ErrUnknownDeck = errors.New("unknown deck")

// Deck is an ordered list of charts shown or exported together.
type Deck struct {
	Name        string
	Description string
	Charts      []*chartspec.ChartSpec
}

// Titles returns the chart titles in deck order.
func (d *Deck) Titles() []string {
	out := make([]string, len(d.Charts))
	for i, c := range d.Charts {
		out[i] = c.Title()
	}
	return out
}

type deckFile struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	X           []float64   `yaml:"x"`
	Charts      []chartFile `yaml:"charts"`
}

type chartFile struct {
	Title  string       `yaml:"title"`
	XLabel string       `yaml:"x_label"`
	YLabel string       `yaml:"y_label"`
	Note   string       `yaml:"note"`
	X      []float64    `yaml:"x"`
	Size   sizeFile     `yaml:"size"`
	Series []seriesFile `yaml:"series"`
}

type sizeFile struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type seriesFile struct {
	Name   string    `yaml:"name"`
	Marker string    `yaml:"marker"`
	Line   string    `yaml:"line"`
	Color  string    `yaml:"color"`
	Values []float64 `yaml:"values"`
}

// Names lists the embedded decks, sorted.
func Names() []string {
	entries, err := deckFS.ReadDir("decks")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(out)
	return out
}

// Load returns the embedded deck with the given name.
func Load(name string) (*Deck, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	b, err := deckFS.ReadFile(path.Join("decks", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownDeck, name, strings.Join(Names(), ", "))
	}
	return Parse(bytes.NewReader(b), name)
}

// LoadFile reads a deck from a YAML file on disk.
func LoadFile(p string) (*Deck, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()
	d, err := Parse(f, strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return d, nil
}

// Parse decodes one YAML deck. source names the deck when the document has no name.
// Unknown keys are rejected so typos like "xlabel" do not silently drop data.
func Parse(r io.Reader, source string) (*Deck, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var df deckFile
	if err := dec.Decode(&df); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("deck %s: empty document", source)
		}
		return nil, fmt.Errorf("deck %s: decode yaml: %w", source, err)
	}
	if df.Name == "" {
		df.Name = source
	}
	return df.build()
}

func (df *deckFile) build() (*Deck, error) {
	if len(df.Charts) == 0 {
		return nil, fmt.Errorf("deck %s: no charts", df.Name)
	}
	d := &Deck{Name: df.Name, Description: df.Description}
	for i, cf := range df.Charts {
		x := cf.X
		if len(x) == 0 {
			x = df.X
		}
		b := chartspec.NewBuilder(cf.Title).
			XLabel(cf.XLabel).
			YLabel(cf.YLabel).
			Note(cf.Note).
			Size(cf.Size.Width, cf.Size.Height).
			X(x...)
		for _, sf := range cf.Series {
			s, err := sf.series()
			if err != nil {
				return nil, fmt.Errorf("deck %s: chart %d (%q): %w", df.Name, i, cf.Title, err)
			}
			b.Add(s)
		}
		spec, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("deck %s: chart %d: %w", df.Name, i, err)
		}
		d.Charts = append(d.Charts, spec)
	}
	return d, nil
}

func (sf seriesFile) series() (chartspec.Series, error) {
	m, err := chartspec.ParseMarker(sf.Marker)
	if err != nil {
		return chartspec.Series{}, fmt.Errorf("series %q: %w", sf.Name, err)
	}
	l, err := chartspec.ParseLineStyle(sf.Line)
	if err != nil {
		return chartspec.Series{}, fmt.Errorf("series %q: %w", sf.Name, err)
	}
	c, err := chartspec.ParseColor(sf.Color)
	if err != nil {
		return chartspec.Series{}, fmt.Errorf("series %q: %w", sf.Name, err)
	}
	return chartspec.Series{Name: sf.Name, Values: sf.Values, Marker: m, Line: l, Color: c}, nil
}
