// Package render draws a chartspec.ChartSpec into raster or vector output.
//
// Two backends exist: ChartBackend (go-chart) which is the default, and
// PlotBackend (gonum/plot) which draws true marker shapes and can emit PDF.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/CarlosSanchess/benchcharts/src/chartspec"
)

// DefaultSize matches the 10x6 inch figures of the original plots at 100 dpi.
var DefaultSize = chartspec.Size{Width: 1000, Height: 600}

// ErrUnsupportedFormat is returned when a backend cannot encode the requested format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format is an output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// ParseFormat maps a name or file extension (with or without the dot) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png", "":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Backend turns a validated ChartSpec into pixels or an encoded document.
// Callers validate the chart first; backends assume its invariants hold.
type Backend interface {
	Name() string
	// Image renders the chart at the given pixel size.
	Image(spec *chartspec.ChartSpec, size chartspec.Size) (image.Image, error)
	// Encode writes the chart in the given format.
	Encode(w io.Writer, spec *chartspec.ChartSpec, size chartspec.Size, format Format) error
}

// New returns the backend registered under name: "chart" (go-chart) or "plot" (gonum/plot).
func New(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "chart", "go-chart":
		return ChartBackend{}, nil
	case "plot", "gonum":
		return PlotBackend{}, nil
	}
	return nil, fmt.Errorf("unknown render backend %q (want chart or plot)", name)
}

// Names lists the accepted backend names.
func Names() []string { return []string{"chart", "plot"} }

// seriesBounds returns min and max over all series values.
func seriesBounds(series []chartspec.Series) (float64, float64) {
	minY, maxY := series[0].Values[0], series[0].Values[0]
	for _, s := range series {
		for _, v := range s.Values {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	return minY, maxY
}

// RedrawFunc re-renders a chart at a new size, e.g. after a window resize.
type RedrawFunc func(size chartspec.Size) (image.Image, error)
