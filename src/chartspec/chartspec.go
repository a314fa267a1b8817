// Package chartspec holds the description of one comparison chart: a shared
// x-axis, a title, axis labels and an ordered list of named series.
//
// A ChartSpec is built through New or a Builder, both of which validate the
// data; after that it is read-only. Accessors hand out copies.
package chartspec

import (
	"errors"
	"fmt"
	"math"
)

// Series is one named sequence of y-values plotted against the chart's x-axis.
type Series struct {
	Name   string
	Values []float64
	Marker Marker
	Line   LineStyle
	Color  Color
}

func (s Series) clone() Series {
	s.Values = append([]float64(nil), s.Values...)
	return s
}

// Size is a pixel size. Zero fields mean "renderer default".
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether neither dimension is set.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// Or fills unset dimensions from def.
func (s Size) Or(def Size) Size {
	if s.Width <= 0 {
		s.Width = def.Width
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	return s
}

// ChartSpec is the complete description of one chart.
type ChartSpec struct {
	title  string
	xLabel string
	yLabel string
	note   string
	size   Size
	x      []float64
	series []Series
}

// ValidationError reports a ChartSpec whose data cannot be drawn.
type ValidationError struct {
	Chart  string // chart title
	Series int    // index of the offending series, -1 when the chart as a whole is at fault
	Name   string // name of the offending series
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Series < 0 {
		return fmt.Sprintf("invalid chart %q: %s", e.Chart, e.Reason)
	}
	return fmt.Sprintf("invalid chart %q: series %d (%q): %s", e.Chart, e.Series, e.Name, e.Reason)
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// New validates and builds a ChartSpec. Input slices are copied.
func New(title, xLabel, yLabel string, x []float64, series ...Series) (*ChartSpec, error) {
	return NewBuilder(title).XLabel(xLabel).YLabel(yLabel).X(x...).Add(series...).Build()
}

// Title returns the chart title.
func (c *ChartSpec) Title() string { return c.title }

// XLabel returns the x-axis label.
func (c *ChartSpec) XLabel() string { return c.xLabel }

// YLabel returns the y-axis label.
func (c *ChartSpec) YLabel() string { return c.yLabel }

// Note returns the optional footnote drawn under raster output.
func (c *ChartSpec) Note() string { return c.note }

// Size returns the requested pixel size; zero fields mean renderer default.
func (c *ChartSpec) Size() Size { return c.size }

// Len returns the number of x-axis points.
func (c *ChartSpec) Len() int { return len(c.x) }

// X returns a copy of the x-axis values.
func (c *ChartSpec) X() []float64 { return append([]float64(nil), c.x...) }

// Series returns a deep copy of the series, in legend order.
func (c *ChartSpec) Series() []Series {
	out := make([]Series, len(c.series))
	for i, s := range c.series {
		out[i] = s.clone()
	}
	return out
}

// Names returns the series names in legend order.
func (c *ChartSpec) Names() []string {
	out := make([]string, len(c.series))
	for i, s := range c.series {
		out[i] = s.Name
	}
	return out
}

// Validate re-checks the invariants. Specs produced by New or Builder.Build always pass;
// a nil or zero-value ChartSpec does not.
func (c *ChartSpec) Validate() error {
	if c == nil {
		return &ValidationError{Series: -1, Reason: "nil chart"}
	}
	return validate(c.title, c.x, c.series)
}

func validate(title string, x []float64, series []Series) error {
	chartErr := func(format string, a ...interface{}) error {
		return &ValidationError{Chart: title, Series: -1, Reason: fmt.Sprintf(format, a...)}
	}
	if len(series) == 0 {
		return chartErr("no series")
	}
	if len(x) == 0 {
		return chartErr("empty x-axis")
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chartErr("x[%d] is not finite", i)
		}
		if i > 0 && v <= x[i-1] {
			return chartErr("x-axis not strictly increasing at index %d (%g after %g)", i, v, x[i-1])
		}
	}
	if math.IsInf(x[len(x)-1]-x[0], 0) {
		return chartErr("x-axis span %g..%g is too wide to draw", x[0], x[len(x)-1])
	}
	for i, s := range series {
		serr := func(format string, a ...interface{}) error {
			return &ValidationError{Chart: title, Series: i, Name: s.Name, Reason: fmt.Sprintf(format, a...)}
		}
		if len(s.Values) != len(x) {
			return serr("has %d values, x-axis has %d", len(s.Values), len(x))
		}
		for j, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return serr("value %d is not finite", j)
			}
		}
		if s.Marker == MarkerNone && s.Line == LineNone {
			return serr("neither line nor marker to draw")
		}
	}
	minY, maxY := series[0].Values[0], series[0].Values[0]
	for _, s := range series {
		for _, v := range s.Values {
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}
	if math.IsInf(maxY-minY, 0) {
		return chartErr("value span %g..%g is too wide to draw", minY, maxY)
	}
	return nil
}
