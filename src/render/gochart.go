package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/CarlosSanchess/benchcharts/src/chartspec"
)

// strokeHidden disables the connecting line; go-chart treats a zero width as "use default".
const strokeHidden = -1

var gridColor = drawing.ColorFromHex("dcdcdc")

// ChartBackend renders with go-chart. go-chart only draws round dots, so every
// marker other than MarkerNone becomes a dot; square markers get a larger dot
// so two series sharing a colour stay distinguishable.
type ChartBackend struct{}

func (ChartBackend) Name() string { return "chart" }

// Build translates spec into a go-chart Chart of the given size.
func (ChartBackend) Build(spec *chartspec.ChartSpec, size chartspec.Size) chart.Chart {
	size = size.Or(DefaultSize)
	x := spec.X()
	series := spec.Series()

	xTicks := niceTicks(x[0], x[len(x)-1], 8)
	minY, maxY := seriesBounds(series)
	yTicks := niceTicks(minY, maxY, 6)

	grid := chart.Style{StrokeColor: gridColor, StrokeWidth: 1}
	cs := make([]chart.Series, 0, len(series))
	for i, s := range series {
		cs = append(cs, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: x,
			YValues: s.Values,
			Style:   chartSeriesStyle(s, i),
		})
	}
	padBottom := 16
	if spec.Note() != "" {
		padBottom += notePadding
	}
	ch := chart.Chart{
		Title:      spec.Title(),
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 28, Bottom: padBottom}},
		XAxis: chart.XAxis{
			Name:           spec.XLabel(),
			Range:          &chart.ContinuousRange{Min: xTicks[0], Max: xTicks[len(xTicks)-1]},
			Ticks:          toChartTicks(xTicks),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           spec.YLabel(),
			Range:          &chart.ContinuousRange{Min: yTicks[0], Max: yTicks[len(yTicks)-1]},
			Ticks:          toChartTicks(yTicks),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: cs,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

func (b ChartBackend) Image(spec *chartspec.ChartSpec, size chartspec.Size) (image.Image, error) {
	ch := b.Build(spec, size)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("go-chart render %q: %w", spec.Title(), err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("go-chart decode %q: %w", spec.Title(), err)
	}
	return drawNote(img, spec.Note()), nil
}

func (b ChartBackend) Encode(w io.Writer, spec *chartspec.ChartSpec, size chartspec.Size, format Format) error {
	switch format {
	case FormatPNG:
		img, err := b.Image(spec, size)
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	case FormatSVG:
		ch := b.Build(spec, size)
		if err := ch.Render(chart.SVG, w); err != nil {
			return fmt.Errorf("go-chart render %q: %w", spec.Title(), err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s backend cannot write %s", ErrUnsupportedFormat, b.Name(), format)
}

func chartSeriesStyle(s chartspec.Series, index int) chart.Style {
	col := chart.GetDefaultColor(index)
	if c, ok := s.Color.RGBA(); ok {
		col = drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	st := chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
	switch s.Line {
	case chartspec.LineDashed:
		st.StrokeDashArray = []float64{6, 3}
	case chartspec.LineDotted:
		st.StrokeDashArray = []float64{2, 3}
	case chartspec.LineDashDot:
		st.StrokeDashArray = []float64{6, 2, 2, 2}
	case chartspec.LineNone:
		st.StrokeWidth = strokeHidden
	}
	switch s.Marker {
	case chartspec.MarkerNone:
		st.DotWidth = 0
	case chartspec.MarkerSquare, chartspec.MarkerDiamond:
		st.DotWidth = 5
	}
	return st
}

func toChartTicks(vals []float64) []chart.Tick {
	out := make([]chart.Tick, len(vals))
	for i, v := range vals {
		out[i] = chart.Tick{Value: v, Label: formatTick(v)}
	}
	return out
}
