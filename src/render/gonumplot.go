package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/CarlosSanchess/benchcharts/src/chartspec"
)

// plotDPI converts pixel sizes to gonum's point-based lengths.
const plotDPI = 96

// PlotBackend renders with gonum/plot and draws each marker with its real glyph.
type PlotBackend struct{}

func (PlotBackend) Name() string { return "plot" }

// Build translates spec into a gonum plot.
func (PlotBackend) Build(spec *chartspec.ChartSpec) (*plot.Plot, error) {
	x := spec.X()
	series := spec.Series()

	p := plot.New()
	p.Title.Text = spec.Title()
	p.X.Label.Text = spec.XLabel()
	p.Y.Label.Text = spec.YLabel()
	p.BackgroundColor = color.White
	p.Add(plotter.NewGrid())

	xTicks := niceTicks(x[0], x[len(x)-1], 8)
	p.X.Min, p.X.Max = xTicks[0], xTicks[len(xTicks)-1]
	p.X.Tick.Marker = plot.ConstantTicks(toPlotTicks(xTicks))
	minY, maxY := seriesBounds(series)
	yTicks := niceTicks(minY, maxY, 6)
	p.Y.Min, p.Y.Max = yTicks[0], yTicks[len(yTicks)-1]
	p.Y.Tick.Marker = plot.ConstantTicks(toPlotTicks(yTicks))

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter

	for i, s := range series {
		pts := make(plotter.XYs, len(x))
		for j := range x {
			pts[j].X = x[j]
			pts[j].Y = s.Values[j]
		}
		col := plotutil.Color(i)
		if c, ok := s.Color.RGBA(); ok {
			col = c
		}
		var thumbs []plot.Thumbnailer
		if s.Line != chartspec.LineNone {
			l, err := plotter.NewLine(pts)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Name, err)
			}
			l.LineStyle.Color = col
			l.LineStyle.Width = vg.Points(1.5)
			l.LineStyle.Dashes = plotDashes(s.Line)
			p.Add(l)
			thumbs = append(thumbs, l)
		}
		if s.Marker != chartspec.MarkerNone {
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Name, err)
			}
			sc.GlyphStyle.Color = col
			sc.GlyphStyle.Radius = vg.Points(3)
			sc.GlyphStyle.Shape = plotGlyph(s.Marker)
			p.Add(sc)
			thumbs = append(thumbs, sc)
		}
		p.Legend.Add(s.Name, thumbs...)
	}
	return p, nil
}

func (b PlotBackend) Image(spec *chartspec.ChartSpec, size chartspec.Size) (image.Image, error) {
	p, err := b.Build(spec)
	if err != nil {
		return nil, err
	}
	size = size.Or(DefaultSize)
	w, h := pixelsToLength(size.Width), pixelsToLength(size.Height)
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(plotDPI), vgimg.UseBackgroundColor(color.White))
	dc := draw.New(c)
	if spec.Note() != "" {
		// leave room below the axis label for the note
		dc.Min.Y += pixelsToLength(notePadding)
	}
	p.Draw(dc)
	return drawNote(c.Image(), spec.Note()), nil
}

func (b PlotBackend) Encode(w io.Writer, spec *chartspec.ChartSpec, size chartspec.Size, format Format) error {
	switch format {
	case FormatPNG:
		img, err := b.Image(spec, size)
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	case FormatSVG, FormatPDF:
		p, err := b.Build(spec)
		if err != nil {
			return err
		}
		size = size.Or(DefaultSize)
		wt, err := p.WriterTo(pixelsToLength(size.Width), pixelsToLength(size.Height), string(format))
		if err != nil {
			return fmt.Errorf("gonum plot %q: %w", spec.Title(), err)
		}
		_, err = wt.WriteTo(w)
		return err
	}
	return fmt.Errorf("%w: %s backend cannot write %s", ErrUnsupportedFormat, b.Name(), format)
}

func pixelsToLength(px int) vg.Length {
	return vg.Length(float64(px)/plotDPI) * vg.Inch
}

func plotDashes(l chartspec.LineStyle) []vg.Length {
	switch l {
	case chartspec.LineDashed:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case chartspec.LineDotted:
		return []vg.Length{vg.Points(1.5), vg.Points(2.5)}
	case chartspec.LineDashDot:
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1.5), vg.Points(2)}
	}
	return nil
}

func plotGlyph(m chartspec.Marker) draw.GlyphDrawer {
	switch m {
	case chartspec.MarkerSquare:
		return draw.SquareGlyph{}
	case chartspec.MarkerTriangle:
		return draw.TriangleGlyph{}
	case chartspec.MarkerCross:
		return draw.CrossGlyph{}
	case chartspec.MarkerPlus:
		return draw.PlusGlyph{}
	case chartspec.MarkerDiamond:
		return diamondGlyph{}
	}
	return draw.CircleGlyph{}
}

// diamondGlyph is a filled square rotated by 45 degrees; gonum has no built-in one.
type diamondGlyph struct{}

func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.Fill(p)
}

func toPlotTicks(vals []float64) []plot.Tick {
	out := make([]plot.Tick, len(vals))
	for i, v := range vals {
		out[i] = plot.Tick{Value: v, Label: formatTick(v)}
	}
	return out
}
