package chartspec

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Marker is the glyph drawn at every data point of a series.
type Marker int

const (
	MarkerCircle Marker = iota
	MarkerSquare
	MarkerTriangle
	MarkerCross
	MarkerPlus
	MarkerDiamond
	MarkerNone
)

var markerNames = map[string]Marker{
	"o": MarkerCircle, "circle": MarkerCircle,
	"s": MarkerSquare, "square": MarkerSquare,
	"^": MarkerTriangle, "triangle": MarkerTriangle,
	"x": MarkerCross, "cross": MarkerCross,
	"+": MarkerPlus, "plus": MarkerPlus,
	"d": MarkerDiamond, "diamond": MarkerDiamond,
	"none": MarkerNone, "": MarkerCircle,
}

// ParseMarker accepts both short codes (o, s, ^, x, +, D) and names (circle, square, ...).
// An empty string yields the default circle marker.
func ParseMarker(s string) (Marker, error) {
	m, ok := markerNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return MarkerCircle, fmt.Errorf("unknown marker %q", s)
	}
	return m, nil
}

func (m Marker) String() string {
	switch m {
	case MarkerCircle:
		return "circle"
	case MarkerSquare:
		return "square"
	case MarkerTriangle:
		return "triangle"
	case MarkerCross:
		return "cross"
	case MarkerPlus:
		return "plus"
	case MarkerDiamond:
		return "diamond"
	case MarkerNone:
		return "none"
	default:
		return "Marker(" + strconv.Itoa(int(m)) + ")"
	}
}

// LineStyle is the stroke pattern connecting consecutive points.
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDashed
	LineDotted
	LineDashDot
	LineNone
)

var lineNames = map[string]LineStyle{
	"-": LineSolid, "solid": LineSolid, "": LineSolid,
	"--": LineDashed, "dashed": LineDashed,
	":": LineDotted, "dotted": LineDotted,
	"-.": LineDashDot, "dashdot": LineDashDot,
	"none": LineNone,
}

// ParseLineStyle accepts short codes (-, --, :, -.) and names (solid, dashed, dotted, dashdot, none).
func ParseLineStyle(s string) (LineStyle, error) {
	l, ok := lineNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LineSolid, fmt.Errorf("unknown line style %q", s)
	}
	return l, nil
}

func (l LineStyle) String() string {
	switch l {
	case LineSolid:
		return "solid"
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	case LineDashDot:
		return "dashdot"
	case LineNone:
		return "none"
	default:
		return "LineStyle(" + strconv.Itoa(int(l)) + ")"
	}
}

// Color is an optional series colour. The zero value means "use the backend palette".
type Color struct {
	rgba color.RGBA
	set  bool
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{rgba: color.RGBA{R: r, G: g, B: b, A: 255}, set: true}
}

// ParseColor understands CSS/SVG colour names ("blue", "darkorange") and hex
// notation (#rgb, #rrggbb, #rrggbbaa). An empty string yields the zero Color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return Color{rgba: c, set: true}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		rgba: color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)},
		set:  true,
	}, nil
}

// IsZero reports whether no colour was configured.
func (c Color) IsZero() bool { return !c.set }

// RGBA returns the configured colour and whether one was set.
func (c Color) RGBA() (color.RGBA, bool) { return c.rgba, c.set }

func (c Color) String() string {
	if !c.set {
		return "default"
	}
	if c.rgba.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.rgba.R, c.rgba.G, c.rgba.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.rgba.R, c.rgba.G, c.rgba.B, c.rgba.A)
}
