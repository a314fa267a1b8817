package chartspec

import (
	"image/color"
	"testing"
)

func TestParseMarker(t *testing.T) {
	cases := map[string]Marker{
		"o": MarkerCircle, "s": MarkerSquare, "^": MarkerTriangle,
		"D": MarkerDiamond, "x": MarkerCross, "+": MarkerPlus,
		"Square": MarkerSquare, "none": MarkerNone, "": MarkerCircle,
	}
	for in, want := range cases {
		got, err := ParseMarker(in)
		if err != nil || got != want {
			t.Fatalf("ParseMarker(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParseMarker("*"); err == nil {
		t.Fatalf("expected error for unsupported marker")
	}
}

func TestParseLineStyle(t *testing.T) {
	cases := map[string]LineStyle{
		"-": LineSolid, "--": LineDashed, ":": LineDotted, "-.": LineDashDot,
		"dashed": LineDashed, "none": LineNone, "": LineSolid,
	}
	for in, want := range cases {
		got, err := ParseLineStyle(in)
		if err != nil || got != want {
			t.Fatalf("ParseLineStyle(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParseLineStyle("~"); err == nil {
		t.Fatalf("expected error for unsupported line style")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"blue", color.RGBA{0, 0, 255, 255}},
		{"Red", color.RGBA{255, 0, 0, 255}},
		{"#1f77b4", color.RGBA{0x1f, 0x77, 0xb4, 0xff}},
		{"#abc", color.RGBA{0xaa, 0xbb, 0xcc, 0xff}},
		{"#11223380", color.RGBA{0x11, 0x22, 0x33, 0x80}},
	}
	for _, tc := range cases {
		c, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		got, ok := c.RGBA()
		if !ok || got != tc.want {
			t.Fatalf("ParseColor(%q) = %v (set=%v) want %v", tc.in, got, ok, tc.want)
		}
	}
	empty, err := ParseColor("  ")
	if err != nil || !empty.IsZero() {
		t.Fatalf("empty colour should be zero, got %v %v", empty, err)
	}
	for _, bad := range []string{"blurple", "#12345", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestColorString(t *testing.T) {
	if s := RGB(255, 0, 0).String(); s != "#ff0000" {
		t.Fatalf("String() = %s", s)
	}
	if s := (Color{}).String(); s != "default" {
		t.Fatalf("zero String() = %s", s)
	}
}
