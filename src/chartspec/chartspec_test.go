package chartspec

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewSingleSeriesOK(t *testing.T) {
	c, err := New("t", "Matrix Size (NxN)", "Execution Time (seconds)",
		[]float64{600, 1000, 1400},
		Series{Name: "A", Values: []float64{0.1, 0.4, 1.5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 3 || len(c.Series()) != 1 {
		t.Fatalf("unexpected shape: len=%d series=%d", c.Len(), len(c.Series()))
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("built spec failed re-validation: %v", err)
	}
}

func TestNewRejectsShortSeries(t *testing.T) {
	_, err := New("t", "", "", []float64{600, 1000, 1400},
		Series{Name: "A", Values: []float64{0.1, 0.4}})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Series != 0 || ve.Name != "A" {
		t.Fatalf("expected series 0 (A) in error, got %+v", ve)
	}
	if !strings.Contains(ve.Error(), "has 2 values, x-axis has 3") {
		t.Fatalf("unexpected message: %s", ve.Error())
	}
}

func TestValidationCases(t *testing.T) {
	x := []float64{1, 2, 3}
	ok := Series{Name: "ok", Values: []float64{1, 2, 3}}
	cases := []struct {
		name   string
		x      []float64
		series []Series
		want   string
	}{
		{"no series", x, nil, "no series"},
		{"empty x", nil, []Series{{Name: "a"}}, "empty x-axis"},
		{"decreasing x", []float64{1, 3, 2}, []Series{ok}, "not strictly increasing"},
		{"duplicate x", []float64{1, 1, 2}, []Series{ok}, "not strictly increasing"},
		{"nan x", []float64{1, math.NaN(), 3}, []Series{ok}, "not finite"},
		{"long series", x, []Series{ok, {Name: "b", Values: []float64{1, 2, 3, 4}}}, "has 4 values"},
		{"inf value", x, []Series{{Name: "c", Values: []float64{1, math.Inf(1), 3}}}, "not finite"},
		{"wide x", []float64{-1e308, 1e308}, []Series{{Name: "e", Values: []float64{1, 2}}}, "too wide"},
		{"wide values", []float64{1, 2}, []Series{{Name: "f", Values: []float64{-1e308, 1e308}}}, "too wide"},
		{"wide across series", []float64{1, 2}, []Series{{Name: "g", Values: []float64{-1e308, 0}}, {Name: "h", Values: []float64{0, 1e308}}}, "too wide"},
		{"invisible", x, []Series{{Name: "d", Values: []float64{1, 2, 3}, Marker: MarkerNone, Line: LineNone}}, "neither line nor marker"},
	}
	for _, tc := range cases {
		_, err := New("chart", "", "", tc.x, tc.series...)
		if !IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestZeroAndNilSpecFailValidation(t *testing.T) {
	var nilSpec *ChartSpec
	if !IsValidation(nilSpec.Validate()) {
		t.Fatalf("nil spec should fail validation")
	}
	if !IsValidation((&ChartSpec{}).Validate()) {
		t.Fatalf("zero spec should fail validation")
	}
}

func TestIsValidationWrapped(t *testing.T) {
	_, err := New("t", "", "", []float64{1})
	wrapped := fmt.Errorf("deck naive: %w", err)
	if !IsValidation(wrapped) {
		t.Fatalf("wrapped validation error not detected")
	}
	if IsValidation(errors.New("plain")) {
		t.Fatalf("plain error detected as validation error")
	}
}

func TestSpecIsImmutable(t *testing.T) {
	x := []float64{1, 2}
	vals := []float64{5, 6}
	c, err := New("t", "", "", x, Series{Name: "A", Values: vals})
	if err != nil {
		t.Fatal(err)
	}
	x[0] = 100
	vals[0] = 100
	if c.X()[0] != 1 || c.Series()[0].Values[0] != 5 {
		t.Fatalf("spec aliased caller slices")
	}
	got := c.Series()
	got[0].Values[1] = 42
	gx := c.X()
	gx[1] = 42
	if c.Series()[0].Values[1] != 6 || c.X()[1] != 2 {
		t.Fatalf("accessors leaked internal slices")
	}
}

func TestBuilderOrderAndReuse(t *testing.T) {
	b := NewBuilder("GFLOPS Comparison: C++ vs Java").
		XLabel("Matrix Size (NxN)").
		YLabel("GFLOPS").
		X(600, 1000).
		Line("C++", 2.80, 2.85).
		Add(Series{Name: "Java", Values: []float64{1.70, 1.27}, Marker: MarkerSquare}).
		Note("naive").
		Size(1000, 600)
	first, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(first.Names(), ","); got != "C++,Java" {
		t.Fatalf("legend order = %s", got)
	}
	if first.Size() != (Size{Width: 1000, Height: 600}) || first.Note() != "naive" {
		t.Fatalf("size/note not carried: %+v %q", first.Size(), first.Note())
	}
	b.Line("Extra", 1, 2)
	second, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Series()) != 2 || len(second.Series()) != 3 {
		t.Fatalf("builder reuse mutated earlier spec: %d/%d", len(first.Series()), len(second.Series()))
	}
}

func TestSizeOr(t *testing.T) {
	def := Size{Width: 1000, Height: 600}
	if got := (Size{}).Or(def); got != def {
		t.Fatalf("zero size should take defaults, got %+v", got)
	}
	if got := (Size{Width: 1200}).Or(def); got != (Size{Width: 1200, Height: 600}) {
		t.Fatalf("partial size = %+v", got)
	}
}
