package render

import (
	"math"
	"testing"
)

func TestNiceTicksCoverRange(t *testing.T) {
	cases := []struct {
		min, max float64
		n        int
	}{
		{600, 3000, 8},
		{600, 10240, 8},
		{0.027, 216.851, 6},
		{17330, 131991061, 6},
		{0.31, 2.85, 6},
		{-30, -10, 6},
	}
	for _, tc := range cases {
		ticks := niceTicks(tc.min, tc.max, tc.n)
		if len(ticks) < 2 {
			t.Fatalf("[%v,%v]: expected >=2 ticks, got %v", tc.min, tc.max, ticks)
		}
		if ticks[0] > tc.min || ticks[len(ticks)-1] < tc.max {
			t.Fatalf("[%v,%v]: ticks %v do not cover the data", tc.min, tc.max, ticks)
		}
		for i := 1; i < len(ticks); i++ {
			if ticks[i] <= ticks[i-1] {
				t.Fatalf("[%v,%v]: ticks not increasing: %v", tc.min, tc.max, ticks)
			}
		}
		if len(ticks) > tc.n+3 {
			t.Fatalf("[%v,%v]: too many ticks (%d) for n=%d", tc.min, tc.max, len(ticks), tc.n)
		}
	}
}

func TestNiceTicksMatrixSizes(t *testing.T) {
	got := niceTicks(600, 3000, 8)
	if got[0] != 500 || got[len(got)-1] != 3000 {
		t.Fatalf("unexpected bounds %v", got)
	}
	if step := got[1] - got[0]; step != 500 {
		t.Fatalf("expected step 500, got %v (%v)", step, got)
	}
}

func TestNiceTicksDegenerate(t *testing.T) {
	for _, v := range []float64{0, 7, -3} {
		ticks := niceTicks(v, v, 6)
		if !(ticks[0] < v && ticks[len(ticks)-1] > v) {
			t.Fatalf("flat value %v not strictly inside ticks %v", v, ticks)
		}
	}
}

func TestNiceTicksExtremeSpans(t *testing.T) {
	cases := []struct{ min, max float64 }{
		{-1e308, 1e308},
		{-math.MaxFloat64, math.MaxFloat64},
		{math.MaxFloat64, math.MaxFloat64},
		{-math.MaxFloat64, -math.MaxFloat64},
	}
	for _, tc := range cases {
		ticks := niceTicks(tc.min, tc.max, 6)
		if len(ticks) < 2 || len(ticks) > maxTicks+1 {
			t.Fatalf("[%g,%g]: unexpected tick count %d", tc.min, tc.max, len(ticks))
		}
		for i, v := range ticks {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("[%g,%g]: tick %d is %v", tc.min, tc.max, i, v)
			}
		}
		if ticks[0] > tc.min || ticks[len(ticks)-1] < tc.max {
			t.Fatalf("[%g,%g]: ticks %v do not cover the data", tc.min, tc.max, ticks)
		}
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{
		0:             "0",
		0.25:          "0.25",
		1.5:           "1.5",
		12.5:          "12.5",
		600:           "600",
		10240:         "10,240",
		1_500_000_000: "1.5G",
		20_000_000:    "20M",
		-2.5:          "-2.5",
		8e307:         "8e+307",
	}
	for in, want := range cases {
		if got := formatTick(in); got != want {
			t.Fatalf("formatTick(%v) = %q want %q", in, got, want)
		}
	}
}

func TestFitSize(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{100, 640},
		{639, 640},
		{1000, 1000},
		{2400, 2400},
	}
	for _, c := range cases {
		s := FitSize(c.in)
		if s.Width != c.wantW {
			t.Fatalf("input %d => width %d want %d", c.in, s.Width, c.wantW)
		}
		if s.Height < 384 || s.Height > 900 {
			t.Fatalf("height clamp violated for input %d => h=%d", c.in, s.Height)
		}
	}
	if s := FitSize(1000); s.Height != 600 {
		t.Fatalf("expected 5:3 at 1000px, got %+v", s)
	}
}
