package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// niceTicks returns roughly n evenly spaced tick positions on a 1/2/2.5/5 x 10^k
// grid. The first tick is <= min and the last >= max, so the ticks double as
// the axis bounds. A degenerate span (single point or flat data) is opened up
// around the value so the axis never has zero width. Spans too wide for float64
// arithmetic fall back to the bare bounds.
func niceTicks(min, max float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	if max <= min {
		pad := math.Abs(min) * 0.1
		if pad == 0 {
			pad = 1
		}
		min, max = min-pad, max+pad
	}
	span := max - min
	if !isFinite(span) {
		return boundsOnly(min, max)
	}
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	if !isFinite(start) || !isFinite(end) || !isFinite(bestStep) || bestStep <= 0 {
		return boundsOnly(min, max)
	}
	stepsF := math.Round((end - start) / bestStep)
	if !isFinite(stepsF) || stepsF < 1 || stepsF > maxTicks {
		return boundsOnly(min, max)
	}
	steps := int(stepsF)
	out := make([]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		v := roundTo(start+float64(i)*bestStep, bestStep)
		if !isFinite(v) {
			return boundsOnly(min, max)
		}
		out = append(out, v)
	}
	if len(out) < 2 {
		out = []float64{start, start + bestStep}
	}
	return out
}

// maxTicks bounds the tick count; the step search never gets close to it.
const maxTicks = 1000

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// boundsOnly is the two-tick axis used when the nice grid cannot be computed.
// Padding can push a bound past the float64 range; it is clamped back.
func boundsOnly(min, max float64) []float64 {
	return []float64{math.Max(min, -math.MaxFloat64), math.Min(max, math.MaxFloat64)}
}

// roundTo strips float noise (0.30000000000000004) relative to the tick step.
func roundTo(v, step float64) float64 {
	scale := math.Pow(10, math.Max(0, 2-math.Floor(math.Log10(step))))
	return math.Round(v*scale) / scale
}

// formatTick produces compact labels; hardware counter values in the billions
// get SI suffixes (1.5G) instead of eleven digits.
func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1e24:
		// past the SI prefix table
		return strconv.FormatFloat(v, 'g', 3, 64)
	case av >= 1_000_000:
		return strings.ReplaceAll(humanize.SIWithDigits(v, 2, ""), " ", "")
	case av >= 10_000:
		return humanize.Commaf(math.Round(v))
	case av >= 100:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case av >= 10:
		return trimZeros(strconv.FormatFloat(v, 'f', 1, 64))
	case av >= 1:
		return trimZeros(strconv.FormatFloat(v, 'f', 2, 64))
	case av >= 0.01:
		return trimZeros(strconv.FormatFloat(v, 'f', 3, 64))
	default:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
