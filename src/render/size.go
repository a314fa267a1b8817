package render

import "github.com/CarlosSanchess/benchcharts/src/chartspec"

// FitSize applies the width/height clamp rules used when a chart follows the
// width of its window. The 5:3 aspect of the default figure is kept; height is
// clamped so very wide windows do not produce letterbox strips.
func FitSize(rawW int) chartspec.Size {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.6)
	if h < 384 {
		h = 384
	}
	if h > 900 {
		h = 900
	}
	return chartspec.Size{Width: w, Height: h}
}
