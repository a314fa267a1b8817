package render

import (
	"strings"
	"unicode"
)

// FileName derives an export file name from a chart title:
// "GFLOPS Comparison: C++ vs Java" becomes "gflops-comparison-cpp-vs-java.png".
func FileName(title string, f Format) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case r == '+':
			b.WriteByte('p')
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		s = "chart"
	}
	return s + f.Ext()
}
