package format

import "strings"

// FormatProgressBar renders a textual progress bar of the given width.
// progress is clamped to [0, 1].
func FormatProgressBar(progress float64, width int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	if width <= 0 {
		return ""
	}
	count := int(progress * float64(width))
	var builder strings.Builder
	builder.Grow(width * 3)
	for i := 0; i < width; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// Fraction returns done/total, or 1 when total is zero.
func Fraction(done, total int) float64 {
	if total <= 0 {
		return 1.0
	}
	return float64(done) / float64(total)
}
