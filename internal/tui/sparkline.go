package tui

// sparklineChars maps values 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// ScalePercent maps counts onto 0..100 relative to the largest one.
// All-zero input maps to all zeros.
func ScalePercent(counts []int) []float64 {
	peak := 0
	for _, c := range counts {
		peak = max(peak, c)
	}
	scaled := make([]float64, len(counts))
	if peak == 0 {
		return scaled
	}
	for i, c := range counts {
		scaled[i] = float64(c) * 100 / float64(peak)
	}
	return scaled
}

// RenderSparkline converts values (0..100) into a sparkline string using Unicode blocks.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		idx := int(v / 100.0 * 7.0)
		if idx > 7 {
			idx = 7
		}
		runes[i] = sparklineChars[idx]
	}
	return string(runes)
}
