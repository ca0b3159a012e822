package tui

import (
	"testing"
)

func TestRenderSparkline_Empty(t *testing.T) {
	got := RenderSparkline(nil)
	if got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestRenderSparkline_AllZero(t *testing.T) {
	got := RenderSparkline([]float64{0, 0, 0})
	runes := []rune(got)
	for i, r := range runes {
		if r != '▁' {
			t.Errorf("index %d: expected '▁', got %c", i, r)
		}
	}
}

func TestRenderSparkline_AllMax(t *testing.T) {
	got := RenderSparkline([]float64{100, 100, 100})
	runes := []rune(got)
	for i, r := range runes {
		if r != '█' {
			t.Errorf("index %d: expected '█', got %c", i, r)
		}
	}
}

func TestRenderSparkline_Gradient(t *testing.T) {
	values := []float64{0, 14.3, 28.6, 42.9, 57.1, 71.4, 85.7, 100}
	got := RenderSparkline(values)
	runes := []rune(got)
	if len(runes) != 8 {
		t.Fatalf("expected 8 chars, got %d", len(runes))
	}
	// Should be strictly ascending
	for i := 1; i < len(runes); i++ {
		if runes[i] < runes[i-1] {
			t.Errorf("expected ascending at index %d: %c < %c", i, runes[i], runes[i-1])
		}
	}
}

func TestRenderSparkline_Clamping(t *testing.T) {
	got := RenderSparkline([]float64{-10, 150})
	runes := []rune(got)
	if runes[0] != '▁' {
		t.Errorf("negative not clamped to min: got %c", runes[0])
	}
	if runes[1] != '█' {
		t.Errorf("over-100 not clamped to max: got %c", runes[1])
	}
}

func TestRenderSparkline_MidValue(t *testing.T) {
	got := RenderSparkline([]float64{50})
	runes := []rune(got)
	// 50/100 * 7 = 3.5 -> index 3 -> '▄'
	if runes[0] != '▄' {
		t.Errorf("expected '▄' for 50%%, got %c", runes[0])
	}
}

func TestScalePercent(t *testing.T) {
	got := ScalePercent([]int{0, 1, 2, 4})
	want := []float64{0, 25, 50, 100}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestScalePercent_AllZero(t *testing.T) {
	for i, v := range ScalePercent([]int{0, 0}) {
		if v != 0 {
			t.Errorf("index %d: expected 0, got %v", i, v)
		}
	}
}
