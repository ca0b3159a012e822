package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/dialsim/internal/config"
	"github.com/agbru/dialsim/internal/dial"
	"github.com/agbru/dialsim/internal/orchestration"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.CountResult{
		{Name: "landings", Kind: dial.KindLanding, Count: 1234, Duration: 2 * time.Millisecond},
		{Name: "stepwise", Kind: dial.KindCrossing, Count: 6, Duration: 0},
		{Name: "crossings", Kind: dial.KindCrossing, Err: errors.New("boom")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()

	for _, want := range []string{"Comparison Summary", "Counter", "Zeros", "1,234", "2ms", "< 1µs", "Failure (boom)", "OK (landings)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q, got:\n%s", want, out)
		}
	}
}

func TestDisplaySummary(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		summary  orchestration.Summary
		contains []string
		excludes []string
	}{
		{
			name:     "both counts",
			summary:  orchestration.Summary{Instructions: 4500, Landings: 3, Crossings: 6, HasLandings: true, HasCrossings: true},
			contains: []string{"4,500", "Zero landings:", "Zero crossings:"},
		},
		{
			name:     "landings only",
			summary:  orchestration.Summary{Instructions: 10, Landings: 3, HasLandings: true},
			contains: []string{"Zero landings:"},
			excludes: []string{"Zero crossings:"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			CLIResultPresenter{}.PresentSummary(tt.summary, orchestration.PresentationOptions{}, &buf)
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("summary should contain %q, got:\n%s", want, buf.String())
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(buf.String(), unwanted) {
					t.Errorf("summary should not contain %q", unwanted)
				}
			}
		})
	}
}

func TestPrintExecutionHeader(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintExecutionConfig(config.AppConfig{Input: config.StdinPath}, 10, &buf)
	PrintExecutionMode([]dial.Counter{dial.LandingCounter{}}, &buf)
	out := buf.String()
	for _, want := range []string{"Loaded 10 instructions from standard input", "100 positions", "starting at 50", "landings counter"} {
		if !strings.Contains(out, want) {
			t.Errorf("header should contain %q, got:\n%s", want, out)
		}
	}

	buf.Reset()
	PrintExecutionMode([]dial.Counter{dial.LandingCounter{}, dial.CrossingCounter{}}, &buf)
	if !strings.Contains(buf.String(), "2 counters in sequence") {
		t.Errorf("unexpected mode line: %q", buf.String())
	}
}

func TestCLIColorProvider(t *testing.T) {
	t.Parallel()
	// The plain theme is active for this package's tests.
	c := CLIColorProvider{}
	if c.Red() != "" || c.Yellow() != "" || c.Reset() != "" {
		t.Error("expected empty sequences with the plain theme")
	}
}
