package cli

import (
	"fmt"
	"io"

	"github.com/briandowns/spinner"

	"github.com/agbru/dialsim/internal/format"
	"github.com/agbru/dialsim/internal/orchestration"
	"github.com/agbru/dialsim/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and a progress bar. Nothing is drawn when the output is not a
// terminal, so piped output stays clean.
type CLIProgressReporter struct {
	// ForceSpinner draws the spinner even when the output is not a terminal.
	ForceSpinner bool

	spinner     Spinner
	numCounters int
}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = (*CLIProgressReporter)(nil)

// Start shows the spinner if out is a terminal.
func (r *CLIProgressReporter) Start(numCounters int, out io.Writer) {
	r.numCounters = numCounters
	if !r.ForceSpinner && !ui.IsTerminal(out) {
		return
	}
	r.spinner = newSpinner(spinner.WithWriter(out))
	r.spinner.UpdateSuffix(FormatProgressSuffix("", 0))
	r.spinner.Start()
}

// Update refreshes the spinner with the overall progress across counters.
func (r *CLIProgressReporter) Update(index int, name string, done, total int) {
	if r.spinner == nil {
		return
	}
	overall := (float64(index) + format.Fraction(done, total)) / float64(max(r.numCounters, 1))
	r.spinner.UpdateSuffix(FormatProgressSuffix(name, overall))
}

// Stop halts the spinner, if one was started.
func (r *CLIProgressReporter) Stop() {
	if r.spinner == nil {
		return
	}
	r.spinner.Stop()
	r.spinner = nil
}

// FormatProgressSuffix renders the text shown after the spinner glyph.
func FormatProgressSuffix(counter string, progress float64) string {
	label := "starting"
	if counter != "" {
		label = counter
	}
	return fmt.Sprintf(" %-10s %s %3.0f%%", label, format.FormatProgressBar(progress, ProgressBarWidth), progress*100)
}
