package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/agbru/dialsim/internal/format"
	"github.com/agbru/dialsim/internal/orchestration"
	"github.com/agbru/dialsim/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for count results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the comparison summary table with
// counter names, kinds, counts and durations in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CountResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := 7 // "Counter" header length
	maxCountLen := 5
	maxDurationLen := 8
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name))
		maxCountLen = max(maxCountLen, len(humanize.Comma(int64(res.Count))))
		maxDurationLen = max(maxDurationLen, len(displayDuration(res)))
	}

	fmt.Fprintf(out, "%sCounter%s%s   %sZeros%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-7),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxCountLen-5),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		count := humanize.Comma(int64(res.Count))
		status := fmt.Sprintf("%sOK%s (%s)", ui.ColorGreen(), ui.ColorReset(), res.Kind)
		if res.Err != nil {
			count = "-"
			status = fmt.Sprintf("%sFailure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		duration := displayDuration(res)
		fmt.Fprintf(out, "%s%s%s%s   %s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			padRight("", maxCountLen-len(count)), count,
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

func displayDuration(res orchestration.CountResult) string {
	if res.Err != nil {
		return "-"
	}
	if res.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentSummary displays the final totals.
func (CLIResultPresenter) PresentSummary(summary orchestration.Summary, opts orchestration.PresentationOptions, out io.Writer) {
	DisplaySummary(summary, out)
}

// DisplaySummary writes the totals block for a run.
func DisplaySummary(summary orchestration.Summary, out io.Writer) {
	fmt.Fprintf(out, "\n--- Results ---\n")
	fmt.Fprintf(out, "Instructions processed:  %s%s%s\n",
		ui.ColorCyan(), humanize.Comma(int64(summary.Instructions)), ui.ColorReset())
	if summary.HasLandings {
		fmt.Fprintf(out, "Zero landings:           %s%s%s\n",
			ui.ColorGreen(), humanize.Comma(int64(summary.Landings)), ui.ColorReset())
	}
	if summary.HasCrossings {
		fmt.Fprintf(out, "Zero crossings:          %s%s%s\n",
			ui.ColorGreen(), humanize.Comma(int64(summary.Crossings)), ui.ColorReset())
	}
}

// CLIColorProvider implements apperrors.ColorProvider with the current theme.
type CLIColorProvider struct{}

// Red returns the error color.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset sequence.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }
