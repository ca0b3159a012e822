package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/agbru/dialsim/internal/config"
	"github.com/agbru/dialsim/internal/dial"
	"github.com/agbru/dialsim/internal/ui"
)

// PrintExecutionConfig displays the input and dial parameters of the run.
//
// Parameters:
//   - cfg: The application configuration.
//   - instructions: The number of instructions loaded.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, instructions int, out io.Writer) {
	source := cfg.Input
	if source == config.StdinPath {
		source = "standard input"
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Loaded %s%s%s instructions from %s%s%s.\n",
		ui.ColorMagenta(), humanize.Comma(int64(instructions)), ui.ColorReset(),
		ui.ColorCyan(), source, ui.ColorReset())
	fmt.Fprintf(out, "Dial: %s%d%s positions, starting at %s%d%s.\n",
		ui.ColorCyan(), dial.DialSize, ui.ColorReset(), ui.ColorCyan(), dial.StartPosition, ui.ColorReset())
}

// PrintExecutionMode displays which counters will run.
//
// Parameters:
//   - counters: The counters that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(counters []dial.Counter, out io.Writer) {
	var modeDesc string
	switch len(counters) {
	case 0:
		modeDesc = "No counter selected"
	case 1:
		modeDesc = fmt.Sprintf("Single pass with the %s%s%s counter",
			ui.ColorGreen(), counters[0].Name(), ui.ColorReset())
	default:
		modeDesc = fmt.Sprintf("%d counters in sequence", len(counters))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
