// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySummary], [DisplayQuietResult], [DisplayTrace].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatProgressSuffix].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/dialsim/internal/orchestration"
	"github.com/agbru/dialsim/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything but the counts.
	Quiet bool
	// Input names the instruction source, recorded in the file header.
	Input string
	// Counters lists the counters that ran, recorded in the file header.
	Counters []string
}

// WriteResultToFile writes the totals of a run to config.OutputFile.
// Nothing is written when OutputFile is empty.
//
// Parameters:
//   - summary: The agreed totals.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(summary orchestration.Summary, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Dial Simulation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Input: %s\n", config.Input)
	fmt.Fprintf(file, "# Counters: %s\n", strings.Join(config.Counters, ", "))
	fmt.Fprintf(file, "# Instructions: %d\n", summary.Instructions)
	fmt.Fprintf(file, "\n")

	if summary.HasLandings {
		fmt.Fprintf(file, "landings = %d\n", summary.Landings)
	}
	if summary.HasCrossings {
		fmt.Fprintf(file, "crossings = %d\n", summary.Crossings)
	}
	return file.Close()
}

// FormatQuietResult formats the totals for quiet mode: the landing count and
// then the crossing count, one per line, omitting any that were not computed.
func FormatQuietResult(summary orchestration.Summary) string {
	var lines []string
	if summary.HasLandings {
		lines = append(lines, fmt.Sprint(summary.Landings))
	}
	if summary.HasCrossings {
		lines = append(lines, fmt.Sprint(summary.Crossings))
	}
	return strings.Join(lines, "\n")
}

// DisplayQuietResult outputs the totals in quiet mode.
func DisplayQuietResult(out io.Writer, summary orchestration.Summary) {
	if s := FormatQuietResult(summary); s != "" {
		fmt.Fprintln(out, s)
	}
}

// SaveResult writes the result file, if one is configured, and confirms it
// on out unless quiet mode is set.
func SaveResult(out io.Writer, summary orchestration.Summary, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(summary, config); err != nil {
		return err
	}
	if !config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
	}
	return nil
}
