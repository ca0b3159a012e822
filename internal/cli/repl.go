package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/dialsim/internal/dial"
	"github.com/agbru/dialsim/internal/orchestration"
	"github.com/agbru/dialsim/internal/ui"
)

// REPL is an interactive session on a single dial. Each instruction typed is
// applied immediately and its effect printed.
type REPL struct {
	factory dial.CounterFactory
	steps   []dial.Step
	in      io.Reader
	out     io.Writer
}

// NewREPL creates a new REPL with the dial at dial.StartPosition.
//
// Parameters:
//   - factory: The counters available to the "example" and "list" commands.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(factory dial.CounterFactory) *REPL {
	return &REPL{
		factory: factory,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Position returns the current dial position.
func (r *REPL) Position() int {
	if len(r.steps) == 0 {
		return dial.StartPosition
	}
	return r.steps[len(r.steps)-1].After
}

// Totals returns the landings and crossings accumulated since the last reset.
func (r *REPL) Totals() (landings, crossings int) {
	return dial.Totals(r.steps)
}

// Start begins the interactive session. It reads commands until the user
// exits, EOF is reached, or ctx is canceled.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for ctx.Err() == nil {
		fmt.Fprint(r.out, ui.ColorGreen()+fmt.Sprintf("dial[%02d]> ", r.Position())+ui.ColorReset())

		input, err := reader.ReadString('\n')
		// A final line without a newline is still processed.
		if err != nil && input == "" {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(ctx, input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sDial Simulator - Interactive Mode%s            %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sL<n> / R<n>%s   - Rotate the dial (several moves may be given)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shistory%s       - Show every move since the last reset\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexample%s       - Check every counter against the built-in example\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s          - List available counters\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sreset%s         - Return the dial to %d and clear the totals\n", ui.ColorYellow(), ui.ColorReset(), dial.StartPosition)
	fmt.Fprintf(r.out, "  %sstatus%s        - Display the position and totals\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s  - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(strings.ReplaceAll(input, ",", " "))
	if len(parts) == 0 {
		return true
	}

	switch cmd := strings.ToLower(parts[0]); cmd {
	case "history", "hist":
		r.cmdHistory()
	case "example", "ex":
		r.cmdExample(ctx)
	case "list", "ls":
		r.cmdList()
	case "reset":
		r.steps = nil
		fmt.Fprintf(r.out, "Dial reset to %s%d%s.\n", ui.ColorCyan(), dial.StartPosition, ui.ColorReset())
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.cmdMove(parts)
	}
	return true
}

// cmdMove parses every part as an instruction before applying any of them,
// so a typo leaves the dial untouched.
func (r *REPL) cmdMove(parts []string) {
	instructions, err := dial.ParseLines(parts)
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown command or bad move: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		return
	}
	for _, in := range instructions {
		before := r.Position()
		step := dial.Step{
			Index:       len(r.steps),
			Instruction: in,
			Before:      before,
			After:       dial.ApplyRotation(before, in.Direction, in.Distance),
			Crossings:   dial.CountZerosDuringRotation(before, in.Direction, in.Distance),
		}
		r.steps = append(r.steps, step)

		landed := ""
		if step.Landed() {
			landed = fmt.Sprintf(" %slanded on 0%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(r.out, "  %s%-6s%s %2d -> %s%2d%s  zeros passed: %d%s\n",
			ui.ColorYellow(), in, ui.ColorReset(), step.Before,
			ui.ColorCyan(), step.After, ui.ColorReset(), step.Crossings, landed)
	}
}

func (r *REPL) cmdHistory() {
	if len(r.steps) == 0 {
		fmt.Fprintln(r.out, "No moves yet.")
		return
	}
	if err := DisplayTrace(r.steps, r.out); err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
}

func (r *REPL) cmdExample(ctx context.Context) {
	names := r.factory.List()
	counters := make([]dial.Counter, 0, len(names))
	for _, name := range names {
		if c, err := r.factory.Get(name); err == nil {
			counters = append(counters, c)
		}
	}
	fmt.Fprintf(r.out, "Example: %s\n", strings.Join(dial.ExampleLines, ", "))
	if err := orchestration.SelfCheck(ctx, counters, orchestration.NopRecorder{}); err != nil {
		fmt.Fprintf(r.out, "%s✗ %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s✓ All %d counters agree: %d landings, %d crossings.%s\n",
		ui.ColorGreen(), len(counters), dial.ExampleLandings, dial.ExampleCrossings, ui.ColorReset())
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable counters:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.factory.List() {
		c, err := r.factory.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(r.out, "  %s%-10s%s - %s (%s)\n", ui.ColorYellow(), name, ui.ColorReset(), c.Description(), c.Kind())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStatus() {
	landings, crossings := r.Totals()
	fmt.Fprintf(r.out, "\n%sCurrent state:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Position:   %s%d%s\n", ui.ColorCyan(), r.Position(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Moves:      %s%d%s\n", ui.ColorCyan(), len(r.steps), ui.ColorReset())
	fmt.Fprintf(r.out, "  Landings:   %s%d%s\n", ui.ColorCyan(), landings, ui.ColorReset())
	fmt.Fprintf(r.out, "  Crossings:  %s%d%s\n", ui.ColorCyan(), crossings, ui.ColorReset())
	fmt.Fprintln(r.out)
}
