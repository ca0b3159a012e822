package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/agbru/dialsim/internal/cli"
	"github.com/agbru/dialsim/internal/config"
	"github.com/agbru/dialsim/internal/dial"
	apperrors "github.com/agbru/dialsim/internal/errors"
	"github.com/agbru/dialsim/internal/logging"
	"github.com/agbru/dialsim/internal/metrics"
	"github.com/agbru/dialsim/internal/orchestration"
	"github.com/agbru/dialsim/internal/tui"
)

// runCount gates the run behind the self-check, loads the instructions and
// runs the selected counters over them.
func (a *Application) runCount(ctx context.Context, out io.Writer) error {
	m := metrics.New()

	if err := a.selfCheck(ctx, m); err != nil {
		return errors.Join(err, a.writeMetrics(m))
	}

	instructions, err := a.loadInstructions()
	if err != nil {
		return err
	}
	a.Logger.Debug("input loaded",
		logging.String("path", a.Config.Input),
		logging.Int("instructions", len(instructions)))

	if a.Config.TUI {
		return tui.Run(ctx, instructions, a.Config.Input, Version)
	}

	counters := orchestration.GetCountersToRun(a.Config, a.Factory)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, len(instructions), out)
		cli.PrintExecutionMode(counters, out)
	}

	var progressReporter orchestration.ProgressReporter = &cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	results := orchestration.ExecuteCounts(ctx, counters, instructions, progressReporter, m, a.Logger, progressOut)

	if a.Config.Trace {
		if err := cli.DisplayTrace(dial.Trace(instructions), out); err != nil {
			return err
		}
	}

	var summary orchestration.Summary
	if a.Config.Quiet {
		summary, err = orchestration.Summarize(results, len(instructions))
		if err == nil {
			cli.DisplayQuietResult(out, summary)
		}
	} else {
		opts := orchestration.PresentationOptions{Instructions: len(instructions), Verbose: a.Config.Verbose}
		summary, err = orchestration.AnalyzeResults(results, opts, cli.CLIResultPresenter{}, out)
	}
	if err != nil {
		return errors.Join(err, a.writeMetrics(m))
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Input:      a.Config.Input,
		Counters:   counterNames(counters),
	}
	if err := cli.SaveResult(out, summary, outputCfg); err != nil {
		return apperrors.WrapError(err, "saving result")
	}
	if err := a.writeMetrics(m); err != nil {
		return err
	}

	a.Logger.Debug("run complete",
		logging.Int("landings", summary.Landings),
		logging.Int("crossings", summary.Crossings))
	return nil
}

// selfCheck runs every registered counter over the built-in example.
func (a *Application) selfCheck(ctx context.Context, m *metrics.Metrics) error {
	all := a.Factory.GetAll()
	counters := make([]dial.Counter, 0, len(all))
	for _, name := range a.Factory.List() {
		counters = append(counters, all[name])
	}
	if err := orchestration.SelfCheck(ctx, counters, m); err != nil {
		if !apperrors.IsContextError(err) {
			a.Logger.Error("self-check failed", err)
		}
		return err
	}
	a.Logger.Debug("self-check passed", logging.Int("counters", len(counters)))
	return nil
}

// loadInstructions reads and parses the configured input. Malformed lines
// yield an apperrors.ParseError; I/O failures an apperrors.InputError.
func (a *Application) loadInstructions() ([]dial.Instruction, error) {
	path := a.Config.Input
	var r io.Reader = a.In
	if path != config.StdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, apperrors.InputError{Path: path, Cause: err}
		}
		defer f.Close()
		r = f
	}

	instructions, err := dial.ParseInstructions(r)
	if err != nil {
		var parseErr apperrors.ParseError
		if errors.As(err, &parseErr) {
			return nil, apperrors.WrapError(err, "%s", path)
		}
		return nil, apperrors.InputError{Path: path, Cause: err}
	}
	return instructions, nil
}

// writeMetrics writes the Prometheus textfile when one is configured.
func (a *Application) writeMetrics(m *metrics.Metrics) error {
	if a.Config.MetricsFile == "" {
		return nil
	}
	if err := m.WriteTextfile(a.Config.MetricsFile); err != nil {
		return apperrors.WrapError(err, "writing metrics")
	}
	return nil
}

func counterNames(counters []dial.Counter) []string {
	names := make([]string, len(counters))
	for i, c := range counters {
		names[i] = c.Name()
	}
	return names
}
