package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/dialsim/internal/errors"
	"github.com/agbru/dialsim/internal/dial"
	"github.com/agbru/dialsim/internal/logging"
)

var tracer = otel.Tracer("github.com/agbru/dialsim/internal/orchestration")

// ExecuteCounts runs each counter over instructions in turn.
//
// Counters are cheap linear scans, so they run one after another on the
// calling goroutine; progress is forwarded synchronously to reporter. When
// ctx is canceled the remaining counters are not started and their results
// carry ctx.Err().
//
// Parameters:
//   - ctx: The context for cancellation and tracing.
//   - counters: The counters to execute.
//   - instructions: The parsed instruction list.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - recorder: The metrics sink (use NopRecorder to discard).
//   - logger: Receives one debug entry per counter.
//   - out: The io.Writer handed to the progress reporter.
//
// Returns:
//   - []CountResult: One result per counter, in the order given.
func ExecuteCounts(ctx context.Context, counters []dial.Counter, instructions []dial.Instruction, reporter ProgressReporter, recorder Recorder, logger logging.Logger, out io.Writer) []CountResult {
	results := make([]CountResult, len(counters))
	recorder.ObserveInput(len(instructions))

	reporter.Start(len(counters), out)
	defer reporter.Stop()

	for i, c := range counters {
		results[i] = CountResult{Name: c.Name(), Description: c.Description(), Kind: c.Kind()}
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			logger.Debug("counter skipped", logging.String("counter", c.Name()), logging.Err(err))
			continue
		}

		_, span := tracer.Start(ctx, "dial.count",
			trace.WithAttributes(
				attribute.String("dial.counter", c.Name()),
				attribute.Int("dial.instructions", len(instructions)),
			))
		idx, name := i, c.Name()
		start := time.Now()
		count := c.Count(instructions, func(done, total int) {
			reporter.Update(idx, name, done, total)
		})
		results[i].Count = count
		results[i].Duration = time.Since(start)
		span.SetAttributes(attribute.Int("dial.zeros", count))
		span.End()

		recorder.ObserveCount(name, count, results[i].Duration)
		logger.Debug("counter finished",
			logging.String("counter", name),
			logging.Int("zeros", count),
			logging.Duration("duration", results[i].Duration))
	}
	return results
}

// SelfCheck runs every counter over the built-in example and compares each
// result with the known answer for its kind. All counters are checked and
// recorded; the first failure is returned as an apperrors.SelfCheckError.
// No result on real input may be reported when SelfCheck fails.
func SelfCheck(ctx context.Context, counters []dial.Counter, recorder Recorder) error {
	ctx, span := tracer.Start(ctx, "dial.self_check")
	defer span.End()

	example := dial.ExampleInstructions()
	var firstErr error
	for _, c := range counters {
		if err := ctx.Err(); err != nil {
			return err
		}
		want := dial.ExpectedExample(c.Kind())
		got := c.Count(example, nil)
		passed := got == want
		recorder.ObserveSelfCheck(c.Name(), passed)
		if !passed && firstErr == nil {
			firstErr = apperrors.SelfCheckError{Counter: c.Name(), Want: want, Got: got}
		}
	}
	if firstErr != nil {
		span.SetStatus(codes.Error, firstErr.Error())
	}
	return firstErr
}

// AnalyzeResults presents the comparison table, checks that counters of the
// same kind agree, and presents the resulting totals.
//
// Parameters:
//   - results: The slice of count results to analyze.
//   - opts: The presentation options.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the report.
//
// Returns:
//   - Summary: The agreed totals.
//   - error: The first failed counter's error, or an apperrors.MismatchError
//     when two counters of the same kind disagree.
func AnalyzeResults(results []CountResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) (Summary, error) {
	summary, err := Summarize(results, opts.Instructions)
	if len(results) > 1 || opts.Verbose {
		presenter.PresentComparisonTable(results, out)
	}
	if err != nil {
		var mismatch apperrors.MismatchError
		if errors.As(err, &mismatch) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the counters.\n")
		}
		return summary, err
	}
	if len(results) > 1 {
		fmt.Fprintf(out, "\nGlobal Status: Success. All counters are consistent.\n")
	}
	presenter.PresentSummary(summary, opts, out)
	return summary, nil
}

// Summarize folds results into a Summary. The first result of each kind is
// the reference; any later result of that kind with a different count yields
// an apperrors.MismatchError.
func Summarize(results []CountResult, instructions int) (Summary, error) {
	summary := Summary{Instructions: instructions}
	reference := map[dial.Kind]CountResult{}
	for _, r := range results {
		if r.Err != nil {
			return summary, r.Err
		}
		ref, seen := reference[r.Kind]
		if !seen {
			reference[r.Kind] = r
			switch r.Kind {
			case dial.KindLanding:
				summary.Landings, summary.HasLandings = r.Count, true
			case dial.KindCrossing:
				summary.Crossings, summary.HasCrossings = r.Count, true
			}
			continue
		}
		if r.Count != ref.Count {
			return summary, apperrors.MismatchError{
				Quantity:  r.Kind.String(),
				Reference: ref.Name,
				Candidate: r.Name,
				Want:      ref.Count,
				Got:       r.Count,
			}
		}
	}
	return summary, nil
}
