package orchestration

import (
	"io"
	"time"

	"github.com/agbru/dialsim/internal/dial"
)

// CountResult encapsulates the outcome of a single counter run.
// It serves as the shared domain type between orchestration and presentation layers.
type CountResult struct {
	// Name is the registry name of the counter (e.g., "crossings").
	Name string
	// Description is the human-readable label of the counter.
	Description string
	// Kind is the quantity the counter measures.
	Kind dial.Kind
	// Count is the number of zeros counted. It is meaningless if Err is set.
	Count int
	// Duration is the time taken by the counter.
	Duration time.Duration
	// Err is set when the counter did not run, for instance after cancellation.
	Err error
}

// Summary holds the agreed-upon totals for one run.
type Summary struct {
	// Instructions is the number of instructions processed.
	Instructions int
	// Landings is the number of times the dial came to rest on 0.
	Landings int
	// Crossings is the number of times 0 was touched during rotations,
	// landings included.
	Crossings int
	// HasLandings and HasCrossings report which totals were computed.
	HasLandings, HasCrossings bool
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Instructions int
	Verbose      bool
}

// ProgressReporter receives progress from the counters as they run.
// Calls are made synchronously from the goroutine running the counters, so
// implementations must return quickly.
type ProgressReporter interface {
	// Start is called once before the first counter runs.
	Start(numCounters int, out io.Writer)
	// Update reports that the counter at index has processed done of total
	// instructions.
	Update(index int, name string, done, total int)
	// Stop is called once after the last counter finished.
	Stop()
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// Start does nothing.
func (NullProgressReporter) Start(int, io.Writer) {}

// Update does nothing.
func (NullProgressReporter) Update(int, string, int, int) {}

// Stop does nothing.
func (NullProgressReporter) Stop() {}

// ResultPresenter defines the interface for presenting count results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per counter.
	PresentComparisonTable(results []CountResult, out io.Writer)

	// PresentSummary displays the final totals.
	PresentSummary(summary Summary, opts PresentationOptions, out io.Writer)
}

// Recorder receives measurements for export. *metrics.Metrics implements it.
type Recorder interface {
	ObserveInput(instructions int)
	ObserveCount(counter string, count int, d time.Duration)
	ObserveSelfCheck(counter string, passed bool)
}

// NopRecorder discards all measurements.
type NopRecorder struct{}

// ObserveInput does nothing.
func (NopRecorder) ObserveInput(int) {}

// ObserveCount does nothing.
func (NopRecorder) ObserveCount(string, int, time.Duration) {}

// ObserveSelfCheck does nothing.
func (NopRecorder) ObserveSelfCheck(string, bool) {}
