package dial

// Kind identifies what a counter measures. Counters of the same kind must
// agree on any input.
type Kind int

const (
	// KindLanding counts instructions that end exactly on 0.
	KindLanding Kind = iota
	// KindCrossing counts every time 0 is touched during a rotation.
	KindCrossing
)

// String returns a short label for the kind.
func (k Kind) String() string {
	if k == KindCrossing {
		return "crossings"
	}
	return "landings"
}

// ProgressFunc receives the number of instructions processed so far and the
// total. It is called synchronously from the counting loop.
type ProgressFunc func(done, total int)

// Counter reduces an instruction sequence to a count. Each call starts a
// fresh run at StartPosition.
type Counter interface {
	// Name returns the registry key of the counter.
	Name() string
	// Description returns a human-readable label.
	Description() string
	// Kind reports what the counter measures.
	Kind() Kind
	// Count runs the sequence. progress may be nil.
	Count(instructions []Instruction, progress ProgressFunc) int
}

// CountLandings applies each instruction in order from StartPosition and
// counts how many of them leave the dial on 0.
func CountLandings(instructions []Instruction) int {
	return LandingCounter{}.Count(instructions, nil)
}

// CountCrossings counts every time the dial points at 0 during the run,
// whether passing through or landing, starting from StartPosition.
func CountCrossings(instructions []Instruction) int {
	return CrossingCounter{}.Count(instructions, nil)
}

// LandingCounter counts instructions that end on 0.
type LandingCounter struct{}

// Name implements Counter.
func (LandingCounter) Name() string { return "landings" }

// Description implements Counter.
func (LandingCounter) Description() string { return "Zero landings" }

// Kind implements Counter.
func (LandingCounter) Kind() Kind { return KindLanding }

// Count implements Counter.
func (LandingCounter) Count(instructions []Instruction, progress ProgressFunc) int {
	r := newReporter(len(instructions), progress)
	position := StartPosition
	landings := 0
	for i, in := range instructions {
		position = ApplyRotation(position, in.Direction, in.Distance)
		if position == 0 {
			landings++
		}
		r.report(i + 1)
	}
	return landings
}

// CrossingCounter counts every touch of 0 using the closed-form
// CountZerosDuringRotation.
type CrossingCounter struct{}

// Name implements Counter.
func (CrossingCounter) Name() string { return "crossings" }

// Description implements Counter.
func (CrossingCounter) Description() string { return "Zero crossings" }

// Kind implements Counter.
func (CrossingCounter) Kind() Kind { return KindCrossing }

// Count implements Counter.
func (CrossingCounter) Count(instructions []Instruction, progress ProgressFunc) int {
	r := newReporter(len(instructions), progress)
	position := StartPosition
	crossings := 0
	for i, in := range instructions {
		crossings += CountZerosDuringRotation(position, in.Direction, in.Distance)
		position = ApplyRotation(position, in.Direction, in.Distance)
		r.report(i + 1)
	}
	return crossings
}

// StepwiseCounter measures the same thing as CrossingCounter by moving the
// dial one click at a time through the part of each rotation that is not a
// whole turn. Each whole turn touches 0 exactly once and leaves the dial
// where it was, so it is counted without walking it. The cost is at most
// DialSize-1 clicks per instruction; the counter serves as a reference to
// cross-check the closed form.
type StepwiseCounter struct{}

// Name implements Counter.
func (StepwiseCounter) Name() string { return "stepwise" }

// Description implements Counter.
func (StepwiseCounter) Description() string { return "Zero crossings (click by click)" }

// Kind implements Counter.
func (StepwiseCounter) Kind() Kind { return KindCrossing }

// Count implements Counter.
func (StepwiseCounter) Count(instructions []Instruction, progress ProgressFunc) int {
	r := newReporter(len(instructions), progress)
	position := StartPosition
	crossings := 0
	for i, in := range instructions {
		step := 1
		if in.Direction == Left {
			step = -1
		}
		crossings += in.Distance / DialSize
		for click := 0; click < in.Distance%DialSize; click++ {
			position = mod(position+step, DialSize)
			if position == 0 {
				crossings++
			}
		}
		r.report(i + 1)
	}
	return crossings
}

// progressSteps bounds how many progress callbacks a single run emits.
const progressSteps = 100

type reporter struct {
	fn    ProgressFunc
	total int
	every int
}

func newReporter(total int, fn ProgressFunc) reporter {
	every := total / progressSteps
	if every < 1 {
		every = 1
	}
	return reporter{fn: fn, total: total, every: every}
}

func (r reporter) report(done int) {
	if r.fn == nil {
		return
	}
	if done%r.every == 0 || done == r.total {
		r.fn(done, r.total)
	}
}
