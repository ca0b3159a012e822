package dial

// Step records what a single instruction did to the dial.
type Step struct {
	// Index is the 0-based position of the instruction in the run.
	Index       int
	Instruction Instruction
	// Before and After are the positions around the rotation.
	Before int
	After  int
	// Crossings is the number of times 0 was touched by this instruction.
	Crossings int
}

// Landed reports whether the instruction left the dial on 0.
func (s Step) Landed() bool { return s.After == 0 }

// Trace replays instructions from StartPosition and records every step.
func Trace(instructions []Instruction) []Step {
	steps := make([]Step, len(instructions))
	position := StartPosition
	for i, in := range instructions {
		next := ApplyRotation(position, in.Direction, in.Distance)
		steps[i] = Step{
			Index:       i,
			Instruction: in,
			Before:      position,
			After:       next,
			Crossings:   CountZerosDuringRotation(position, in.Direction, in.Distance),
		}
		position = next
	}
	return steps
}

// Totals sums the landings and crossings over a trace.
func Totals(steps []Step) (landings, crossings int) {
	for _, s := range steps {
		if s.Landed() {
			landings++
		}
		crossings += s.Crossings
	}
	return landings, crossings
}
