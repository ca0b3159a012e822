package dial

// ExampleLines is the worked example used to check the counters before any
// real input is processed.
var ExampleLines = []string{"L68", "L30", "R48", "L5", "R60", "L55", "L1", "L99", "R14", "L82"}

// Known results for ExampleLines.
const (
	ExampleLandings  = 3
	ExampleCrossings = 6
)

// ExampleInstructions returns ExampleLines parsed.
func ExampleInstructions() []Instruction {
	return MustParseLines(ExampleLines)
}

// ExpectedExample returns the known example result for a counter kind.
func ExpectedExample(k Kind) int {
	if k == KindCrossing {
		return ExampleCrossings
	}
	return ExampleLandings
}
