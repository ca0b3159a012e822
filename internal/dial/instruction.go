package dial

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/dialsim/internal/errors"
)

// ErrInvalidDistance is returned when the part of an instruction after the
// direction tag is not a base-10 non-negative integer.
var ErrInvalidDistance = errors.New("invalid distance: want a non-negative integer")

// Instruction is a single rotation: a direction and a number of clicks.
// Distance may exceed DialSize, in which case the rotation makes full turns.
type Instruction struct {
	Direction Direction
	Distance  int
}

// String renders the instruction in its file form, e.g. "L68".
func (in Instruction) String() string {
	return string(in.Direction.Letter()) + strconv.Itoa(in.Distance)
}

// ParseInstruction parses a line of the form <L|R><digits>.
//
// A failure is returned as an apperrors.ParseError whose cause is either
// ErrInvalidDirection or ErrInvalidDistance.
func ParseInstruction(line string) (Instruction, error) {
	if line == "" {
		return Instruction{}, apperrors.ParseError{Text: line, Cause: ErrInvalidDirection}
	}
	dir, err := ParseDirection(line[0])
	if err != nil {
		return Instruction{}, apperrors.ParseError{Text: line, Cause: err}
	}
	distance, err := parseDistance(line[1:])
	if err != nil {
		return Instruction{}, apperrors.ParseError{Text: line, Cause: err}
	}
	return Instruction{Direction: dir, Distance: distance}, nil
}

// parseDistance accepts digits only; strconv alone would let signs through.
func parseDistance(s string) (int, error) {
	if s == "" {
		return 0, ErrInvalidDistance
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidDistance
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidDistance
	}
	return n, nil
}

// ParseLines parses each line in order. Surrounding whitespace is trimmed
// and blank lines are skipped; any other malformed line stops parsing and
// is reported with its 1-based line number.
func ParseLines(lines []string) ([]Instruction, error) {
	instructions := make([]Instruction, 0, len(lines))
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		in, err := ParseInstruction(line)
		if err != nil {
			return nil, withLine(err, i+1)
		}
		instructions = append(instructions, in)
	}
	return instructions, nil
}

// ParseInstructions reads r to the end and parses every line with the same
// rules as ParseLines. Lines of any length are read whole, so an oversized
// line is reported as a ParseError like any other malformed line. Read
// errors are returned unwrapped so the caller can attach the source name.
func ParseInstructions(r io.Reader) ([]Instruction, error) {
	var instructions []Instruction
	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if raw != "" {
			lineNo++
			if line := strings.TrimSpace(raw); line != "" {
				in, err := ParseInstruction(line)
				if err != nil {
					return nil, withLine(err, lineNo)
				}
				instructions = append(instructions, in)
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return instructions, nil
			}
			return nil, readErr
		}
	}
}

func withLine(err error, line int) error {
	var parseErr apperrors.ParseError
	if errors.As(err, &parseErr) {
		parseErr.Line = line
		return parseErr
	}
	return err
}

// MustParseLines is like ParseLines but panics on malformed input. It is
// intended for fixed, known-good sequences such as the built-in example.
func MustParseLines(lines []string) []Instruction {
	instructions, err := ParseLines(lines)
	if err != nil {
		panic(err)
	}
	return instructions
}
