package dial

import "errors"

// ErrInvalidDirection is returned when an instruction does not start with
// 'L' or 'R'.
var ErrInvalidDirection = errors.New("invalid direction: want 'L' or 'R'")

// Direction is the sense of a rotation.
type Direction int

const (
	// Left rotates toward lower numbers, wrapping from 0 to 99.
	Left Direction = iota
	// Right rotates toward higher numbers, wrapping from 99 to 0.
	Right
)

// ParseDirection maps the instruction tag to a Direction.
func ParseDirection(tag byte) (Direction, error) {
	switch tag {
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	default:
		return 0, ErrInvalidDirection
	}
}

// Letter returns the single-letter tag used in instruction files.
func (d Direction) Letter() byte {
	if d == Right {
		return 'R'
	}
	return 'L'
}

// String returns "Left" or "Right".
func (d Direction) String() string {
	if d == Right {
		return "Right"
	}
	return "Left"
}
