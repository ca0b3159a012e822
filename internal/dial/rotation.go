package dial

const (
	// DialSize is the number of positions on the dial.
	DialSize = 100
	// StartPosition is where every run begins.
	StartPosition = 50
)

// ApplyRotation returns the position reached by rotating distance clicks in
// dir from position. The result is always in [0, DialSize) however large
// distance is; the distance is reduced before it is added so the sum cannot
// overflow.
func ApplyRotation(position int, dir Direction, distance int) int {
	switch dir {
	case Left:
		return mod(position-distance%DialSize, DialSize)
	case Right:
		return mod(position+distance%DialSize, DialSize)
	}
	return position
}

// CountZerosDuringRotation returns how many times the dial points at 0 while
// rotating distance clicks in dir from position, including the final
// landing. Starting on 0 does not count.
//
// position must be the position before the rotation is applied.
func CountZerosDuringRotation(position int, dir Direction, distance int) int {
	fullTurns := distance / DialSize
	remainder := distance % DialSize

	count := fullTurns
	switch dir {
	case Left:
		if position > 0 && remainder >= position {
			count++
		}
	case Right:
		if position < DialSize && remainder >= DialSize-position {
			count++
		}
	}
	return count
}

// mod is the mathematical modulo: the result has the sign of m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
