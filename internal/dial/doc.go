// Package dial simulates a circular dial of 100 positions (0 to 99) that
// starts at position 50 and is rotated left or right by a sequence of
// instructions. It counts how often the dial lands on 0 after an instruction
// and how often it touches 0 at any point during a rotation.
//
// Everything in this package is a pure function of its inputs. Instruction
// sequences are passed in as slices so the counting logic is independent of
// where the instructions came from.
package dial
