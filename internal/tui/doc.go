// Package tui implements a full-screen replay of a dial run with bubbletea.
// The viewer steps forward and backward through the instructions, showing
// the dial position, the zeros passed by each move and the running totals.
package tui
