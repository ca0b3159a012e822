// Package orchestration runs the selected zero counters over a parsed
// instruction list, gates real input behind the built-in example check, and
// compares counters that measure the same quantity. It decouples the counting
// logic from presentation via the ProgressReporter and ResultPresenter
// interfaces.
package orchestration
