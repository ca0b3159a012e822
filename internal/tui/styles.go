package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/dialsim/internal/ui"
)

// Style variables for the replay viewer.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	labelStyle       lipgloss.Style
	valueStyle       lipgloss.Style
	moveStyle        lipgloss.Style
	landedStyle      lipgloss.Style
	pointerStyle     lipgloss.Style
	zeroMarkStyle    lipgloss.Style
	sparklineStyle   lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
	statusPlayStyle  lipgloss.Style
	statusPauseStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	moveStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	landedStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	pointerStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	zeroMarkStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	sparklineStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusPlayStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusPauseStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)
}
