package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the top bar: title, version, and the replay cursor.
type HeaderModel struct {
	version string
	source  string
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version, source string) HeaderModel {
	return HeaderModel{version: version, source: source}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header for the given replay position.
func (h HeaderModel) View(applied, total int) string {
	titleText := "Dial Replay"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := versionStyle.Render(" | ")
	progress := valueStyle.Render(fmt.Sprintf("Step %d/%d", applied, total))

	leftPart := title + pipe + progress
	if h.source != "" {
		leftPart += pipe + versionStyle.Render(h.source)
	}

	gap := max(h.width-2-lipgloss.Width(leftPart), 0)
	return headerStyle.Width(h.width).Render(leftPart + spaces(gap))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
