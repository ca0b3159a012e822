package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/dialsim/internal/dial"
)

// Layout constants for the replay viewer.
const (
	// PlayInterval is the delay between steps while playing.
	PlayInterval = 400 * time.Millisecond
	// HistoryLines is the number of recent moves listed.
	HistoryLines = 8
	defaultWidth = 80
	minRulerSize = 20
)

// TickMsg advances the replay while playing.
type TickMsg time.Time

// Model is the root bubbletea model of the replay viewer. It holds the
// whole trace and a cursor counting how many steps have been applied.
type Model struct {
	header HeaderModel
	keymap KeyMap

	steps   []dial.Step
	cursor  int
	playing bool

	width  int
	height int
}

// NewModel creates a replay of instructions positioned before the first move.
func NewModel(instructions []dial.Instruction, source, version string) Model {
	return Model{
		header: NewHeaderModel(version, source),
		keymap: DefaultKeyMap(),
		steps:  dial.Trace(instructions),
		width:  defaultWidth,
	}
}

// Applied returns the number of steps applied so far.
func (m Model) Applied() int { return m.cursor }

// Position returns the dial position after the applied steps.
func (m Model) Position() int {
	if m.cursor == 0 {
		return dial.StartPosition
	}
	return m.steps[m.cursor-1].After
}

// Totals returns the landings and crossings of the applied steps.
func (m Model) Totals() (landings, crossings int) {
	return dial.Totals(m.steps[:m.cursor])
}

// Playing reports whether the replay advances on its own.
func (m Model) Playing() bool { return m.playing }

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		return m, nil

	case TickMsg:
		if !m.playing {
			return m, nil
		}
		if m.cursor >= len(m.steps) {
			m.playing = false
			return m, nil
		}
		m.cursor++
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Next):
		m.playing = false
		m.cursor = min(m.cursor+1, len(m.steps))

	case key.Matches(msg, m.keymap.Prev):
		m.playing = false
		m.cursor = max(m.cursor-1, 0)

	case key.Matches(msg, m.keymap.Home):
		m.playing = false
		m.cursor = 0

	case key.Matches(msg, m.keymap.End):
		m.playing = false
		m.cursor = len(m.steps)

	case key.Matches(msg, m.keymap.Play):
		if m.playing {
			m.playing = false
			return m, nil
		}
		if m.cursor >= len(m.steps) {
			m.cursor = 0
		}
		m.playing = true
		return m, tickCmd()
	}
	return m, nil
}

// View renders the whole viewer.
func (m Model) View() string {
	innerWidth := max(m.width-4, minRulerSize)
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderCurrent(),
		"",
		m.renderRuler(innerWidth),
		"",
		m.renderTotals(),
		m.renderSparkline(innerWidth),
		"",
		m.renderHistory(),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(m.cursor, len(m.steps)),
		panelStyle.Width(max(m.width-2, minRulerSize)).Render(body),
		m.renderFooter(),
	)
}

func (m Model) renderCurrent() string {
	if m.cursor == 0 {
		return labelStyle.Render("Start: ") + valueStyle.Render(fmt.Sprint(dial.StartPosition)) +
			labelStyle.Render(fmt.Sprintf("  (%d instructions to replay)", len(m.steps)))
	}
	s := m.steps[m.cursor-1]
	line := moveStyle.Render(s.Instruction.String()) +
		labelStyle.Render(fmt.Sprintf("  %d → ", s.Before)) +
		valueStyle.Render(fmt.Sprint(s.After)) +
		labelStyle.Render(fmt.Sprintf("  zeros passed: %d", s.Crossings))
	if s.Landed() {
		line += "  " + landedStyle.Render("landed on 0")
	}
	return line
}

// renderRuler draws the dial unrolled onto width cells with 0 marked at the
// left edge and the pointer under the current position.
func (m Model) renderRuler(width int) string {
	cell := func(pos int) int { return pos * (width - 1) / (dial.DialSize - 1) }
	marks := []rune(strings.Repeat("·", width))
	marks[0] = '0'
	ruler := zeroMarkStyle.Render(string(marks[:1])) + labelStyle.Render(string(marks[1:]))

	at := cell(m.Position())
	pointer := spaces(at) + pointerStyle.Render(fmt.Sprintf("▲ %d", m.Position()))
	return ruler + "\n" + pointer
}

func (m Model) renderTotals() string {
	landings, crossings := m.Totals()
	status := statusPauseStyle.Render("paused")
	if m.playing {
		status = statusPlayStyle.Render("playing")
	}
	return labelStyle.Render("Landings: ") + valueStyle.Render(fmt.Sprint(landings)) +
		labelStyle.Render("   Crossings: ") + valueStyle.Render(fmt.Sprint(crossings)) +
		labelStyle.Render("   ") + status
}

// renderSparkline plots the zeros passed per applied step, most recent last.
func (m Model) renderSparkline(width int) string {
	applied := m.steps[:m.cursor]
	if len(applied) > width {
		applied = applied[len(applied)-width:]
	}
	counts := make([]int, len(applied))
	for i, s := range applied {
		counts[i] = s.Crossings
	}
	return sparklineStyle.Render(RenderSparkline(ScalePercent(counts)))
}

func (m Model) renderHistory() string {
	start := max(m.cursor-HistoryLines, 0)
	var lines []string
	for _, s := range m.steps[start:m.cursor] {
		mark := " "
		if s.Landed() {
			mark = landedStyle.Render("*")
		}
		lines = append(lines, fmt.Sprintf("%s %4d  %-6s %2d → %2d  +%d",
			mark, s.Index+1, s.Instruction, s.Before, s.After, s.Crossings))
	}
	if len(lines) == 0 {
		return labelStyle.Render("No moves yet.")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	var parts []string
	for _, b := range m.keymap.ShortHelp() {
		parts = append(parts, footerKeyStyle.Render(b.Help().Key)+" "+footerDescStyle.Render(b.Help().Desc))
	}
	return " " + strings.Join(parts, "  ")
}

// tickCmd returns a command that sends a TickMsg after PlayInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(PlayInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Run is the public entry point for the replay mode. It blocks until the
// user quits or ctx is canceled.
func Run(ctx context.Context, instructions []dial.Instruction, source, version string) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	p := tea.NewProgram(NewModel(instructions, source, version), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("replay viewer: %w", err)
	}
	return nil
}
