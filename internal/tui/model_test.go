package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/dialsim/internal/dial"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m, cmd
}

func exampleModel() Model {
	return NewModel(dial.ExampleInstructions(), "example", "dev")
}

func TestModelStartsBeforeFirstMove(t *testing.T) {
	m := exampleModel()
	if m.Applied() != 0 || m.Position() != dial.StartPosition {
		t.Errorf("expected cursor 0 at %d, got %d at %d", dial.StartPosition, m.Applied(), m.Position())
	}
	if m.Init() != nil {
		t.Error("Init should not schedule anything")
	}
}

func TestModelStepping(t *testing.T) {
	m, _ := send(t, exampleModel(),
		tea.KeyMsg{Type: tea.KeyRight},
		runeKey('n'),
		runeKey('l'),
	)
	if m.Applied() != 3 || m.Position() != 0 {
		t.Fatalf("after three moves expected position 0, got %d at step %d", m.Position(), m.Applied())
	}
	if landings, crossings := m.Totals(); landings != 1 || crossings != 2 {
		t.Errorf("expected 1 landing and 2 crossings, got %d and %d", landings, crossings)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Applied() != 2 || m.Position() != 52 {
		t.Errorf("stepping back should return to 52, got %d", m.Position())
	}
}

func TestModelHomeAndEnd(t *testing.T) {
	m, _ := send(t, exampleModel(), runeKey('G'))
	if m.Applied() != 10 {
		t.Fatalf("End should apply every step, got %d", m.Applied())
	}
	landings, crossings := m.Totals()
	if landings != dial.ExampleLandings || crossings != dial.ExampleCrossings {
		t.Errorf("expected %d/%d, got %d/%d", dial.ExampleLandings, dial.ExampleCrossings, landings, crossings)
	}

	// Stepping past either end is clamped.
	m, _ = send(t, m, runeKey('n'))
	if m.Applied() != 10 {
		t.Errorf("expected cursor to stay at 10, got %d", m.Applied())
	}
	m, _ = send(t, m, runeKey('g'), runeKey('b'))
	if m.Applied() != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", m.Applied())
	}
}

func TestModelPlayback(t *testing.T) {
	m, cmd := send(t, exampleModel(), runeKey(' '))
	if !m.Playing() || cmd == nil {
		t.Fatal("space should start playback and schedule a tick")
	}

	for i := 0; i < 10; i++ {
		m, cmd = send(t, m, TickMsg{})
	}
	if m.Applied() != 10 || cmd == nil {
		t.Fatalf("ten ticks should apply ten steps, got %d", m.Applied())
	}
	m, cmd = send(t, m, TickMsg{})
	if m.Playing() || cmd != nil {
		t.Error("playback should stop at the last step")
	}

	// Playing again from the end restarts from the beginning.
	m, _ = send(t, m, runeKey('p'))
	if !m.Playing() || m.Applied() != 0 {
		t.Errorf("expected restart, got playing=%v at %d", m.Playing(), m.Applied())
	}
	m, _ = send(t, m, runeKey('p'))
	if m.Playing() {
		t.Error("second press should pause")
	}
	m, _ = send(t, m, TickMsg{})
	if m.Applied() != 0 {
		t.Error("ticks must be ignored while paused")
	}
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := send(t, exampleModel(), msg)
		if cmd == nil {
			t.Fatalf("%s should quit", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should produce tea.QuitMsg", msg)
		}
	}
}

func TestModelView(t *testing.T) {
	m, _ := send(t, exampleModel(), tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	for _, want := range []string{"Dial Replay", "Step 0/10", "Start: 50", "No moves yet.", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("initial view should contain %q", want)
		}
	}

	m, _ = send(t, m, runeKey('n'), runeKey('n'), runeKey('n'))
	view = m.View()
	for _, want := range []string{"Step 3/10", "R48", "landed on 0", "Landings: 1", "Crossings: 2", "▲ 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view after three steps should contain %q", want)
		}
	}
}
