package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fluppy/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key     string
		actions []core.Action
		isQuit  bool
	}{
		{" ", []core.Action{core.ActionFlap, core.ActionConfirm, core.ActionRestart}, false},
		{"up", []core.Action{core.ActionFlap, core.ActionMenuUp}, false},
		{"w", []core.Action{core.ActionMenuUp}, false},
		{"k", []core.Action{core.ActionMenuUp}, false},
		{"down", []core.Action{core.ActionMenuDown}, false},
		{"s", []core.Action{core.ActionMenuDown}, false},
		{"j", []core.Action{core.ActionMenuDown}, false},
		{"enter", []core.Action{core.ActionConfirm}, false},
		{"r", []core.Action{core.ActionRestart}, false},
		{"q", []core.Action{core.ActionQuit}, true},
		{"ctrl+c", []core.Action{core.ActionQuit}, true},
		{"z", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			frame := core.NewInputFrame()
			isQuit := km.MapKeyToFrame(keyMsg(tt.key), &frame)
			if isQuit != tt.isQuit {
				t.Errorf("isQuit = %v, want %v", isQuit, tt.isQuit)
			}
			for _, a := range tt.actions {
				if !frame.Has(a) {
					t.Errorf("key %q did not set %v", tt.key, a)
				}
			}
			if len(frame.Actions) != len(tt.actions) {
				t.Errorf("key %q set %d actions, want %d", tt.key, len(frame.Actions), len(tt.actions))
			}
		})
	}
}
