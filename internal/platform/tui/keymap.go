package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fluppy/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// A single key can map to several actions. Space is flap, confirm, and
// restart at once; the game reads only the actions that apply to its
// current phase, so one binding serves all three screens.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to actions. Returns the actions (may be
// empty) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	case " ":
		return []core.Action{core.ActionFlap, core.ActionConfirm, core.ActionRestart}, false
	case "up":
		return []core.Action{core.ActionFlap, core.ActionMenuUp}, false
	case "w", "k": // vim-style k for up
		return []core.Action{core.ActionMenuUp}, false
	case "down", "s", "j": // vim-style j for down
		return []core.Action{core.ActionMenuDown}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}
