package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-rush/internal/core"
)

// DefaultKeyHold is how long a key counts as held after its last press.
// Terminals report no key releases, only presses and auto-repeats, so a held
// key is one whose repeats keep arriving within this window.
const DefaultKeyHold = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions and emulates
// held keys for the actions the simulation polls.
type KeyMapper struct {
	hold      time.Duration
	lastPress map[core.Action]time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithHold(DefaultKeyHold)
}

// NewKeyMapperWithHold creates a key mapper with a custom hold window.
func NewKeyMapperWithHold(hold time.Duration) *KeyMapper {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &KeyMapper{
		hold:      hold,
		lastPress: make(map[core.Action]time.Time),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "w", "up":
		return core.ActionJump, false
	case "s", "S", "down", "shift+down":
		return core.ActionSlow, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "tab":
		return core.ActionCycleColor, false
	case "1":
		return core.ActionColor1, false
	case "2":
		return core.ActionColor2, false
	case "3":
		return core.ActionColor3, false
	case "4":
		return core.ActionColor4, false
	}

	return core.ActionNone, false
}

// isHeld reports whether an action is polled as a held state.
func isHeld(a core.Action) bool {
	return a == core.ActionJump || a == core.ActionSlow
}

// MapKeyToFrame updates an input frame based on a key message pressed at now.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionNone {
		return isQuit
	}
	frame.Set(action)
	if isHeld(action) {
		km.lastPress[action] = now
	}
	return isQuit
}

// ApplyHeld sets every held action whose key was pressed within the hold window.
func (km *KeyMapper) ApplyHeld(now time.Time, frame *core.InputFrame) {
	for action, at := range km.lastPress {
		if now.Sub(at) < km.hold {
			frame.Set(action)
		}
	}
}

// Release forgets all held keys.
func (km *KeyMapper) Release() {
	clear(km.lastPress)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
