package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up - jump (held state is polled)
	ActionSlow              // S, Down, Shift - throttle forward speed while held
	ActionConfirm           // Enter - start a run from the title screen
	ActionBack              // B, Escape - go back to the title screen
	ActionRestart           // R - restart after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause
	ActionCycleColor        // Tab - switch to the next palette color
	ActionColor1            // 1..4 - pick a palette color directly
	ActionColor2
	ActionColor3
	ActionColor4
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionSlow:
		return "Slow"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionCycleColor:
		return "CycleColor"
	case ActionColor1, ActionColor2, ActionColor3, ActionColor4:
		return "Color"
	default:
		return "Unknown"
	}
}

// PaletteColor returns the palette color picked by a direct color action.
func (a Action) PaletteColor() (PaletteColor, bool) {
	switch a {
	case ActionColor1:
		return Cyan, true
	case ActionColor2:
		return Magenta, true
	case ActionColor3:
		return Yellow, true
	case ActionColor4:
		return Lime, true
	}
	return 0, false
}

// InputFrame represents the input state during one frame.
// Held actions (jump, slow) stay set for as long as the platform considers the
// key held; one-shot actions (pause, restart) are set for a single frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
