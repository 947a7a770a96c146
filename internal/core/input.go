package core

// Action is a semantic input event, abstracted from physical key presses or
// agent decisions. The platform maps keys to actions; the environment
// adapter maps agent choices to actions.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up - flap in play, confirm in the menu
	ActionConfirm        // Enter - start the game from the menu
	ActionMenu           // M, Esc - return to the main menu
	ActionQuit           // Q, Ctrl+C - exit the host loop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions collected for one simulation tick.
// The host fills it between ticks and clears it after each step.
type InputFrame struct {
	actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	f.actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.actions {
		delete(f.actions, k)
	}
}
