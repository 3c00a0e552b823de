package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // W - move player up
	ActionMoveDown         // S - move player down
	ActionMoveLeft         // A - move player left
	ActionMoveRight        // D - move player right
	ActionAimUp            // Up arrow - aim up
	ActionAimDown          // Down arrow - aim down
	ActionAimLeft          // Left arrow - aim left
	ActionAimRight         // Right arrow - aim right
	ActionFire             // Space - fire active weapon
	ActionSlot1            // 1 - switch to weapon slot 1
	ActionSlot2            // 2 - switch to weapon slot 2
	ActionSlot3            // 3 - switch to weapon slot 3
	ActionPause            // P, Escape - pause/unpause game
	ActionRestart          // R - restart run after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionAimUp:
		return "AimUp"
	case ActionAimDown:
		return "AimDown"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionFire:
		return "Fire"
	case ActionSlot1:
		return "Slot1"
	case ActionSlot2:
		return "Slot2"
	case ActionSlot3:
		return "Slot3"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame; several
// actions can be active at once (moving diagonally while firing).
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// AimAt is an optional absolute aim target in arena coordinates,
	// set from mouse input. When AimSet is false the simulation derives
	// the aim direction from the ActionAim* keys instead. The target is
	// kept across Clear so the reticle stays put between mouse events.
	AimAt  Vec2
	AimSet bool
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

// SetAim points the aim reticle at an absolute arena position.
func (f *InputFrame) SetAim(at Vec2) {
	f.AimAt = at
	f.AimSet = true
}

// Clear resets all actions for the next frame. The aim target is kept.
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
	clone.AimAt = f.AimAt
	clone.AimSet = f.AimSet
	return clone
}
