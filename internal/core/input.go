package core

import "slices"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, h - shift piece left
	ActionRight            // Right arrow, l - shift piece right
	ActionSoftDrop         // Down arrow, j - move piece down one row
	ActionRotateCW         // Up arrow, x, k - rotate clockwise
	ActionRotateCCW        // z - rotate counter-clockwise
	ActionHardDrop         // Space - drop piece to rest and lock it
	ActionPause            // P - pause/unpause
	ActionRestart          // R - restart the session
	ActionStart            // Enter - start a session from idle
	ActionLevelUp          // + - raise level by one
	ActionLevelDown        // - - lower level by one
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionStart:
		return "Start"
	case ActionLevelUp:
		return "LevelUp"
	case ActionLevelDown:
		return "LevelDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick, in the
// order they arrived. Repeated presses of the same key are kept.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame. ActionNone and unknown values are ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a > ActionQuit {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Ordered returns the triggered actions in arrival order.
func (f InputFrame) Ordered() []Action {
	return slices.Clone(f.Actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = nil
}
