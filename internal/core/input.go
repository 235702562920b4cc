package core

// Action represents a semantic control action, abstracted from physical key presses.
// Steering keys are not actions: they are latched in the game's input state.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - menu cursor up
	ActionDown              // S, Down arrow - menu cursor down
	ActionConfirm           // Enter - confirm selection / start
	ActionBack              // B, Escape - back to the title screen
	ActionRestart           // R key - restart the race
	ActionQuit              // Q, Ctrl+C - exit
	ActionPause             // P - pause/unpause
	ActionScreenshot        // Ctrl+S - dump the current frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
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
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
