package racer

// State is the lifecycle state of the controller.
type State int

const (
	StateIdle     State = iota // Not started, or stopped
	StateRunning               // Ticks are scheduled
	StatePaused                // Running with scheduling suspended
	StateGameOver              // Frozen final score, nothing scheduled
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameOverReason says why a race ended.
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonCollision
	ReasonOutOfFuel
)

// Message returns the text shown on the game-over display.
func (r GameOverReason) Message() string {
	switch r {
	case ReasonCollision:
		return "Crashed!"
	case ReasonOutOfFuel:
		return "Out of fuel!"
	default:
		return ""
	}
}

// String returns a short name for logs.
func (r GameOverReason) String() string {
	switch r {
	case ReasonCollision:
		return "collision"
	case ReasonOutOfFuel:
		return "out_of_fuel"
	default:
		return "none"
	}
}

// Outcome is the result of one tick.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // Tick arrived while not Running
	OutcomeContinue                // Still Running, next tick scheduled
	OutcomeGameOver                // Race ended on this tick
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeContinue:
		return "Continue"
	case OutcomeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
