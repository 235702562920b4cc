package racer

// Direction is one of the four steering directions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists all steering directions.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the canonical key name of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "ArrowLeft"
	case DirRight:
		return "ArrowRight"
	case DirUp:
		return "ArrowUp"
	case DirDown:
		return "ArrowDown"
	default:
		return "Unknown"
	}
}

// ParseKey maps a raw key identifier to a direction.
// Arrow names from both browsers ("ArrowLeft") and terminals ("left") are
// accepted along with WASD.
func ParseKey(key string) (Direction, bool) {
	switch key {
	case "ArrowLeft", "left", "a", "A":
		return DirLeft, true
	case "ArrowRight", "right", "d", "D":
		return DirRight, true
	case "ArrowUp", "up", "w", "W":
		return DirUp, true
	case "ArrowDown", "down", "s", "S":
		return DirDown, true
	}
	return 0, false
}

// InputState holds latched key-press flags for the four directions.
// A flag stays set from key-down until the matching key-up.
type InputState struct {
	Left, Right, Up, Down bool
}

// OnKeyDown sets the flag for a recognized direction key; other keys are ignored.
func (s *InputState) OnKeyDown(key string) {
	if d, ok := ParseKey(key); ok {
		s.Set(d, true)
	}
}

// OnKeyUp clears the flag for a recognized direction key.
func (s *InputState) OnKeyUp(key string) {
	if d, ok := ParseKey(key); ok {
		s.Set(d, false)
	}
}

// Set assigns a single direction flag.
func (s *InputState) Set(d Direction, held bool) {
	switch d {
	case DirLeft:
		s.Left = held
	case DirRight:
		s.Right = held
	case DirUp:
		s.Up = held
	case DirDown:
		s.Down = held
	}
}

// Held reports whether a direction flag is set.
func (s InputState) Held(d Direction) bool {
	switch d {
	case DirLeft:
		return s.Left
	case DirRight:
		return s.Right
	case DirUp:
		return s.Up
	case DirDown:
		return s.Down
	}
	return false
}

// Reset clears every flag.
func (s *InputState) Reset() {
	*s = InputState{}
}
