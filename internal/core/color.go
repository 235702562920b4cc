package core

// Color is a screen cell colour in "#RRGGBB" form.
// The empty string means the terminal's default colour.
type Color string

// Predefined colours for track, cars and HUD elements.
const (
	ColorDefault Color = ""
	ColorAsphalt Color = "#808080"
	ColorLane    Color = "#FFFF00"
	ColorRed     Color = "#D7263D"
	ColorBlue    Color = "#1B98E0"
	ColorGreen   Color = "#2EC4B6"
	ColorOrange  Color = "#F46036"
	ColorWhite   Color = "#FFFFFF"
	ColorBlack   Color = "#000000"
)

// IsDefault reports whether c leaves the terminal colour untouched.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
