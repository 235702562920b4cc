// Package sprites describes how the racer's sprite handles look, so the
// terminal and window hosts draw the same cars.
package sprites

import (
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Part is the region of a car sprite under a sample point.
type Part int

const (
	PartNone  Part = iota // Transparent
	PartBody              // Paint
	PartGlass             // Windshield and rear window
	PartWheel             // Tyres
)

// Style is the palette of one sprite.
type Style struct {
	Body  core.Color
	Glass core.Color
	Wheel core.Color
}

// Color returns the colour of a part, or ColorDefault for PartNone.
func (s Style) Color(p Part) core.Color {
	switch p {
	case PartBody:
		return s.Body
	case PartGlass:
		return s.Glass
	case PartWheel:
		return s.Wheel
	default:
		return core.ColorDefault
	}
}

const glass core.Color = "#9AD1F5"

var styles = map[string]Style{
	"player":   {Body: core.ColorRed, Glass: glass, Wheel: core.ColorBlack},
	"object_1": {Body: core.ColorBlue, Glass: glass, Wheel: core.ColorBlack},
	"object_2": {Body: core.ColorGreen, Glass: glass, Wheel: core.ColorBlack},
	"object_3": {Body: core.ColorOrange, Glass: glass, Wheel: core.ColorBlack},
}

// StyleFor returns the palette of a sprite ID. Unknown IDs are drawn white.
func StyleFor(id string) Style {
	if s, ok := styles[id]; ok {
		return s
	}
	return Style{Body: core.ColorWhite, Glass: glass, Wheel: core.ColorBlack}
}

// PartAt classifies the point (u, v) of a nose-up car sprite, where u and v
// are normalized to [0, 1) across the sprite's width and height.
func PartAt(u, v float64) Part {
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return PartNone
	}

	dx := math.Abs(u - 0.5)
	switch {
	case dx <= 0.2 && v >= 0.04 && v < 0.96:
		if dx <= 0.15 && (v >= 0.22 && v < 0.36 || v >= 0.74 && v < 0.82) {
			return PartGlass
		}
		return PartBody
	case dx <= 0.27 && (v >= 0.14 && v < 0.3 || v >= 0.7 && v < 0.86):
		return PartWheel
	}
	return PartNone
}
