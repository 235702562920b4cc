package racer

import (
	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Sprite is an opaque drawable handle with known pixel dimensions.
// Hosts resolve the ID to a glyph or an image.
type Sprite struct {
	ID     string
	Width  float64
	Height float64
}

// PlayerCar is the player-controlled vehicle.
// X and Y anchor the top-left corner of the hitbox.
type PlayerCar struct {
	X, Y           float64
	Width, Height  float64 // Hitbox size
	ImgW, ImgH     float64 // Sprite display size
	Speed          float64 // Pixels per tick
	Rotation       float64 // Current render tilt in degrees
	TargetRotation float64 // Desired tilt set by steering
}

// NewPlayerCar creates a player car from config, positioned for a fresh race.
func NewPlayerCar(cfg config.PlayerConfig, canvas config.CanvasConfig) PlayerCar {
	p := PlayerCar{
		Width:  cfg.Width,
		Height: cfg.Height,
		ImgW:   cfg.SpriteWidth,
		ImgH:   cfg.SpriteHeight,
		Speed:  cfg.Speed,
	}
	p.Reset(cfg, canvas)
	return p
}

// Reset puts the car at the bottom centre of the canvas with no tilt.
func (p *PlayerCar) Reset(cfg config.PlayerConfig, canvas config.CanvasConfig) {
	p.X = canvas.Width/2 - p.Width/2
	p.Y = core.ClampF(canvas.Height-cfg.BottomOffset, 0, canvas.Height-p.Height)
	p.Rotation = 0
	p.TargetRotation = 0
}

// Hitbox returns the logical collision rectangle.
func (p PlayerCar) Hitbox() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// SmoothRotation eases the tilt toward its target.
// The target drops back to level when no horizontal key is held.
func (p *PlayerCar) SmoothRotation(in InputState, damping float64) {
	if !in.Left && !in.Right {
		p.TargetRotation = 0
	}
	p.Rotation += (p.TargetRotation - p.Rotation) * damping
}

// Move translates the car for every held direction, clamped so the hitbox
// stays inside a w x h canvas. Steering sets the lean target; right wins
// when both horizontal keys are held.
func (p *PlayerCar) Move(in InputState, leanAngle, w, h float64) {
	maxX := w - p.Width
	maxY := h - p.Height

	if in.Left {
		p.X = core.ClampF(p.X-p.Speed, 0, maxX)
		p.TargetRotation = -leanAngle
	}
	if in.Right {
		p.X = core.ClampF(p.X+p.Speed, 0, maxX)
		p.TargetRotation = leanAngle
	}
	if in.Up {
		p.Y = core.ClampF(p.Y-p.Speed, 0, maxY)
	}
	if in.Down {
		p.Y = core.ClampF(p.Y+p.Speed, 0, maxY)
	}
}
