package racer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Obstacle is a falling car the player must avoid.
type Obstacle struct {
	X, Y          float64
	Width, Height float64 // Hitbox size
	ImgW, ImgH    float64 // Sprite display size
	Speed         float64 // Downward pixels per tick
	Sprite        Sprite
}

// Hitbox returns the logical collision rectangle for this obstacle.
func (o Obstacle) Hitbox() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Width, o.Height)
}

// SpawnResult describes what a spawn attempt did.
type SpawnResult int

const (
	SpawnNone    SpawnResult = iota // The per-tick roll did not ask for an obstacle
	SpawnPlaced                     // A new obstacle was added
	SpawnSkipped                    // No free position was found within the attempt cap
)

// String returns a human-readable name for the result.
func (r SpawnResult) String() string {
	switch r {
	case SpawnNone:
		return "None"
	case SpawnPlaced:
		return "Placed"
	case SpawnSkipped:
		return "Skipped"
	default:
		return "Unknown"
	}
}

// ObstacleField handles spawning, movement, and removal of obstacles.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	sprites   []Sprite
	cfg       config.ObstacleConfig
	canvasW   float64
	canvasH   float64
}

// NewObstacleField creates an empty field with the given RNG seed.
func NewObstacleField(seed int64, cfg config.ObstacleConfig, canvas config.CanvasConfig) *ObstacleField {
	f := &ObstacleField{
		obstacles: make([]Obstacle, 0, 16),
		cfg:       cfg,
		canvasW:   canvas.Width,
		canvasH:   canvas.Height,
	}
	f.sprites = make([]Sprite, len(cfg.Sprites))
	for i, id := range cfg.Sprites {
		f.sprites[i] = Sprite{ID: id, Width: cfg.SpriteWidth, Height: cfg.SpriteHeight}
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles and reseeds the RNG.
func (f *ObstacleField) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// Clear removes all obstacles, keeping the RNG stream.
func (f *ObstacleField) Clear() {
	f.obstacles = f.obstacles[:0]
}

// Len returns the number of obstacles on the field.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Obstacles returns the current obstacles in insertion order.
// The slice is owned by the field and must not be modified.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Sprites returns the obstacle sprite set.
func (f *ObstacleField) Sprites() []Sprite {
	return f.sprites
}

// Add places an obstacle directly, bypassing the spawner.
func (f *ObstacleField) Add(o Obstacle) {
	f.obstacles = append(f.obstacles, o)
}

// Advance moves every obstacle down by its own speed, then drops those
// whose top edge has left the bottom of the canvas.
func (f *ObstacleField) Advance() {
	for i := range f.obstacles {
		f.obstacles[i].Y += f.obstacles[i].Speed
	}

	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Y < f.canvasH {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// MaybeSpawn rolls the per-tick spawn chance and, on success, tries to place
// one obstacle.
func (f *ObstacleField) MaybeSpawn() SpawnResult {
	if f.rng.Float64() >= f.cfg.SpawnChance {
		return SpawnNone
	}
	return f.Spawn()
}

// Spawn places one obstacle just above the canvas at a random whole-pixel x
// whose hitbox overlaps no existing obstacle. Positions are resampled up to
// the configured attempt cap; when every attempt collides the spawn is skipped.
func (f *ObstacleField) Spawn() SpawnResult {
	w, h := f.cfg.Width, f.cfg.Height
	span := f.canvasW - w
	if span < 0 {
		span = 0
	}

	sprite := f.sprites[f.rng.Intn(len(f.sprites))]

	for attempt := 0; attempt < f.cfg.MaxPlacementAttempts; attempt++ {
		candidate := core.NewRectF(math.Floor(f.rng.Float64()*span), -h, w, h)
		if f.overlapsAny(candidate) {
			continue
		}

		f.obstacles = append(f.obstacles, Obstacle{
			X:      candidate.X,
			Y:      candidate.Y,
			Width:  w,
			Height: h,
			ImgW:   f.cfg.SpriteWidth,
			ImgH:   f.cfg.SpriteHeight,
			Speed:  f.cfg.MinSpeed + f.rng.Float64()*(f.cfg.MaxSpeed-f.cfg.MinSpeed),
			Sprite: sprite,
		})
		return SpawnPlaced
	}
	return SpawnSkipped
}

// overlapsAny reports whether r intersects any obstacle hitbox.
func (f *ObstacleField) overlapsAny(r core.RectF) bool {
	for _, o := range f.obstacles {
		if r.Intersects(o.Hitbox()) {
			return true
		}
	}
	return false
}

// CheckCollision returns the first obstacle, in field order, whose hitbox
// intersects the given rectangle.
func (f *ObstacleField) CheckCollision(r core.RectF) (Obstacle, bool) {
	for _, o := range f.obstacles {
		if r.Intersects(o.Hitbox()) {
			return o, true
		}
	}
	return Obstacle{}, false
}
