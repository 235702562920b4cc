package racer

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

func newTestField(seed int64, mutate func(*config.RacerConfig)) *ObstacleField {
	cfg := config.DefaultRacerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewObstacleField(seed, cfg.Obstacles, cfg.Canvas)
}

func TestSpawnedObstacleProperties(t *testing.T) {
	f := newTestField(7, nil)
	cfg := config.DefaultRacerConfig().Obstacles

	for range 50 {
		f.Clear()
		if got := f.Spawn(); got != SpawnPlaced {
			t.Fatalf("Spawn() on empty field = %v, expected Placed", got)
		}
		o := f.Obstacles()[0]

		if o.X < 0 || o.X >= 400-cfg.Width || o.X != math.Floor(o.X) {
			t.Errorf("x = %v, expected a whole number in [0, %v)", o.X, 400-cfg.Width)
		}
		if o.Y != -cfg.Height {
			t.Errorf("y = %v, expected %v", o.Y, -cfg.Height)
		}
		if o.Speed < cfg.MinSpeed || o.Speed >= cfg.MaxSpeed {
			t.Errorf("speed = %v, expected [%v, %v)", o.Speed, cfg.MinSpeed, cfg.MaxSpeed)
		}
		if !slices.Contains(cfg.Sprites, o.Sprite.ID) {
			t.Errorf("sprite = %q, expected one of %v", o.Sprite.ID, cfg.Sprites)
		}
		if o.ImgW != 80 || o.Width >= o.ImgW {
			t.Errorf("sizes = hitbox %v, sprite %v, expected hitbox narrower than 80px sprite", o.Width, o.ImgW)
		}
	}
}

func TestSpawnNeverOverlaps(t *testing.T) {
	f := newTestField(42, nil)

	for range 200 {
		f.Spawn()
		obs := f.Obstacles()
		for i := range obs {
			for j := i + 1; j < len(obs); j++ {
				if obs[i].Hitbox().Intersects(obs[j].Hitbox()) {
					t.Fatalf("obstacles %d and %d overlap: %+v, %+v", i, j, obs[i], obs[j])
				}
			}
		}
	}

	// 400px fits at most 15 hitboxes of 26.67px side by side.
	if f.Len() > 15 {
		t.Errorf("Len() = %d, expected at most 15 on a saturated row", f.Len())
	}
}

func TestSpawnSkipsWhenSaturated(t *testing.T) {
	f := newTestField(1, func(c *config.RacerConfig) { c.Canvas.Width = 30 })

	if got := f.Spawn(); got != SpawnPlaced {
		t.Fatalf("first Spawn() = %v, expected Placed", got)
	}
	for range 20 {
		if got := f.Spawn(); got != SpawnSkipped {
			t.Fatalf("Spawn() on a full row = %v, expected Skipped", got)
		}
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", f.Len())
	}
}

func TestMaybeSpawnChance(t *testing.T) {
	never := newTestField(3, func(c *config.RacerConfig) { c.Obstacles.SpawnChance = 0 })
	always := newTestField(3, func(c *config.RacerConfig) { c.Obstacles.SpawnChance = 1 })

	for range 100 {
		if got := never.MaybeSpawn(); got != SpawnNone {
			t.Fatalf("MaybeSpawn() with chance 0 = %v, expected None", got)
		}
	}
	if got := always.MaybeSpawn(); got != SpawnPlaced {
		t.Errorf("MaybeSpawn() with chance 1 = %v, expected Placed", got)
	}
}

func TestAdvanceRemovesPastBottom(t *testing.T) {
	f := newTestField(1, nil)
	f.Add(Obstacle{X: 0, Y: 595, Width: 10, Height: 10, Speed: 4})   // 599, then 603
	f.Add(Obstacle{X: 50, Y: 596, Width: 10, Height: 10, Speed: 4})  // 600, gone
	f.Add(Obstacle{X: 100, Y: -10, Width: 10, Height: 10, Speed: 2}) // stays

	f.Advance()
	if f.Len() != 2 {
		t.Fatalf("Len() after first Advance = %d, expected 2", f.Len())
	}
	if got := f.Obstacles(); got[0].X != 0 || got[1].X != 100 {
		t.Errorf("order after removal = %v, %v, expected 0, 100", got[0].X, got[1].X)
	}
	if got := f.Obstacles()[1].Y; got != -8 {
		t.Errorf("y after Advance = %v, expected -8", got)
	}

	f.Advance()
	if f.Len() != 1 || f.Obstacles()[0].X != 100 {
		t.Errorf("after second Advance = %+v, expected only x=100", f.Obstacles())
	}
}

func TestAdvanceNeverGrowsField(t *testing.T) {
	f := newTestField(9, nil)
	for range 10 {
		f.Spawn()
	}

	prev := f.Len()
	for range 400 {
		f.Advance()
		if f.Len() > prev {
			t.Fatalf("Len() grew from %d to %d without spawning", prev, f.Len())
		}
		prev = f.Len()
	}
	if prev != 0 {
		t.Errorf("Len() after 400 ticks = %d, expected every obstacle gone", prev)
	}
}

func TestCheckCollision(t *testing.T) {
	player := core.NewRectF(10, 10, 30, 40)

	tests := []struct {
		name string
		obs  Obstacle
		want bool
	}{
		{"overlapping", Obstacle{X: 20, Y: 20, Width: 30, Height: 40}, true},
		{"far right", Obstacle{X: 100, Y: 10, Width: 30, Height: 40}, false},
		{"touching edge", Obstacle{X: 40, Y: 10, Width: 30, Height: 40}, false},
		{"above", Obstacle{X: 10, Y: -40, Width: 30, Height: 40}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestField(1, nil)
			f.Add(tc.obs)
			_, got := f.CheckCollision(player)
			if got != tc.want {
				t.Errorf("CheckCollision() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestFieldDeterminism(t *testing.T) {
	a := newTestField(12345, nil)
	b := newTestField(12345, nil)

	for range 500 {
		a.MaybeSpawn()
		b.MaybeSpawn()
		a.Advance()
		b.Advance()
	}

	if !slices.Equal(a.Obstacles(), b.Obstacles()) {
		t.Errorf("fields with the same seed diverged:\n%+v\n%+v", a.Obstacles(), b.Obstacles())
	}
}
