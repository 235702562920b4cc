package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the default Lane Racer configuration.
// It matches defaults/racer.yaml and is used when the embedded file cannot be parsed.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        30,
			Height:       80,
			SpriteWidth:  80,
			SpriteHeight: 90,
			Speed:        10,
			BottomOffset: 80,
			LeanAngle:    20,
			Damping:      0.1,
			Sprite:       "player",
		},
		Obstacles: ObstacleConfig{
			Width:                80.0 / 3,  // sprite width * 1/3
			Height:               400.0 / 9, // sprite height * 2/3
			SpriteWidth:          80,
			SpriteHeight:         200.0 / 3,
			MinSpeed:             2,
			MaxSpeed:             4,
			SpawnChance:          0.01,
			MaxPlacementAttempts: 10,
			Sprites:              []string{"object_1", "object_2", "object_3"},
		},
		Track: TrackConfig{
			Lanes:       4,
			ScrollSpeed: 5,
			ScrollWrap:  40,
			Dash:        []float64{20, 20},
			LineWidth:   2,
			Background:  "#808080",
			Divider:     "#FFFF00",
		},
		Session: SessionConfig{
			InitialFuel: 100,
			FuelPerTick: 0.1,
		},
		Input: InputConfig{
			KeyHoldMS: 120,
		},
		Audio: AudioConfig{
			Enabled:       true,
			AmbientVolume: 0.12,
			EffectsVolume: 0.6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRacerYAML
}
