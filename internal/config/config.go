// Package config provides YAML-based game configuration loading and
// difficulty presets for the racer.
package config

// RacerConfig contains all tunable constants of the lane racer.
type RacerConfig struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Track     TrackConfig    `yaml:"track"`
	Session   SessionConfig  `yaml:"session"`
	Input     InputConfig    `yaml:"input"`
	Audio     AudioConfig    `yaml:"audio"`
}

// CanvasConfig defines the logical drawing surface in pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player car.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`  // Hitbox width
	Height       float64 `yaml:"height"` // Hitbox height
	SpriteWidth  float64 `yaml:"sprite_width"`
	SpriteHeight float64 `yaml:"sprite_height"`
	Speed        float64 `yaml:"speed"`         // Pixels per tick per held key
	BottomOffset float64 `yaml:"bottom_offset"` // Start y = canvas height - bottom_offset
	LeanAngle    float64 `yaml:"lean_angle"`    // Target tilt in degrees while steering
	Damping      float64 `yaml:"damping"`       // Rotation smoothing factor in (0, 1]
	Sprite       string  `yaml:"sprite"`
}

// ObstacleConfig defines falling obstacles and the spawner.
type ObstacleConfig struct {
	Width                float64  `yaml:"width"`  // Hitbox width
	Height               float64  `yaml:"height"` // Hitbox height
	SpriteWidth          float64  `yaml:"sprite_width"`
	SpriteHeight         float64  `yaml:"sprite_height"`
	MinSpeed             float64  `yaml:"min_speed"`
	MaxSpeed             float64  `yaml:"max_speed"`
	SpawnChance          float64  `yaml:"spawn_chance"`           // Probability of a spawn attempt per tick
	MaxPlacementAttempts int      `yaml:"max_placement_attempts"` // Rejection sampling cap
	Sprites              []string `yaml:"sprites"`
}

// TrackConfig defines the scrolling lane track.
type TrackConfig struct {
	Lanes       int       `yaml:"lanes"`        // Lanes across the canvas; dividers = lanes - 1
	ScrollSpeed float64   `yaml:"scroll_speed"` // Divider offset advance per tick
	ScrollWrap  float64   `yaml:"scroll_wrap"`  // Offset resets to 0 once it exceeds this
	Dash        []float64 `yaml:"dash"`         // On/off dash lengths
	LineWidth   float64   `yaml:"line_width"`
	Background  string    `yaml:"background"`
	Divider     string    `yaml:"divider"`
}

// SessionConfig defines score and fuel bookkeeping.
type SessionConfig struct {
	InitialFuel float64 `yaml:"initial_fuel"`
	FuelPerTick float64 `yaml:"fuel_per_tick"`
}

// InputConfig defines host input behaviour.
type InputConfig struct {
	// KeyHoldMS is how long a terminal key counts as held after its last repeat.
	// Terminals send no key-release events, so the host releases keys itself.
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// AudioConfig defines the audio collaborator.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	AmbientVolume float64 `yaml:"ambient_volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
}

// DifficultyPreset represents a named set of obstacle constants.
type DifficultyPreset string

const (
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a CLI string to a preset.
// Unknown or empty strings yield "" which keeps the config file values.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	default:
		return ""
	}
}

// Title returns a display name for the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return "Custom"
	}
}
