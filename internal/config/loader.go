package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// LoadRacer loads the Lane Racer configuration.
// Search order: customPath -> ~/.racer/configs/racer.yaml -> ./configs/racer.yaml -> embedded default.
// Files only need to set the keys they override; everything else keeps its default.
func LoadRacer(customPath string) (RacerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRacer(data)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("racer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRacer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/racer.yaml"); err == nil {
		if cfg, err := parseRacer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRacer(defaultRacerYAML)
	if err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRacer decodes YAML over the hard-coded defaults and validates the result.
func parseRacer(data []byte) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RacerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c RacerConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer", "configs", filename)
}

// ApplyRacerPreset modifies the config based on a difficulty preset.
// The empty preset keeps the loaded values.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyNormal:
		cfg.Obstacles.MinSpeed = 2
		cfg.Obstacles.MaxSpeed = 4
	case DifficultyHard:
		cfg.Obstacles.MinSpeed = 5
		cfg.Obstacles.MaxSpeed = 8
	}
}

// Validate checks that the configuration describes a playable game.
func (c RacerConfig) Validate() error {
	var errs []error

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, errors.New("canvas size must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player hitbox must be positive"))
	}
	if c.Player.Width > c.Canvas.Width || c.Player.Height > c.Canvas.Height {
		errs = append(errs, errors.New("player hitbox must fit the canvas"))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, errors.New("player speed must not be negative"))
	}
	if c.Player.Damping <= 0 || c.Player.Damping > 1 {
		errs = append(errs, fmt.Errorf("player damping %v outside (0, 1]", c.Player.Damping))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, errors.New("obstacle hitbox must be positive"))
	}
	if c.Obstacles.Width >= c.Canvas.Width {
		errs = append(errs, errors.New("obstacle hitbox must be narrower than the canvas"))
	}
	if c.Obstacles.MinSpeed <= 0 || c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed {
		errs = append(errs, fmt.Errorf("obstacle speed range [%v, %v) is invalid", c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed))
	}
	if c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("spawn chance %v outside [0, 1]", c.Obstacles.SpawnChance))
	}
	if c.Obstacles.MaxPlacementAttempts < 1 {
		errs = append(errs, errors.New("max placement attempts must be at least 1"))
	}
	if len(c.Obstacles.Sprites) == 0 {
		errs = append(errs, errors.New("at least one obstacle sprite is required"))
	}
	if c.Track.Lanes < 1 {
		errs = append(errs, errors.New("track needs at least one lane"))
	}
	if c.Track.ScrollWrap < 0 {
		errs = append(errs, errors.New("scroll wrap must not be negative"))
	}
	for _, d := range c.Track.Dash {
		if d < 0 {
			errs = append(errs, errors.New("dash lengths must not be negative"))
			break
		}
	}
	for name, hex := range map[string]string{"background": c.Track.Background, "divider": c.Track.Divider} {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("track %s colour %q: %w", name, hex, err))
		}
	}
	if c.Session.InitialFuel <= 0 {
		errs = append(errs, errors.New("initial fuel must be positive"))
	}
	if c.Session.FuelPerTick < 0 {
		errs = append(errs, errors.New("fuel per tick must not be negative"))
	}
	if c.Input.KeyHoldMS < 0 {
		errs = append(errs, errors.New("key hold must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
