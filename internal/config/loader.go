package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHighJump loads High Jump configuration.
// Search order: customPath -> ~/.arcade/configs/highjump.yaml -> ./configs/highjump.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadHighJump(customPath string) (HighJumpConfig, error) {
	cfg := DefaultHighJumpConfig()

	// Explicit path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("highjump.yaml"), filepath.Join("configs", "highjump.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := loadFile(path); ok {
			return loaded, nil
		}
	}

	// Embedded default
	if err := yaml.Unmarshal(defaultHighJumpYAML, &cfg); err != nil {
		return DefaultHighJumpConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		return DefaultHighJumpConfig(), nil
	}
	return cfg, nil
}

// loadFile reads an optional config file. Unreadable or invalid files are skipped.
func loadFile(path string) (HighJumpConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HighJumpConfig{}, false
	}
	cfg := DefaultHighJumpConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HighJumpConfig{}, false
	}
	if cfg.Validate() != nil {
		return HighJumpConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyHighJumpPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyHighJumpPreset(cfg *HighJumpConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Progression = "score"
		cfg.Difficulty.ScoreOffset = 0
		cfg.Monsters.SpawnChance /= 2
	case DifficultyNormal:
		cfg.Difficulty.Progression = "score"
	case DifficultyHard:
		cfg.Difficulty.Progression = "score"
		cfg.Difficulty.ScoreOffset = 2000
	case DifficultyFixed:
		cfg.Difficulty.Progression = "none"
	}
}

var (
	errBadWorld  = errors.New("world size must be positive")
	errBadTiers  = errors.New("difficulty tiers are invalid")
	errBadLayout = errors.New("platform layout does not fit the world")
)

// Validate reports settings the simulation cannot run with.
func (c HighJumpConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return errBadWorld
	}
	if c.Platforms.Width <= 0 || c.Platforms.Height <= 0 {
		return fmt.Errorf("%w: platform size %vx%v", errBadLayout, c.Platforms.Width, c.Platforms.Height)
	}
	if c.Platforms.Width+2*c.Platforms.EdgeMargin >= c.World.Width {
		return fmt.Errorf("%w: platform width %v with margin %v", errBadLayout, c.Platforms.Width, c.Platforms.EdgeMargin)
	}
	if c.Platforms.MinDistance > c.Platforms.MaxDistance {
		return fmt.Errorf("%w: min_distance %v > max_distance %v", errBadLayout, c.Platforms.MinDistance, c.Platforms.MaxDistance)
	}
	if c.Platforms.Gap <= 0 {
		return fmt.Errorf("%w: gap must be positive", errBadLayout)
	}
	if len(c.Difficulty.Tiers) == 0 {
		return fmt.Errorf("%w: no tiers", errBadTiers)
	}
	prev := 0.0
	for i, t := range c.Difficulty.Tiers {
		if t.Weights.Total() <= 0 {
			return fmt.Errorf("%w: tier %d has no weight", errBadTiers, i)
		}
		if t.AfterBreaking.Kinds().Total() <= 0 {
			return fmt.Errorf("%w: tier %d has no after_breaking weight", errBadTiers, i)
		}
		last := i == len(c.Difficulty.Tiers)-1
		if t.Below <= 0 && !last {
			return fmt.Errorf("%w: only the last tier may be open-ended", errBadTiers)
		}
		if t.Below > 0 && t.Below <= prev {
			return fmt.Errorf("%w: tier %d bound %v not ascending", errBadTiers, i, t.Below)
		}
		prev = t.Below
	}
	return nil
}
