package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadHighJump("")
	if err != nil {
		t.Fatalf("LoadHighJump() failed: %v", err)
	}
	want := DefaultHighJumpConfig()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults differ from DefaultHighJumpConfig()\n got: %+v\nwant: %+v", cfg, want)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultHighJumpConfig().Validate(); err != nil {
		t.Fatalf("Validate() failed on defaults: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "physics:\n  gravity: 0.5\neffects:\n  balloon: 1500ms\n")

	cfg, err := LoadHighJump(path)
	if err != nil {
		t.Fatalf("LoadHighJump() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, want 0.5", cfg.Physics.Gravity)
	}
	if cfg.Effects.Balloon != 1500*time.Millisecond {
		t.Errorf("Balloon = %v, want 1.5s", cfg.Effects.Balloon)
	}
	// Untouched values keep their defaults
	if cfg.Physics.JumpPower != -13 {
		t.Errorf("JumpPower = %v, want -13", cfg.Physics.JumpPower)
	}
	if len(cfg.Difficulty.Tiers) != 4 {
		t.Errorf("Tiers = %d, want 4", len(cfg.Difficulty.Tiers))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := LoadHighJump(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "physics: [not, a, map\n")
	if _, err := LoadHighJump(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "world:\n  width: 0\n")
	if _, err := LoadHighJump(invalid); err == nil {
		t.Error("expected error for invalid world size")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "highjump.yaml"), "physics:\n  gravity: 0.3\n")
	cfg, err := LoadHighJump("")
	if err != nil {
		t.Fatalf("LoadHighJump() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.3 {
		t.Errorf("local config not used: gravity = %v", cfg.Physics.Gravity)
	}

	// User config wins over local
	writeFile(t, filepath.Join(home, ".arcade", "configs", "highjump.yaml"), "physics:\n  gravity: 0.2\n")
	cfg, err = LoadHighJump("")
	if err != nil {
		t.Fatalf("LoadHighJump() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.2 {
		t.Errorf("user config not preferred: gravity = %v", cfg.Physics.Gravity)
	}
}

func TestLoadSkipsInvalidOptionalFile(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "highjump.yaml"), "difficulty:\n  tiers: []\n")

	cfg, err := LoadHighJump("")
	if err != nil {
		t.Fatalf("LoadHighJump() failed: %v", err)
	}
	if len(cfg.Difficulty.Tiers) != 4 {
		t.Errorf("invalid user config should fall through to defaults, got %d tiers", len(cfg.Difficulty.Tiers))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HighJumpConfig)
	}{
		{"zero width", func(c *HighJumpConfig) { c.World.Width = 0 }},
		{"platform too wide", func(c *HighJumpConfig) { c.Platforms.Width = 560 }},
		{"distance inverted", func(c *HighJumpConfig) { c.Platforms.MinDistance = 300 }},
		{"zero gap", func(c *HighJumpConfig) { c.Platforms.Gap = 0 }},
		{"no tiers", func(c *HighJumpConfig) { c.Difficulty.Tiers = nil }},
		{"empty weights", func(c *HighJumpConfig) { c.Difficulty.Tiers[1].Weights = KindWeights{} }},
		{"empty after_breaking", func(c *HighJumpConfig) { c.Difficulty.Tiers[2].AfterBreaking = FollowWeights{} }},
		{"open tier first", func(c *HighJumpConfig) { c.Difficulty.Tiers[0].Below = 0 }},
		{"descending bounds", func(c *HighJumpConfig) { c.Difficulty.Tiers[1].Below = 1000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultHighJumpConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() returned nil, want error")
			}
		})
	}
}

func TestApplyHighJumpPreset(t *testing.T) {
	base := DefaultHighJumpConfig()

	easy := DefaultHighJumpConfig()
	ApplyHighJumpPreset(&easy, DifficultyEasy)
	if easy.Monsters.SpawnChance != base.Monsters.SpawnChance/2 {
		t.Errorf("easy spawn chance = %v, want %v", easy.Monsters.SpawnChance, base.Monsters.SpawnChance/2)
	}

	hard := DefaultHighJumpConfig()
	ApplyHighJumpPreset(&hard, DifficultyHard)
	if hard.Difficulty.ScoreOffset != 2000 {
		t.Errorf("hard offset = %v, want 2000", hard.Difficulty.ScoreOffset)
	}

	fixed := DefaultHighJumpConfig()
	ApplyHighJumpPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Progression != "none" {
		t.Errorf("fixed progression = %q, want none", fixed.Difficulty.Progression)
	}

	none := DefaultHighJumpConfig()
	ApplyHighJumpPreset(&none, "")
	if !reflect.DeepEqual(none, base) {
		t.Error("empty preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"insane", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ParsePreset(tt.in); got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
