package config

import "testing"

func TestDifficultyTier(t *testing.T) {
	dm := NewDifficultyManager(DefaultHighJumpConfig().Difficulty)

	tests := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{1999, 0},
		{2000, 1},
		{3999.5, 1},
		{4000, 2},
		{6999, 2},
		{7000, 3},
		{1e6, 3},
	}
	for _, tt := range tests {
		if got := dm.TierIndex(tt.score); got != tt.want {
			t.Errorf("TierIndex(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}

	if w := dm.Tier(500).Weights; w.Normal != 0.65 {
		t.Errorf("tier 0 normal weight = %v, want 0.65", w.Normal)
	}
	if w := dm.Tier(9000).Weights; w.Breaking != 0.40 {
		t.Errorf("tier 3 breaking weight = %v, want 0.40", w.Breaking)
	}
}

func TestDifficultyOffsetAndFixed(t *testing.T) {
	cfg := DefaultHighJumpConfig()
	ApplyHighJumpPreset(&cfg, DifficultyHard)
	dm := NewDifficultyManager(cfg.Difficulty)
	if got := dm.TierIndex(0); got != 1 {
		t.Errorf("hard TierIndex(0) = %d, want 1", got)
	}
	if got := dm.DifficultyScore(100); got != 2100 {
		t.Errorf("hard DifficultyScore(100) = %v, want 2100", got)
	}

	cfg = DefaultHighJumpConfig()
	ApplyHighJumpPreset(&cfg, DifficultyFixed)
	dm = NewDifficultyManager(cfg.Difficulty)
	if dm.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if got := dm.TierIndex(50000); got != 0 {
		t.Errorf("fixed TierIndex(50000) = %d, want 0", got)
	}
}

func TestDifficultyNoTiers(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Progression: "score"})
	tier := dm.Tier(100)
	if tier.Weights.Total() <= 0 {
		t.Error("fallback tier must carry weight")
	}
	if dm.TierIndex(100) != 0 {
		t.Error("fallback tier index should be 0")
	}
}
