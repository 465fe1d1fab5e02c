package config

// DifficultyManager maps a run score onto a row of the platform kind table.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty follows the score.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Progression != "none"
}

// DifficultyScore returns the score used for tier lookup and the monster
// threshold. With progression disabled it is pinned to the offset.
func (d *DifficultyManager) DifficultyScore(score float64) float64 {
	if !d.IsEnabled() {
		return d.cfg.ScoreOffset
	}
	return score + d.cfg.ScoreOffset
}

// Tier returns the kind table row for a run score.
// The first tier whose Below bound exceeds the difficulty score wins;
// a zero bound matches everything.
func (d *DifficultyManager) Tier(score float64) TierConfig {
	ds := d.DifficultyScore(score)
	for _, t := range d.cfg.Tiers {
		if t.Below <= 0 || ds < t.Below {
			return t
		}
	}
	if n := len(d.cfg.Tiers); n > 0 {
		return d.cfg.Tiers[n-1]
	}
	return TierConfig{Weights: KindWeights{Normal: 1}, AfterBreaking: FollowWeights{Moving: 1}}
}

// TierIndex returns the zero-based index of the tier for a run score.
func (d *DifficultyManager) TierIndex(score float64) int {
	ds := d.DifficultyScore(score)
	for i, t := range d.cfg.Tiers {
		if t.Below <= 0 || ds < t.Below {
			return i
		}
	}
	if len(d.cfg.Tiers) == 0 {
		return 0
	}
	return len(d.cfg.Tiers) - 1
}
