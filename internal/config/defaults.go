package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/highjump.yaml
var defaultHighJumpYAML []byte

// DefaultHighJumpConfig returns the built-in High Jump configuration.
// It mirrors defaults/highjump.yaml and is the last-resort fallback.
func DefaultHighJumpConfig() HighJumpConfig {
	return HighJumpConfig{
		World: WorldConfig{
			Width:  600,
			Height: 1000,
		},
		Physics: PhysicsConfig{
			Gravity:         0.4,
			JumpPower:       -13,
			SpringJumpPower: -24,
			MoveSpeed:       7,
			Acceleration:    0.5,
			Friction:        0.85,
			StopThreshold:   0.1,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       50,
			StartOffsetY: 150,
		},
		Platforms: PlatformConfig{
			Width:        85,
			Height:       20,
			Gap:          80,
			MinCount:     15,
			MoveSpeed:    2,
			EdgeMargin:   30,
			WrapJitter:   100,
			MinDistance:  80,
			MaxDistance:  250,
			StartOffsetY: 80,
			SeedUntilY:   -400,
			SpringChance: 0.2,
			SpringWidth:  20,
			SpringHeight: 20,
			ItemChance:   0.04,
			BalloonShare: 0.4,
		},
		Breaking: BreakingConfig{
			GravityScale: 0.8,
			PieceSpeed:   2,
			Spin:         0.08,
			MaxFrames:    60,
		},
		Items: ItemConfig{
			Width:  40,
			Height: 50,
		},
		Effects: EffectConfig{
			Balloon:        3 * time.Second,
			Jetpack:        3 * time.Second,
			Stunned:        2 * time.Second,
			BalloonStartVY: -5,
			BalloonEndVY:   -20,
			JetpackVY:      -25,
			StunnedVY:      5,
			StarSpin:       0.2,
		},
		Monsters: MonsterConfig{
			Width:        120,
			Height:       120,
			SpawnChance:  0.03,
			MinScore:     2000,
			Speed:        2,
			OrbitRadius:  20,
			OrbitSpeed:   0.05,
			SpawnOffsetY: 50,
			Variants:     3,
		},
		Bullets: BulletConfig{
			Width:  20,
			Height: 30,
			Speed:  -15,
		},
		Scoring: ScoringConfig{
			ScrollFactor: 0.5,
		},
		Reveal: RevealConfig{
			StartY:  -500,
			TargetY: 200,
			Speed:   15,
		},
		Difficulty: DifficultyConfig{
			Progression: "score",
			Tiers: []TierConfig{
				{
					Below:         2000,
					Weights:       KindWeights{Normal: 0.65, Moving: 0.15, Breaking: 0.10, Disappearing: 0.10},
					AfterBreaking: FollowWeights{Moving: 0.15, Disappearing: 0.10},
				},
				{
					Below:         4000,
					Weights:       KindWeights{Normal: 0.35, Moving: 0.30, Breaking: 0.20, Disappearing: 0.15},
					AfterBreaking: FollowWeights{Moving: 0.30, Disappearing: 0.20},
				},
				{
					Below:         7000,
					Weights:       KindWeights{Normal: 0.10, Moving: 0.25, Breaking: 0.35, Disappearing: 0.30},
					AfterBreaking: FollowWeights{Moving: 0.35, Disappearing: 0.35},
				},
				{
					Below:         0,
					Weights:       KindWeights{Normal: 0.03, Moving: 0.20, Breaking: 0.40, Disappearing: 0.37},
					AfterBreaking: FollowWeights{Moving: 0.40, Disappearing: 0.57},
				},
			},
		},
		Terminal: TerminalConfig{
			MoveHoldTicks: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "highjump", "highjump_attract":
		return defaultHighJumpYAML
	default:
		return nil
	}
}
