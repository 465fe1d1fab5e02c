// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "time"

// HighJumpConfig contains all configuration for the High Jump game.
// World units match the original canvas: 600 wide, 1000 tall, y grows downward.
type HighJumpConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Breaking   BreakingConfig   `yaml:"breaking"`
	Items      ItemConfig       `yaml:"items"`
	Effects    EffectConfig     `yaml:"effects"`
	Monsters   MonsterConfig    `yaml:"monsters"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Reveal     RevealConfig     `yaml:"reveal"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Terminal   TerminalConfig   `yaml:"terminal"`
}

// WorldConfig is the fixed viewport size.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player motion parameters.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	JumpPower       float64 `yaml:"jump_power"`
	SpringJumpPower float64 `yaml:"spring_jump_power"`
	MoveSpeed       float64 `yaml:"move_speed"`
	Acceleration    float64 `yaml:"acceleration"`
	Friction        float64 `yaml:"friction"`
	StopThreshold   float64 `yaml:"stop_threshold"`
}

// PlayerConfig defines the player hitbox and spawn point.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartOffsetY float64 `yaml:"start_offset_y"` // distance of spawn Y above the bottom edge
}

// PlatformConfig defines platform geometry and the generator's placement rules.
type PlatformConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Gap          float64 `yaml:"gap"`
	MinCount     int     `yaml:"min_count"`
	MoveSpeed    float64 `yaml:"move_speed"`
	EdgeMargin   float64 `yaml:"edge_margin"`
	WrapJitter   float64 `yaml:"wrap_jitter"`
	MinDistance  float64 `yaml:"min_distance"`
	MaxDistance  float64 `yaml:"max_distance"`
	StartOffsetY float64 `yaml:"start_offset_y"` // start platform Y above the bottom edge
	SeedUntilY   float64 `yaml:"seed_until_y"`   // initial stack is built while y > this
	SpringChance float64 `yaml:"spring_chance"`
	SpringWidth  float64 `yaml:"spring_width"`
	SpringHeight float64 `yaml:"spring_height"`
	ItemChance   float64 `yaml:"item_chance"`
	BalloonShare float64 `yaml:"balloon_share"`
}

// BreakingConfig defines the break-apart animation of Breaking platforms.
type BreakingConfig struct {
	GravityScale float64 `yaml:"gravity_scale"`
	PieceSpeed   float64 `yaml:"piece_speed"`
	Spin         float64 `yaml:"spin"`
	MaxFrames    int     `yaml:"max_frames"`
}

// ItemConfig defines power-up item geometry.
type ItemConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EffectConfig defines status effect durations and their vertical speeds.
type EffectConfig struct {
	Balloon        time.Duration `yaml:"balloon"`
	Jetpack        time.Duration `yaml:"jetpack"`
	Stunned        time.Duration `yaml:"stunned"`
	BalloonStartVY float64       `yaml:"balloon_start_vy"`
	BalloonEndVY   float64       `yaml:"balloon_end_vy"`
	JetpackVY      float64       `yaml:"jetpack_vy"`
	StunnedVY      float64       `yaml:"stunned_vy"`
	StarSpin       float64       `yaml:"star_spin"`
}

// MonsterConfig defines monster geometry, motion, and spawn odds.
type MonsterConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnChance  float64 `yaml:"spawn_chance"`
	MinScore     float64 `yaml:"min_score"`
	Speed        float64 `yaml:"speed"`
	OrbitRadius  float64 `yaml:"orbit_radius"`
	OrbitSpeed   float64 `yaml:"orbit_speed"`
	SpawnOffsetY float64 `yaml:"spawn_offset_y"`
	Variants     int     `yaml:"variants"`
}

// BulletConfig defines projectile geometry and speed.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // negative = upward
}

// ScoringConfig defines how scroll distance turns into score.
type ScoringConfig struct {
	ScrollFactor float64 `yaml:"scroll_factor"`
}

// RevealConfig drives the game-over panel drop animation.
type RevealConfig struct {
	StartY  float64 `yaml:"start_y"`
	TargetY float64 `yaml:"target_y"`
	Speed   float64 `yaml:"speed"`
}

// TerminalConfig holds settings for the terminal presentation only.
type TerminalConfig struct {
	// MoveHoldTicks is how long a single steering key press stays active.
	// Terminals report presses but not releases.
	MoveHoldTicks int `yaml:"move_hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Progression string       `yaml:"progression"`  // "score" or "none"
	ScoreOffset float64      `yaml:"score_offset"` // added to the run score before tier lookup
	Tiers       []TierConfig `yaml:"tiers"`
}

// TierConfig is one row of the platform kind table.
// Below is the exclusive upper score bound; 0 marks the open-ended last tier.
type TierConfig struct {
	Below         float64     `yaml:"below"`
	Weights       KindWeights   `yaml:"weights"`
	AfterBreaking FollowWeights `yaml:"after_breaking"`
}

// KindWeights are relative odds of each platform kind. They need not sum to 1.
type KindWeights struct {
	Normal       float64 `yaml:"normal"`
	Moving       float64 `yaml:"moving"`
	Breaking     float64 `yaml:"breaking"`
	Disappearing float64 `yaml:"disappearing"`
}

// Total returns the sum of all weights.
func (w KindWeights) Total() float64 {
	return w.Normal + w.Moving + w.Breaking + w.Disappearing
}

// FollowWeights are the odds right after a Breaking platform. Normal and
// Breaking cannot follow one, so only the other two kinds have a column.
type FollowWeights struct {
	Moving       float64 `yaml:"moving"`
	Disappearing float64 `yaml:"disappearing"`
}

// Kinds widens the row to a full weight table.
func (w FollowWeights) Kinds() KindWeights {
	return KindWeights{Moving: w.Moving, Disappearing: w.Disappearing}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
