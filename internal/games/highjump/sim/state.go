package sim

import (
	"math/rand"

	"github.com/vovakirdan/highjump/internal/config"
	"github.com/vovakirdan/highjump/internal/core"
)

// HighScoreKeeper persists the best score across runs.
type HighScoreKeeper interface {
	HighScore() int
	SetHighScore(score int)
}

// Options configure a new State.
type Options struct {
	Config config.HighJumpConfig
	Seed   int64
	Clock  core.Clock      // defaults to a ManualClock
	Keeper HighScoreKeeper // optional
}

// State is one run of the game. It owns every entity store and is mutated
// only by Step. Independent States share nothing.
type State struct {
	cfg        config.HighJumpConfig
	clock      core.Clock
	keeper     HighScoreKeeper
	rng        *rand.Rand
	factory    *PlatformFactory
	difficulty *config.DifficultyManager

	player    Player
	platforms []Platform
	items     []Item
	monsters  []Monster
	bullets   []Bullet

	score     float64
	highScore float64
	lastKind  PlatformKind
	firePrev  bool
	gameOver  bool
	revealY   float64
	steps     int
}

// New creates a run and seeds the first platform stack.
func New(opts Options) *State {
	clock := opts.Clock
	if clock == nil {
		clock = core.NewManualClock()
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	s := &State{
		cfg:        opts.Config,
		clock:      clock,
		keeper:     opts.Keeper,
		rng:        rng,
		factory:    NewPlatformFactory(opts.Config, rng),
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
	}
	s.Reset()
	return s
}

// Reset starts a fresh run: empty stores, player on the start platform,
// zero score, and a newly generated stack.
func (s *State) Reset() {
	w := s.cfg.World
	pc := s.cfg.Player

	s.player = Player{
		X: w.Width/2 - pc.Width/2,
		Y: w.Height - pc.StartOffsetY,
		W: pc.Width,
		H: pc.Height,
	}
	s.platforms = s.platforms[:0]
	s.items = s.items[:0]
	s.monsters = s.monsters[:0]
	s.bullets = s.bullets[:0]
	s.score = 0
	s.lastKind = KindNormal
	s.firePrev = false
	s.gameOver = false
	s.revealY = s.cfg.Reveal.StartY
	s.steps = 0

	if s.keeper != nil {
		s.highScore = float64(s.keeper.HighScore())
	}

	s.seedPlatforms()
}

// seedPlatforms lays the start platform and chains platforms upward every
// gap until the seed limit.
func (s *State) seedPlatforms() {
	pc := s.cfg.Platforms
	start := s.factory.Start()
	s.platforms = append(s.platforms, start)

	prevX := start.X
	for y := s.cfg.World.Height - s.cfg.Player.StartOffsetY; y > pc.SeedUntilY; y -= pc.Gap {
		p := s.factory.Create(PlatformRequest{
			Y:        y,
			PrevX:    prevX,
			HasPrev:  true,
			LastKind: s.lastKind,
			Score:    s.score,
		})
		s.lastKind = p.Kind
		prevX = p.X
		s.platforms = append(s.platforms, p)
	}
}

// Step advances the run by one fixed tick.
func (s *State) Step(in Input) StepResult {
	if s.gameOver {
		return s.stepGameOver(in)
	}
	s.steps++

	var ev Events
	now := s.clock.Now()
	phys := s.cfg.Physics

	if in.Fire && !s.firePrev {
		s.spawnBullet()
		ev |= EventFired
	}
	s.firePrev = in.Fire

	s.player.applyStatus(now, s.cfg.Effects)
	s.player.steer(in, phys)
	s.player.moveX(s.cfg.World.Width)
	s.player.fall(phys.Gravity)

	s.moveMonsters()
	if s.moveBullets() > 0 {
		ev |= EventMonsterKilled
	}
	s.movePlatforms()
	s.animateBreaking()

	ev |= s.collidePlatforms()
	ev |= s.collectItems(now)
	ev |= s.collectCarried(now)
	ev |= s.collideMonsters(now)

	shift, beat := s.resolveScroll()
	if beat {
		ev |= EventNewHighScore
	}
	s.shiftWorld(shift)
	s.topUp()

	if s.player.Y > s.cfg.World.Height {
		s.gameOver = true
		s.revealY = s.cfg.Reveal.StartY
		ev |= EventGameOver
	}

	return StepResult{Events: ev, Scrolled: shift, GameOver: s.gameOver}
}

// stepGameOver only runs the reveal animation until a restart arrives.
func (s *State) stepGameOver(in Input) StepResult {
	s.firePrev = in.Fire
	if in.Restart {
		s.Reset()
		s.firePrev = in.Fire
		return StepResult{Events: EventRestart}
	}
	rc := s.cfg.Reveal
	if s.revealY < rc.TargetY {
		s.revealY += rc.Speed
		if s.revealY > rc.TargetY {
			s.revealY = rc.TargetY
		}
	}
	return StepResult{GameOver: true}
}

// resolveScroll keeps the player at or below the midline. The distance the
// player rose above it becomes this step's world shift and half of it is
// added to the score.
func (s *State) resolveScroll() (shift float64, newHigh bool) {
	mid := s.cfg.World.Height / 2
	if s.player.Y >= mid {
		return 0, false
	}
	shift = mid - s.player.Y
	s.player.Y = mid
	s.score += shift * s.cfg.Scoring.ScrollFactor

	if s.score > s.highScore {
		prev := int(s.highScore)
		s.highScore = s.score
		if s.keeper != nil && int(s.highScore) > prev {
			s.keeper.SetHighScore(int(s.highScore))
		}
		newHigh = true
	}
	return shift, newHigh
}

// Player returns a copy of the player.
func (s *State) Player() Player { return s.player }

// Platforms returns the live platform store. Callers must not modify it.
func (s *State) Platforms() []Platform { return s.platforms }

// Items returns the live free-item store. Callers must not modify it.
func (s *State) Items() []Item { return s.items }

// Monsters returns the live monster store. Callers must not modify it.
func (s *State) Monsters() []Monster { return s.monsters }

// Bullets returns the live projectile store. Callers must not modify it.
func (s *State) Bullets() []Bullet { return s.bullets }

// Score returns the run score.
func (s *State) Score() float64 { return s.score }

// HighScore returns the best score seen, including the current run.
func (s *State) HighScore() float64 { return s.highScore }

// GameOver reports whether the player has fallen out of the world.
func (s *State) GameOver() bool { return s.gameOver }

// Steps returns the number of simulated ticks since the last reset.
func (s *State) Steps() int { return s.steps }

// Config returns the configuration the run was built with.
func (s *State) Config() config.HighJumpConfig { return s.cfg }

// RevealY returns the current top edge of the game-over panel.
func (s *State) RevealY() float64 { return s.revealY }

// RevealProgress returns how far the game-over panel has dropped, in [0,1].
// It is 0 while the run is live.
func (s *State) RevealProgress() float64 {
	if !s.gameOver {
		return 0
	}
	rc := s.cfg.Reveal
	span := rc.TargetY - rc.StartY
	if span <= 0 {
		return 1
	}
	return core.ClampF((s.revealY-rc.StartY)/span, 0, 1)
}

// Restart button on the game-over panel, relative to the panel's top edge.
const (
	restartButtonW       = 240.0
	restartButtonH       = 50.0
	restartButtonOffsetY = 260.0
)

// RestartButton returns the clickable restart area for a game-over panel
// whose top edge is at revealY.
func RestartButton(worldW, revealY float64) core.Box {
	return core.NewBox(worldW/2-restartButtonW/2, revealY+restartButtonOffsetY, restartButtonW, restartButtonH)
}

// RestartHit reports whether a click at (x, y) lands on the restart button.
// The button only counts once the panel has finished dropping.
func (s *State) RestartHit(x, y float64) bool {
	if s.RevealProgress() < 1 {
		return false
	}
	return RestartButton(s.cfg.World.Width, s.revealY).Contains(x, y)
}

// TierIndex returns the difficulty tier the generator is currently using.
func (s *State) TierIndex() int {
	return s.difficulty.TierIndex(s.score)
}

// View is a deep copy of everything a renderer needs.
type View struct {
	Player         Player     `yaml:"player"`
	Platforms      []Platform `yaml:"platforms"`
	Items          []Item     `yaml:"items"`
	Monsters       []Monster  `yaml:"monsters"`
	Bullets        []Bullet   `yaml:"bullets"`
	Score          float64    `yaml:"score"`
	HighScore      float64    `yaml:"high_score"`
	GameOver       bool       `yaml:"game_over"`
	RevealProgress float64    `yaml:"reveal_progress"`
	Steps          int        `yaml:"steps"`
}

// View returns a snapshot that stays valid after further steps.
func (s *State) View() View {
	return View{
		Player:         s.player,
		Platforms:      append([]Platform(nil), s.platforms...),
		Items:          append([]Item(nil), s.items...),
		Monsters:       append([]Monster(nil), s.monsters...),
		Bullets:        append([]Bullet(nil), s.bullets...),
		Score:          s.score,
		HighScore:      s.highScore,
		GameOver:       s.gameOver,
		RevealProgress: s.RevealProgress(),
		Steps:          s.steps,
	}
}
