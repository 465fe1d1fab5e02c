// Package highjump adapts the platform-jumper simulation to the arcade
// runtime: config loading, persistence, logging, and terminal rendering.
// The rules themselves live in the sim subpackage.
package highjump

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/highjump/internal/config"
	"github.com/vovakirdan/highjump/internal/core"
	"github.com/vovakirdan/highjump/internal/games/highjump/sim"
	"github.com/vovakirdan/highjump/internal/registry"
	"github.com/vovakirdan/highjump/internal/storage"
)

// Registered mode IDs.
const (
	GameID        = "highjump"
	AttractGameID = "highjump_attract"
)

// Game runs one High Jump session.
type Game struct {
	cfg    config.HighJumpConfig
	preset config.DifficultyPreset
	store  *storage.Store
	logger *log.Logger
	clock  core.Clock
	wall   *core.WallClock // nil when the clock was injected
	keeper *storeKeeper    // nil without a store

	state    *sim.State
	seed     int64
	paused   bool
	saved    bool
	runStart int
	started  time.Duration

	// newBest is set once per run when the high score is first beaten.
	newBest     bool
	bestAtStart int

	holdLeft  int
	holdRight int
}

// New builds a game from env. It fails only when an explicit config file
// cannot be used or the difficulty name is unknown.
func New(env registry.Env) (*Game, error) {
	cfg, preset, err := loadConfig(env)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		preset: preset,
		store:  env.Store,
		logger: loggerOrDiscard(env.Logger),
		clock:  env.Clock,
	}
	if g.clock == nil {
		g.wall = core.NewWallClock()
		g.clock = g.wall
	}
	if g.store != nil {
		g.keeper = newStoreKeeper(g.store, GameID, g.logger)
	}
	return g, nil
}

func loadConfig(env registry.Env) (config.HighJumpConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadHighJump(env.ConfigPath)
	if err != nil {
		return cfg, "", err
	}
	preset := config.DifficultyNormal
	if env.Difficulty != "" {
		preset = config.ParsePreset(env.Difficulty)
		if preset == "" {
			return cfg, "", fmt.Errorf("highjump: unknown difficulty %q", env.Difficulty)
		}
	}
	config.ApplyHighJumpPreset(&cfg, preset)
	return cfg, preset, nil
}

func loggerOrDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "High Jump"
}

// Reset starts a new session with the given seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.seed = rc.Seed
	opts := sim.Options{Config: g.cfg, Seed: rc.Seed, Clock: g.clock}
	if g.keeper != nil {
		opts.Keeper = g.keeper
	}
	g.state = sim.New(opts)
	g.paused = false
	if g.wall != nil {
		g.wall.Resume()
	}
	g.beginRun()
	g.logger.Info("run started", "seed", rc.Seed, "difficulty", g.preset, "high_score", int(g.state.HighScore()))
}

func (g *Game) beginRun() {
	g.saved = false
	g.runStart = g.state.Steps()
	g.started = g.clock.Now()
	g.holdLeft, g.holdRight = 0, 0
	g.newBest = false
	g.bestAtStart = int(g.state.HighScore())
}

// Step advances one tick from terminal-style input. Terminals report key
// presses without releases, so a steering press is held for a few ticks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.advance(in.Has(core.ActionPause), g.frameInput(in))
}

// StepInput advances one tick from held-key input, as a windowed frontend
// reports it.
func (g *Game) StepInput(in sim.Input, pause bool) core.StepResult {
	return g.advance(pause, in)
}

func (g *Game) frameInput(in core.InputFrame) sim.Input {
	hold := g.cfg.Terminal.MoveHoldTicks
	if hold < 1 {
		hold = 1
	}
	switch {
	case in.Has(core.ActionLeft):
		g.holdLeft, g.holdRight = hold, 0
	case in.Has(core.ActionRight):
		g.holdLeft, g.holdRight = 0, hold
	}

	out := sim.Input{
		Left:    g.holdLeft > 0,
		Right:   g.holdRight > 0,
		Fire:    in.Has(core.ActionFire),
		Restart: in.Has(core.ActionRestart),
	}
	if g.holdLeft > 0 {
		g.holdLeft--
	}
	if g.holdRight > 0 {
		g.holdRight--
	}
	return out
}

func (g *Game) advance(pause bool, in sim.Input) core.StepResult {
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}

	if pause && !g.state.GameOver() {
		g.togglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.state.Step(in)
	g.handleEvents(res.Events)
	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		if g.wall != nil {
			g.wall.Pause()
		}
		if g.keeper != nil {
			g.keeper.Flush() //nolint:errcheck // logged by the keeper
		}
		return
	}
	if g.wall != nil {
		g.wall.Resume()
	}
}

func (g *Game) handleEvents(ev sim.Events) {
	if ev.Has(sim.EventStunned) {
		g.logger.Debug("player stunned", "score", int(g.state.Score()))
	}
	if ev.Has(sim.EventMonsterKilled) {
		g.logger.Debug("monster shot", "score", int(g.state.Score()))
	}
	if ev.Has(sim.EventNewHighScore) && !g.newBest {
		g.newBest = true
		g.logger.Info("new high score", "previous", g.bestAtStart)
	}
	if ev.Has(sim.EventGameOver) {
		g.finishRun()
	}
	if ev.Has(sim.EventRestart) {
		g.beginRun()
		g.logger.Info("run restarted", "high_score", int(g.state.HighScore()))
	}
}

// finishRun persists the run once per game over.
func (g *Game) finishRun() {
	if g.saved {
		return
	}
	g.saved = true

	run := g.Run()
	g.logger.Info("game over", "score", run.Score, "steps", run.Steps, "high_score", int(g.state.HighScore()))

	if g.store == nil {
		return
	}
	g.keeper.Flush() //nolint:errcheck // logged by the keeper
	if _, err := g.store.SaveRun(run); err != nil {
		g.logger.Warn("save run failed", "err", err)
	}
}

// Close writes a high score the player set but has not yet stored. Call it
// when the session ends, however it ends.
func (g *Game) Close() error {
	if g.keeper == nil {
		return nil
	}
	if err := g.keeper.Flush(); err != nil {
		return fmt.Errorf("highjump: save high score: %w", err)
	}
	return nil
}

// Run summarizes the current run for storage.
func (g *Game) Run() storage.Run {
	return storage.Run{
		GameID:     GameID,
		Score:      int(g.state.Score()),
		Difficulty: string(g.preset),
		Steps:      g.state.Steps() - g.runStart,
		Duration:   g.clock.Now() - g.started,
		Seed:       g.seed,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     int(g.state.Score()),
		HighScore: int(g.state.HighScore()),
		GameOver:  g.state.GameOver(),
		Paused:    g.paused,
	}
}

// Sim exposes the running simulation to frontends that draw it themselves.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Config returns the effective configuration after presets.
func (g *Game) Config() config.HighJumpConfig {
	return g.cfg
}

// Paused reports whether the session is paused.
func (g *Game) Paused() bool {
	return g.paused
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          GameID,
		Title:       "High Jump",
		Description: "Bounce up an endless stack of platforms",
	}, func(env registry.Env) (registry.Game, error) {
		g, err := New(env)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
	registry.Register(registry.GameInfo{
		ID:          AttractGameID,
		Title:       "High Jump (demo)",
		Description: "Self-playing title screen demo",
		Hidden:      true,
	}, func(env registry.Env) (registry.Game, error) {
		a, err := NewAttract(env)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
