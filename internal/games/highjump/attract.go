package highjump

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/highjump/internal/config"
	"github.com/vovakirdan/highjump/internal/core"
	"github.com/vovakirdan/highjump/internal/games/highjump/sim"
	"github.com/vovakirdan/highjump/internal/registry"
)

// AttractGame runs the self-playing title demo. It has no score and never
// ends; only pause is honoured.
type AttractGame struct {
	cfg    config.HighJumpConfig
	logger *log.Logger
	demo   *sim.Attract
	paused bool
}

// NewAttract builds the demo from env. Store and difficulty are ignored.
func NewAttract(env registry.Env) (*AttractGame, error) {
	cfg, err := config.LoadHighJump(env.ConfigPath)
	if err != nil {
		return nil, err
	}
	return &AttractGame{cfg: cfg, logger: loggerOrDiscard(env.Logger)}, nil
}

// ID returns the unique identifier for this game.
func (a *AttractGame) ID() string {
	return AttractGameID
}

// Title returns the display name for this game.
func (a *AttractGame) Title() string {
	return "High Jump (demo)"
}

// Reset rebuilds the demo scene.
func (a *AttractGame) Reset(rc core.RuntimeConfig) {
	a.demo = sim.NewAttract(a.cfg, rc.Seed)
	a.paused = false
	a.logger.Debug("attract started", "seed", rc.Seed)
}

// Step advances the demo by one tick.
func (a *AttractGame) Step(in core.InputFrame) core.StepResult {
	if a.demo == nil {
		a.Reset(core.DefaultConfig())
	}
	if in.Has(core.ActionPause) {
		a.paused = !a.paused
	}
	if !a.paused {
		a.demo.Step()
	}
	return core.StepResult{State: a.State()}
}

// Render draws the demo strip stretched over the whole screen.
func (a *AttractGame) Render(dst *core.Screen) {
	dst.Clear()
	if a.demo == nil {
		return
	}
	p := newPainter(dst, a.demo.Width(), a.cfg.World.Height)
	p.world(a.demo.View(), a.cfg)
	dst.DrawTextColor(1, 0, " HIGH JUMP ", core.ColorBrightYellow)
	if a.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (a *AttractGame) State() core.GameState {
	return core.GameState{Paused: a.paused}
}

// Demo exposes the underlying scene.
func (a *AttractGame) Demo() *sim.Attract {
	return a.demo
}
