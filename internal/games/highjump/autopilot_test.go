package highjump

import (
	"testing"

	"github.com/vovakirdan/highjump/internal/core"
	"github.com/vovakirdan/highjump/internal/games/highjump/sim"
)

func TestNextPlatformPicksLowestAbove(t *testing.T) {
	p := sim.Player{X: 100, Y: 500, W: 50, H: 50}
	// Below, far above, breaking, vanished, and the expected target.
	platforms := []sim.Platform{
		{X: 0, Y: 600, W: 85, H: 20, Kind: sim.KindNormal},
		{X: 10, Y: 300, W: 85, H: 20, Kind: sim.KindNormal},
		{X: 20, Y: 450, W: 85, H: 20, Kind: sim.KindBreaking},
		{X: 30, Y: 470, W: 85, H: 20, Kind: sim.KindDisappearing, Touched: true},
		{X: 40, Y: 420, W: 85, H: 20, Kind: sim.KindMoving},
	}

	got, ok := nextPlatform(p, platforms)
	if !ok || got.X != 40 {
		t.Errorf("nextPlatform = %+v ok=%v, want the moving platform at x=40", got, ok)
	}

	if _, ok := nextPlatform(p, platforms[:1]); ok {
		t.Error("no platform above should report false")
	}
}

func TestMonsterOverhead(t *testing.T) {
	p := sim.Player{X: 100, Y: 500, W: 50, H: 50}
	above := sim.Monster{X: 80, Y: 200, W: 120, H: 120}
	aside := sim.Monster{X: 400, Y: 200, W: 120, H: 120}
	below := sim.Monster{X: 80, Y: 700, W: 120, H: 120}

	if !monsterOverhead(p, []sim.Monster{aside, above}) {
		t.Error("monster straight above should count")
	}
	if monsterOverhead(p, []sim.Monster{aside, below}) {
		t.Error("monsters aside or below should not count")
	}
}

func TestAutopilotRestartsAfterReveal(t *testing.T) {
	env := testEnv(t)
	env.ConfigPath = writeConfig(t, fallingConfig)
	g := newGame(t, env)
	g.Step(frame())

	var a Autopilot
	if in := a.Next(g.Sim()); in.Restart {
		t.Fatal("restart should wait for the panel")
	}
	for !g.Sim().GameOver() || g.Sim().RevealProgress() < 1 {
		g.StepInput(sim.Input{}, false)
	}
	if in := a.Next(g.Sim()); !in.Restart {
		t.Error("expected restart once the panel settled")
	}
}

func TestAutopilotDeterministic(t *testing.T) {
	run := func() (float64, int) {
		env := testEnv(t)
		clock := core.NewManualClock()
		env.Clock = clock
		g := newGame(t, env)

		var a Autopilot
		for range 2000 {
			g.StepInput(a.Next(g.Sim()), false)
			clock.Advance(16_666_667)
		}
		return g.Sim().Score(), g.Sim().Steps()
	}

	s1, n1 := run()
	s2, n2 := run()
	if s1 != s2 || n1 != n2 {
		t.Errorf("runs diverged: (%v, %d) vs (%v, %d)", s1, n1, s2, n2)
	}
}
