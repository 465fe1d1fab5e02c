package sim

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/highjump/internal/config"
)

func TestAttractInit(t *testing.T) {
	a := NewAttract(config.DefaultHighJumpConfig(), 1)

	if got := len(a.Platforms()); got != attractCount {
		t.Fatalf("platforms = %d, want %d", got, attractCount)
	}
	if p := a.Player(); p.X != attractPlayerX || p.Y != 850 {
		t.Errorf("player = %+v", p)
	}
	if _, ok := a.Item(); !ok {
		t.Error("demo should start with a balloon on screen")
	}
	for _, p := range a.Platforms() {
		if p.HasSpring && p.Kind != KindNormal {
			t.Errorf("spring on %v platform", p.Kind)
		}
	}
}

func TestAttractRunsForever(t *testing.T) {
	cfg := config.DefaultHighJumpConfig()
	a := NewAttract(cfg, 42)

	for i := 0; i < 20000; i++ {
		a.Step()
		if got := len(a.Platforms()); got != attractCount {
			t.Fatalf("step %d: platforms = %d, want %d", i, got, attractCount)
		}
		p := a.Player()
		if p.Y > cfg.World.Height {
			t.Fatalf("step %d: player left the screen (y=%v)", i, p.Y)
		}
		if p.X != attractPlayerX {
			t.Fatalf("step %d: player drifted to x=%v", i, p.X)
		}
		m := a.Monster()
		if m.X < 0 || m.X+m.W > attractStrip {
			t.Fatalf("step %d: monster outside the strip (x=%v)", i, m.X)
		}
		for _, pl := range a.Platforms() {
			if pl.Kind == KindMoving && (pl.X < 0 || pl.X+pl.W > attractStrip) {
				t.Fatalf("step %d: moving platform outside the strip (x=%v)", i, pl.X)
			}
		}
	}
	if a.Steps() != 20000 {
		t.Errorf("Steps = %d, want 20000", a.Steps())
	}
}

func TestAttractBouncesOnEveryKind(t *testing.T) {
	cfg := config.DefaultHighJumpConfig()
	for _, kind := range []PlatformKind{KindNormal, KindMoving, KindBreaking, KindDisappearing} {
		a := NewAttract(cfg, 1)
		a.platforms = []Platform{{X: 80, Y: 600, W: 85, H: 20, Kind: kind}}
		a.player.Y, a.player.VY = 549, 5

		a.Step()
		if a.player.VY != cfg.Physics.JumpPower {
			t.Errorf("%v: VY = %v, want %v", kind, a.player.VY, cfg.Physics.JumpPower)
		}
	}
}

func TestAttractDeterminism(t *testing.T) {
	cfg := config.DefaultHighJumpConfig()
	a, b := NewAttract(cfg, 9), NewAttract(cfg, 9)
	for i := 0; i < 3000; i++ {
		a.Step()
		b.Step()
	}
	if !reflect.DeepEqual(a.View(), b.View()) {
		t.Error("attract runs with the same seed diverged")
	}
}
