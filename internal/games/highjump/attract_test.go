package highjump

import (
	"strings"
	"testing"

	"github.com/vovakirdan/highjump/internal/core"
)

func TestAttractGameRuns(t *testing.T) {
	a, err := NewAttract(testEnv(t))
	if err != nil {
		t.Fatalf("NewAttract() failed: %v", err)
	}
	a.Reset(core.RuntimeConfig{Seed: 3})

	for range 500 {
		res := a.Step(frame())
		if res.State.GameOver {
			t.Fatal("the demo never ends")
		}
	}
	if a.Demo().Steps() != 500 {
		t.Errorf("Steps() = %d, want 500", a.Demo().Steps())
	}

	screen := core.NewScreen(30, 30)
	a.Render(screen)
	if !strings.Contains(screen.Row(0), "HIGH JUMP") {
		t.Errorf("title row = %q", screen.Row(0))
	}
}

func TestAttractGamePause(t *testing.T) {
	a, err := NewAttract(testEnv(t))
	if err != nil {
		t.Fatalf("NewAttract() failed: %v", err)
	}
	a.Reset(core.RuntimeConfig{Seed: 3})

	a.Step(frame(core.ActionPause))
	a.Step(frame())
	if a.Demo().Steps() != 0 {
		t.Errorf("demo advanced while paused: %d", a.Demo().Steps())
	}
}
