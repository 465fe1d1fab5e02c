package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/highjump/internal/core"
)

// recordingGame remembers the frames it was stepped with.
type recordingGame struct {
	frames []core.InputFrame
	resets int
	state  core.GameState
}

func (g *recordingGame) ID() string { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) State() core.GameState { return g.state }

func (g *recordingGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "hello")
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func newTestModel(g *recordingGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
}

func TestModelForwardsKeysOnNextTick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m.Init()

	next, _ := m.Update(runeKey('a'))
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	next, cmd := next.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	next.Update(TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("stepped %d times, want 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionLeft) || !g.frames[0].Has(core.ActionFire) {
		t.Errorf("first frame missing actions: %v", g.frames[0].Actions)
	}
	if len(g.frames[1].Actions) != 0 {
		t.Errorf("input should be cleared after a tick: %v", g.frames[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&recordingGame{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.View() != "" {
		t.Error("quitting model renders nothing")
	}
}

func TestModelBackOnlyWhenAllowedAndStopped(t *testing.T) {
	g := &recordingGame{}

	m := newTestModel(g).WithBack()
	next, _ := m.Update(TickMsg{})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).BackToMenu() {
		t.Error("back should be ignored while playing")
	}

	g.state.GameOver = true
	next, _ = next.Update(TickMsg{})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() {
		t.Error("back should work after game over")
	}

	plain := newTestModel(g)
	next, _ = plain.Update(TickMsg{})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).BackToMenu() {
		t.Error("back needs WithBack")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if g.resets != 1 {
		t.Errorf("resize reset the game: %d resets", g.resets)
	}
	if !strings.Contains(next.View(), "hello") {
		t.Error("view should render the game")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "abc", core.ColorRed)
	s.DrawText(3, 0, "def")
	s.DrawTextColor(0, 1, "xyz", core.ColorGray)

	out := RenderScreen(s)
	for _, want := range []string{"abc", "def", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("got %d newlines, want 1", got)
	}
}
