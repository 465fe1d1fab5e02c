package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/highjump/internal/core"
	"github.com/vovakirdan/highjump/internal/registry"
)

// closingGame counts Close calls.
type closingGame struct {
	recordingGame
	closed int
}

func (g *closingGame) Close() error {
	g.closed++
	return nil
}

func TestCloseGame(t *testing.T) {
	if err := closeGame(&recordingGame{}); err != nil {
		t.Errorf("closeGame() on a plain game = %v", err)
	}

	g := &closingGame{}
	if err := closeGame(g); err != nil {
		t.Fatalf("closeGame() failed: %v", err)
	}
	if g.closed != 1 {
		t.Errorf("closed %d times, want 1", g.closed)
	}
}

func TestSessionGamesCloseAll(t *testing.T) {
	a, b := &closingGame{}, &closingGame{}
	sg := &sessionGames{}
	sg.add(a)
	sg.add(&recordingGame{})
	sg.add(b)

	sg.closeAll(log.New(io.Discard))
	if a.closed != 1 || b.closed != 1 {
		t.Errorf("closed = %d, %d, want 1, 1", a.closed, b.closed)
	}
	if len(sg.games) != 0 {
		t.Errorf("%d games left after closeAll", len(sg.games))
	}

	sg.closeAll(log.New(io.Discard))
	if a.closed != 1 {
		t.Error("closeAll closed a game twice")
	}
}

func TestSessionBackToMenuClosesGame(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}
	env := registry.Env{Logger: log.New(io.Discard)}
	g := &closingGame{}
	g.state.GameOver = true

	m := NewSessionModel(env, cfg, "menu_test_demo")
	m.games.add(g)
	m.game = NewModel(g, cfg).WithBack()
	m.screen = screenGame

	next, _ := m.Update(TickMsg{})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})

	sm := next.(SessionModel)
	if sm.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", sm.screen)
	}
	if g.closed != 1 {
		t.Errorf("closed %d times, want 1", g.closed)
	}
}
