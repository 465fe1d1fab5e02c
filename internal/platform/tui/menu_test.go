package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/highjump/internal/core"
	"github.com/vovakirdan/highjump/internal/registry"
)

func init() {
	registry.Register(registry.GameInfo{ID: "menu_test_game", Title: "Menu Test"},
		func(registry.Env) (registry.Game, error) { return &recordingGame{}, nil })
	registry.Register(registry.GameInfo{ID: "menu_test_demo", Title: "Demo", Hidden: true},
		func(registry.Env) (registry.Game, error) { return &recordingGame{}, nil })
}

var menuConfig = core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}

func press(m tea.Model, msgs ...tea.KeyMsg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestMenuItems(t *testing.T) {
	m := NewMenuModel(registry.Env{}, menuConfig, "menu_test_demo")

	var titles []string
	for _, it := range m.items {
		titles = append(titles, it.Title)
	}
	got := strings.Join(titles, ",")
	want := "Menu Test,Watch demo,High scores,Quit"
	if got != want {
		t.Errorf("items = %s, want %s", got, want)
	}
	if m.preview == nil {
		t.Error("preview should be created")
	}
}

func TestMenuSelectGame(t *testing.T) {
	m := NewMenuModel(registry.Env{}, menuConfig, "menu_test_demo")

	final := press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}).(MenuModel)
	if final.Selected() == nil || final.Selected().GameID != "menu_test_demo" {
		t.Fatalf("selected %+v, want the demo", final.Selected())
	}
}

func TestMenuScoresAndQuit(t *testing.T) {
	m := NewMenuModel(registry.Env{}, menuConfig, "")

	scores := press(m, tea.KeyMsg{Type: tea.KeyTab}).(MenuModel)
	if !scores.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	down := tea.KeyMsg{Type: tea.KeyDown}
	quit := press(m, down, down, down, tea.KeyMsg{Type: tea.KeyEnter}).(MenuModel)
	if !quit.IsQuitting() {
		t.Error("selecting Quit should quit")
	}
}

func TestMenuPreviewTicks(t *testing.T) {
	m := NewMenuModel(registry.Env{}, menuConfig, "menu_test_demo")
	demo := m.preview.(*recordingGame)

	next, cmd := m.Update(previewTickMsg{owner: m.id})
	if cmd == nil || len(demo.frames) != 1 {
		t.Fatalf("preview tick: cmd=%v steps=%d", cmd != nil, len(demo.frames))
	}
	next.Update(previewTickMsg{owner: m.id + 1})
	if len(demo.frames) != 1 {
		t.Error("ticks from another menu must be ignored")
	}
	if !strings.Contains(next.View(), "hello") {
		t.Error("preview should be drawn beside the list")
	}
}
