package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/highjump/internal/core"
	"github.com/vovakirdan/highjump/internal/registry"
)

// Menu layout constants
const (
	previewWidth       = 26 // Width of the attract preview, in cells
	previewMinHeight   = 10
	minWidthForPreview = 64
)

// MenuItemKind says what selecting a menu entry does.
type MenuItemKind int

const (
	MenuItemGame MenuItemKind = iota
	MenuItemScores
	MenuItemQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Kind   MenuItemKind
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the title menu. When a preview
// game is available it plays next to the entries.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	preview        registry.Game
	previewScreen  *core.Screen
	id             int64 // tags preview ticks
	best           int
	quitting       bool
	selected       *MenuItem // Set when user selects an entry
	openScoreboard bool      // True if user pressed Tab or chose scores
}

// NewMenuModel creates a new menu model. previewID names a registered mode
// that runs as the background demo; it is also offered as a menu entry.
func NewMenuModel(env registry.Env, cfg core.RuntimeConfig, previewID string) MenuModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	games := registry.Visible()
	items := make([]MenuItem, 0, len(games)+3)
	for _, g := range games {
		items = append(items, MenuItem{Kind: MenuItemGame, GameID: g.ID, Title: g.Title})
	}

	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		id:        time.Now().UnixNano(),
	}

	if previewID != "" && registry.Exists(previewID) {
		items = append(items, MenuItem{Kind: MenuItemGame, GameID: previewID, Title: "Watch demo"})

		previewEnv := registry.Env{ConfigPath: env.ConfigPath, Logger: env.Logger, Clock: env.Clock}
		if g, err := registry.Create(previewID, previewEnv); err == nil {
			g.Reset(cfg)
			m.preview = g
			m.previewScreen = core.NewScreen(previewWidth, previewHeight(cfg.ScreenH))
		} else if env.Logger != nil {
			env.Logger.Warn("menu preview unavailable", "err", err)
		}
	}
	items = append(items,
		MenuItem{Kind: MenuItemScores, Title: "High scores"},
		MenuItem{Kind: MenuItemQuit, Title: "Quit"},
	)
	m.items = items

	if env.Store != nil && len(games) > 0 {
		if best, err := env.Store.HighScore(games[0].ID); err == nil {
			m.best = best
		}
	}
	return m
}

func previewHeight(screenH int) int {
	return core.Max(screenH-4, previewMinHeight)
}

// Init starts the preview ticking.
func (m MenuModel) Init() tea.Cmd {
	if m.preview == nil {
		return nil
	}
	return previewTickCmd(m.config.TickRate, m.id)
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		if m.previewScreen != nil {
			m.previewScreen.Resize(previewWidth, previewHeight(msg.Height))
		}
		return m, nil

	case previewTickMsg:
		if msg.owner != m.id || m.preview == nil || m.done() {
			return m, nil
		}
		m.preview.Step(core.NewInputFrame())
		return m, previewTickCmd(m.config.TickRate, m.id)
	}

	return m, nil
}

func (m MenuModel) done() bool {
	return m.selected != nil || m.quitting || m.openScoreboard
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		selected := m.items[m.cursor]
		switch selected.Kind {
		case MenuItemQuit:
			m.quitting = true
		case MenuItemScores:
			m.openScoreboard = true
		default:
			m.selected = &selected
		}
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	list := m.renderList()
	if m.preview == nil || m.width < minWidthForPreview {
		return list
	}

	m.preview.Render(m.previewScreen)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(RenderScreen(m.previewScreen))

	listWidth := m.width - previewWidth - 4
	return lipgloss.JoinHorizontal(lipgloss.Top, frame, lipgloss.NewStyle().Width(listWidth).Render(list))
}

func (m MenuModel) renderList() string {
	width := m.width
	if m.preview != nil && m.width >= minWidthForPreview {
		width = m.width - previewWidth - 4
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("H I G H   J U M P", width)))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(dimStyle.Render(centerText(fmt.Sprintf("Best: %d", m.best), width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = "> " + item.Title
			b.WriteString(activeStyle.Render(centerText(line, width)))
		} else {
			b.WriteString(centerText(line, width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Navigate  Enter: Select  Tab: Scores  Q: Quit", width)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(env registry.Env, cfg core.RuntimeConfig, previewID string) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(env, cfg, previewID),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
