package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/highjump/internal/registry"
	"github.com/vovakirdan/highjump/internal/storage"
)

const (
	maxRuns          = 100
	statsPanelWidth  = 24
	minWidthForPanel = 84
)

// runFilters are the difficulty tabs. The empty string shows every run.
var runFilters = []string{"", "easy", "normal", "hard", "fixed"}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextFilter, k.PrevFilter}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextFilter: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "difficulty")),
		PrevFilter: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "previous")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded runs of the main game mode, best first,
// filtered by difficulty.
type ScoreboardModel struct {
	title  string
	runs   []storage.Run
	shown  []storage.Run
	stats  *storage.GameStats
	best   int
	filter int

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel loads runs for the first visible game mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		title:  "HIGH SCORES",
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	if games := registry.Visible(); len(games) > 0 {
		m.title = "HIGH SCORES - " + games[0].Title
		m.load(store, games[0].ID)
	}
	m.table = m.newTable()
	m.applyFilter()
	return m
}

func (m *ScoreboardModel) load(store *storage.Store, gameID string) {
	if store == nil {
		return
	}
	if runs, err := store.TopRuns(gameID, maxRuns); err == nil {
		m.runs = runs
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		m.stats = stats
	}
	if best, err := store.HighScore(gameID); err == nil {
		m.best = best
	}
}

func (m ScoreboardModel) showPanel() bool {
	return m.width >= minWidthForPanel
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Mode", Width: 7},
		{Title: "Time", Width: 6},
		{Title: "Steps", Width: 7},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// applyFilter rebuilds the visible rows. Ranks stay global so a run keeps
// its place when a filter is active.
func (m *ScoreboardModel) applyFilter() {
	want := runFilters[m.filter]
	m.shown = nil
	var rows []table.Row
	for i, r := range m.runs {
		if want != "" && r.Difficulty != want {
			continue
		}
		m.shown = append(m.shown, r)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Difficulty,
			formatDuration(r.Duration),
			fmt.Sprintf("%d", r.Steps),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Selected returns the highlighted run.
func (m ScoreboardModel) Selected() (storage.Run, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.shown) {
		return storage.Run{}, false
	}
	return m.shown[i], true
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(runFilters)
			m.applyFilter()
			return m, nil
		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + len(runFilters) - 1) % len(runFilters)
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(scoreTitleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.runsView())
	if m.showPanel() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.statsView())
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")

	if line := m.detailLine(); line != "" {
		b.WriteString(centerText(dimStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(runFilters))
	for i, f := range runFilters {
		name := f
		if name == "" {
			name = "all"
		}
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) runsView() string {
	if len(m.shown) > 0 {
		return m.table.View()
	}
	msg := "No runs recorded yet.\nClimb to set a high score!"
	if len(m.runs) > 0 {
		msg = fmt.Sprintf("No %s runs yet.", runFilters[m.filter])
	}
	return lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Padding(2, 4).Render(msg)
}

func (m ScoreboardModel) statsView() string {
	lines := []string{scoreTitleStyle.Render("Stats"), ""}
	if m.stats == nil {
		lines = append(lines, dimStyle.Render("nothing yet"))
	} else {
		lines = append(lines,
			fmt.Sprintf("Runs     %d", m.stats.GamesCount),
			fmt.Sprintf("Best     %d", max(m.best, m.stats.HighScore)),
			fmt.Sprintf("Average  %.0f", m.stats.AvgScore),
			fmt.Sprintf("Longest  %s", formatDuration(m.stats.LongestRun)),
			fmt.Sprintf("Last     %s", m.stats.LastPlayed.Format("Jan 02")),
		)
	}
	return panelStyle.Width(statsPanelWidth).Render(strings.Join(lines, "\n"))
}

// detailLine describes the selected run: its seed and climb rate.
func (m ScoreboardModel) detailLine() string {
	r, ok := m.Selected()
	if !ok {
		return ""
	}
	rate := 0.0
	if secs := r.Duration.Seconds(); secs > 0 {
		rate = float64(r.Score) / secs
	}
	return fmt.Sprintf("seed %d  %.0f pts/s", r.Seed, rate)
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
