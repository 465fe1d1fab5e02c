package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/highjump/internal/core"
)

var (
	stylesMu    sync.Mutex
	colorStyles = map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
)

// styleFor returns the lipgloss style for a screen color, building it on
// first use. SSH sessions render concurrently, hence the lock.
func styleFor(c core.Color) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	if style, ok := colorStyles[c]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		style = style.Foreground(lipgloss.Color(code))
	}
	colorStyles[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
