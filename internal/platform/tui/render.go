package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alphabet-invasion/internal/config"
	"github.com/vovakirdan/alphabet-invasion/internal/core"
	"github.com/vovakirdan/alphabet-invasion/internal/invasion"
)

// hudMinWidth keeps the score line readable on narrow playfields.
const hudMinWidth = 24

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var gameOverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// FrameSize returns the screen size needed to draw a game with rules.
// One HUD row, one row per possible letter and the floor.
func FrameSize(rules config.Rules) (width, height int) {
	return max(rules.Width, hudMinWidth), rules.EndThreshold + 2
}

// RenderState draws one game state: the score line, each letter on its own
// row at its column (newest on top) and the floor line.
func RenderState(dst *core.Screen, state invasion.State, rules config.Rules) {
	dst.Clear()
	dst.DrawText(0, 0, fmt.Sprintf("Score: %d, Level: %d", state.Score, state.Level), core.ColorCyan)

	for i, l := range state.Letters {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.SetColored(l.Column, i+1, l.Char, color)
	}

	floor := 1 + max(rules.EndThreshold-1, len(state.Letters))
	floorColor := core.ColorGray
	if len(state.Letters) >= rules.EndThreshold-3 {
		floorColor = core.ColorBrightRed
	}
	dst.DrawHLine(0, floor, rules.Width, '-', floorColor)
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

		// Group consecutive cells with the same color
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
