package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termsnow/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	baseStyle := lipgloss.NewStyle()
	if bg := s.Background(); !bg.IsDefault() {
		baseStyle = baseStyle.Background(lipgloss.Color(bg.Hex()))
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
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

			style := baseStyle
			if !startColor.IsDefault() {
				style = baseStyle.Foreground(lipgloss.Color(startColor.Hex()))
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
