package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// Renderer converts Screen buffers to styled strings. It caches one
// lipgloss style per foreground/background pair.
type Renderer struct {
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if k.fg.Set {
		s = s.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if k.bg.Set {
		s = s.Background(lipgloss.Color(k.bg.Hex()))
	}
	r.styles[k] = s
	return s
}

// Render converts the screen to a styled string.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			k := styleKey{fg: first.Color, bg: first.Bg}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != k.fg || cell.Bg != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !k.fg.Set && !k.bg.Set {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(k).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return NewRenderer().Render(s)
}
