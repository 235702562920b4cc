package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// styleKey identifies a foreground/background colour pair.
type styleKey struct {
	fg, bg core.Color
}

// Painter turns screen cells into styled text for one terminal.
// SSH sessions each get their own renderer so colours match the client.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

// NewPainter creates a painter; nil uses the process's default renderer.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{renderer: r, styles: make(map[styleKey]lipgloss.Style)}
}

// Renderer returns the lipgloss renderer the painter styles with.
func (p *Painter) Renderer() *lipgloss.Renderer {
	return p.renderer
}

func (p *Painter) style(k styleKey) lipgloss.Style {
	if s, ok := p.styles[k]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if !k.fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(k.fg))
	}
	if !k.bg.IsDefault() {
		s = s.Background(lipgloss.Color(k.bg))
	}
	p.styles[k] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := styleKey{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with the same colours
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(key).Render(run.String()))
		}
	}
	return sb.String()
}
