package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-racer/internal/racer"
)

// hud is the terminal racer.Display: a score and fuel line plus the
// game-over overlay state.
type hud struct {
	score   int
	fuel    int
	maxFuel float64

	over       bool
	finalScore int
	message    string

	bar   progress.Model
	label lipgloss.Style
}

var _ racer.Display = (*hud)(nil)

func newHUD(maxFuel float64, r *lipgloss.Renderer) *hud {
	return &hud{
		maxFuel: maxFuel,
		fuel:    int(maxFuel),
		bar: progress.New(
			progress.WithGradient("#D7263D", "#FFFF00"),
			progress.WithWidth(20),
			progress.WithoutPercentage(),
		),
		label: r.NewStyle().Bold(true),
	}
}

func (h *hud) ShowScore(score int) { h.score = score }
func (h *hud) ShowFuel(fuel int)   { h.fuel = fuel }

func (h *hud) ShowGameOver(score int, message string) {
	h.over = true
	h.finalScore = score
	h.message = message
}

func (h *hud) HideGameOver() {
	h.over = false
}

// View renders the status line.
func (h *hud) View() string {
	pct := 0.0
	if h.maxFuel > 0 {
		pct = float64(h.fuel) / h.maxFuel
	}
	return fmt.Sprintf(" %s %-6d %s %s %3d",
		h.label.Render("Score"), h.score,
		h.label.Render("Fuel"), h.bar.ViewAs(pct), h.fuel)
}
