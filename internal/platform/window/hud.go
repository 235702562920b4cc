package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-racer/internal/racer"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// hud is the window's racer.Display.
type hud struct {
	score int
	fuel  int

	over       bool
	finalScore int
	message    string
}

var _ racer.Display = (*hud)(nil)

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

func (h *hud) status() string {
	return fmt.Sprintf("Score: %d\nFuel: %d", h.score, h.fuel)
}

// drawCentered prints lines centred on a w x h canvas.
func drawCentered(dst *ebiten.Image, w, h int, lines ...string) {
	y := h/2 - len(lines)*glyphH/2
	for i, l := range lines {
		x := (w - len(l)*glyphW) / 2
		ebitenutil.DebugPrintAt(dst, l, x, y+i*glyphH)
	}
}

// overlay returns the lines shown over the track, or nil.
func (h *hud) overlay(state racer.State) []string {
	switch {
	case h.over:
		return []string{
			"GAME OVER",
			h.message,
			fmt.Sprintf("Score: %d", h.finalScore),
			"",
			"R: restart  Q: quit",
		}
	case state == racer.StatePaused:
		return []string{"PAUSED", "", "P: resume"}
	}
	return nil
}
