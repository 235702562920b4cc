package racer

import (
	"fmt"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// recordingSurface logs every drawing call as a string.
type recordingSurface struct {
	ops []string
}

func (s *recordingSurface) add(format string, args ...any) {
	s.ops = append(s.ops, fmt.Sprintf(format, args...))
}

func (s *recordingSurface) Clear() { s.add("clear") }
func (s *recordingSurface) FillRect(x, y, w, h float64, c core.Color) {
	s.add("fill %v %v %v %v %s", x, y, w, h, c)
}
func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c core.Color, dash []float64) {
	s.add("line %v %v %v %v w%v %s %v", x0, y0, x1, y1, width, c, dash)
}
func (s *recordingSurface) Save()                  { s.add("save") }
func (s *recordingSurface) Translate(x, y float64) { s.add("translate %v %v", x, y) }
func (s *recordingSurface) Rotate(deg float64)     { s.add("rotate %v", deg) }
func (s *recordingSurface) Restore()               { s.add("restore") }
func (s *recordingSurface) DrawSprite(sp Sprite, x, y, w, h float64) {
	s.add("sprite %s %v %v %v %v", sp.ID, x, y, w, h)
}

func TestRenderFreshRace(t *testing.T) {
	h := newHarness(t, nil)
	h.c.Start()
	h.c.field.Add(Obstacle{X: 12, Y: -40, ImgW: 80, ImgH: 60, Sprite: Sprite{ID: "object_2"}})

	var s recordingSurface
	h.c.Render(&s)

	want := []string{
		"clear",
		"fill 0 0 400 600 #808080",
		"line 100 0 100 600 w2 #FFFF00 [20 20]",
		"line 200 0 200 600 w2 #FFFF00 [20 20]",
		"line 300 0 300 600 w2 #FFFF00 [20 20]",
		"save",
		"translate 200 560",
		"rotate 0",
		"sprite player -40 -45 80 90",
		"restore",
		"sprite object_2 12 -40 80 60",
	}
	if !slices.Equal(s.ops, want) {
		t.Errorf("Render() ops =\n%v\nexpected\n%v", s.ops, want)
	}
}

func TestRenderFollowsScrollAndLean(t *testing.T) {
	h := newHarness(t, nil)
	h.c.Start()
	h.c.KeyDown("ArrowRight")
	h.sched.RunPending()
	h.sched.RunPending()

	var s recordingSurface
	h.c.Render(&s)

	if !slices.Contains(s.ops, "line 100 10 100 610 w2 #FFFF00 [20 20]") {
		t.Errorf("dividers not offset by two scroll steps: %v", s.ops)
	}
	// Two steps right; the lean target is set by the first move and eased
	// toward on the second tick.
	if !slices.Contains(s.ops, "translate 220 560") || !slices.Contains(s.ops, "rotate 2") {
		t.Errorf("player transform not updated: %v", s.ops)
	}
}
