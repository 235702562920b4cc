package tui

import (
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/racer"
	"github.com/vovakirdan/tui-racer/internal/sprites"
)

// affine maps (x, y) to (a*x + c*y + e, b*x + d*y + f).
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// then returns m∘n: n is applied first.
func (m affine) then(n affine) affine {
	return affine{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

func (m affine) invert() (affine, bool) {
	det := m.a*m.d - m.b*m.c
	if det == 0 {
		return affine{}, false
	}
	return affine{
		a: m.d / det,
		b: -m.b / det,
		c: -m.c / det,
		d: m.a / det,
		e: (m.c*m.f - m.d*m.e) / det,
		f: (m.b*m.e - m.a*m.f) / det,
	}, true
}

// CellSurface is a racer.Surface that rasterizes the canvas into a region
// of a Screen. Each cell takes the colour found at its centre.
type CellSurface struct {
	screen *core.Screen
	view   core.Rect
	sx, sy float64 // Canvas pixels per cell
	m      affine
	stack  []affine
}

var _ racer.Surface = (*CellSurface)(nil)

// NewCellSurface maps a canvasW x canvasH canvas onto view.
func NewCellSurface(screen *core.Screen, view core.Rect, canvasW, canvasH float64) *CellSurface {
	return &CellSurface{
		screen: screen,
		view:   view,
		sx:     canvasW / float64(core.Max(view.W, 1)),
		sy:     canvasH / float64(core.Max(view.H, 1)),
		m:      identity,
	}
}

// Clear blanks the view region.
func (s *CellSurface) Clear() {
	s.screen.DrawRect(s.view, core.Cell{Rune: ' '})
}

func (s *CellSurface) Save() {
	s.stack = append(s.stack, s.m)
}

func (s *CellSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.m = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *CellSurface) Translate(x, y float64) {
	s.m = s.m.then(affine{a: 1, d: 1, e: x, f: y})
}

func (s *CellSurface) Rotate(deg float64) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	s.m = s.m.then(affine{a: cos, b: sin, c: -sin, d: cos})
}

// FillRect paints the background of every cell whose centre is inside the rectangle.
func (s *CellSurface) FillRect(x, y, w, h float64, c core.Color) {
	s.eachCell(x, y, w, h, func(col, row int, _, _ float64) {
		s.screen.SetCell(col, row, core.Cell{Rune: ' ', Bg: c})
	})
}

// DrawSprite paints the sprite's car shape using its palette.
func (s *CellSurface) DrawSprite(sp racer.Sprite, x, y, w, h float64) {
	style := sprites.StyleFor(sp.ID)
	s.eachCell(x, y, w, h, func(col, row int, u, v float64) {
		part := sprites.PartAt(u, v)
		if part == sprites.PartNone {
			return
		}
		s.screen.SetCell(col, row, core.Cell{Rune: ' ', Bg: style.Color(part)})
	})
}

// StrokeLine draws a line glyph in every cell the line passes through the
// middle of, skipping cells whose centre falls in a dash gap. Lines are at
// least one cell thick.
func (s *CellSurface) StrokeLine(x0, y0, x1, y1, width float64, c core.Color, dash []float64) {
	px, py := s.m.apply(x0, y0)
	qx, qy := s.m.apply(x1, y1)
	length := math.Hypot(qx-px, qy-py)
	if length == 0 {
		return
	}
	ux, uy := (qx-px)/length, (qy-py)/length
	nx, ny := -uy, ux

	glyph := '│'
	if math.Abs(ux) > math.Abs(uy) {
		glyph = '─'
	}
	half := math.Max(width/2, (math.Abs(nx)*s.sx+math.Abs(ny)*s.sy)/2)

	col0, col1, row0, row1 := s.cellRange(
		math.Min(px, qx)-half, math.Min(py, qy)-half,
		math.Max(px, qx)+half, math.Max(py, qy)+half,
	)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			cx, cy := s.centre(col, row)
			t := (cx-px)*ux + (cy-py)*uy
			perp := (cx-px)*nx + (cy-py)*ny
			if t < 0 || t > length || perp < -half || perp >= half {
				continue
			}
			if !dashOn(t, dash) {
				continue
			}
			s.screen.SetFg(s.view.X+col, s.view.Y+row, glyph, c)
		}
	}
}

// eachCell calls fn for every view cell whose centre lies inside the local
// rectangle (x, y, w, h) under the current transform. u and v give the
// centre's position within the rectangle, normalized to [0, 1).
func (s *CellSurface) eachCell(x, y, w, h float64, fn func(col, row int, u, v float64)) {
	if w <= 0 || h <= 0 {
		return
	}
	inv, ok := s.m.invert()
	if !ok {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		cx, cy := s.m.apply(p[0], p[1])
		minX, maxX = math.Min(minX, cx), math.Max(maxX, cx)
		minY, maxY = math.Min(minY, cy), math.Max(maxY, cy)
	}

	col0, col1, row0, row1 := s.cellRange(minX, minY, maxX, maxY)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			lx, ly := inv.apply(s.centre(col, row))
			u, v := (lx-x)/w, (ly-y)/h
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}
			fn(s.view.X+col, s.view.Y+row, u, v)
		}
	}
}

// cellRange converts a canvas bounding box to view-relative cell bounds,
// clipped to the view.
func (s *CellSurface) cellRange(minX, minY, maxX, maxY float64) (col0, col1, row0, row1 int) {
	clip := func(v float64, hi int) int {
		if v < 0 {
			return 0
		}
		if v > float64(hi) {
			return hi
		}
		return int(v)
	}
	col0 = clip(math.Floor(minX/s.sx), s.view.W)
	col1 = clip(math.Ceil(maxX/s.sx)+1, s.view.W)
	row0 = clip(math.Floor(minY/s.sy), s.view.H)
	row1 = clip(math.Ceil(maxY/s.sy)+1, s.view.H)
	return col0, col1, row0, row1
}

// centre returns the canvas position of a view cell's centre.
func (s *CellSurface) centre(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.sx, (float64(row) + 0.5) * s.sy
}

// dashOn reports whether distance t along a line falls on a dash.
// Odd-length patterns repeat, as on an HTML canvas.
func dashOn(t float64, dash []float64) bool {
	if len(dash) == 0 {
		return true
	}
	if len(dash)%2 == 1 {
		dash = append(dash[:len(dash):len(dash)], dash...)
	}
	period := 0.0
	for _, d := range dash {
		period += d
	}
	if period <= 0 {
		return true
	}

	pos := math.Mod(t, period)
	for i, d := range dash {
		if pos < d {
			return i%2 == 0
		}
		pos -= d
	}
	return true
}
