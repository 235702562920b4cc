package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/racer"
	"github.com/vovakirdan/tui-racer/internal/sprites"
)

// Sprites are rasterized once at this size and scaled when drawn.
const (
	spriteResW = 64
	spriteResH = 96
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub-image of whiteImage, so scaled fills
	// never sample its transparent border.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// spriteCache holds one rasterized image per sprite ID.
type spriteCache map[string]*ebiten.Image

func (c spriteCache) get(id string) *ebiten.Image {
	if img, ok := c[id]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(sprites.Raster(id, spriteResW, spriteResH))
	c[id] = img
	return img
}

// imageSurface is a racer.Surface drawing onto an ebiten image whose pixels
// are canvas pixels.
type imageSurface struct {
	dst     *ebiten.Image
	geom    ebiten.GeoM
	stack   []ebiten.GeoM
	sprites spriteCache
}

var _ racer.Surface = (*imageSurface)(nil)

func newImageSurface(dst *ebiten.Image, cache spriteCache) *imageSurface {
	return &imageSurface{dst: dst, sprites: cache}
}

func (s *imageSurface) Clear() {
	s.dst.Clear()
}

func (s *imageSurface) Save() {
	s.stack = append(s.stack, s.geom)
}

func (s *imageSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.geom = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate and Rotate apply to what is drawn next, before the current
// transform.
func (s *imageSurface) Translate(x, y float64) {
	var t ebiten.GeoM
	t.Translate(x, y)
	s.prepend(t)
}

func (s *imageSurface) Rotate(deg float64) {
	var t ebiten.GeoM
	t.Rotate(deg * math.Pi / 180)
	s.prepend(t)
}

func (s *imageSurface) prepend(t ebiten.GeoM) {
	t.Concat(s.geom)
	s.geom = t
}

func (s *imageSurface) FillRect(x, y, w, h float64, c core.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geom)
	op.ColorScale.ScaleWithColor(sprites.RGBA(c))
	s.dst.DrawImage(whiteSubImage, op)
}

func (s *imageSurface) DrawSprite(sp racer.Sprite, x, y, w, h float64) {
	img := s.sprites.get(sp.ID)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/spriteResW, h/spriteResH)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geom)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

func (s *imageSurface) StrokeLine(x0, y0, x1, y1, width float64, c core.Color, dash []float64) {
	px, py := s.geom.Apply(x0, y0)
	qx, qy := s.geom.Apply(x1, y1)
	length := math.Hypot(qx-px, qy-py)
	if length == 0 {
		return
	}
	ux, uy := (qx-px)/length, (qy-py)/length
	clr := sprites.RGBA(c)

	for _, seg := range dashSegments(length, dash) {
		vector.StrokeLine(s.dst,
			float32(px+ux*seg[0]), float32(py+uy*seg[0]),
			float32(px+ux*seg[1]), float32(py+uy*seg[1]),
			float32(width), clr, false)
	}
}

// dashSegments splits [0, length] into the [start, end] spans a dash
// pattern draws. Odd-length patterns repeat, as on an HTML canvas.
func dashSegments(length float64, dash []float64) [][2]float64 {
	period := 0.0
	for _, d := range dash {
		period += d
	}
	if len(dash) == 0 || period <= 0 {
		return [][2]float64{{0, length}}
	}
	if len(dash)%2 == 1 {
		dash = append(dash[:len(dash):len(dash)], dash...)
	}

	var segs [][2]float64
	pos := 0.0
	for i := 0; pos < length; i = (i + 1) % len(dash) {
		end := math.Min(pos+dash[i], length)
		if i%2 == 0 && end > pos {
			segs = append(segs, [2]float64{pos, end})
		}
		pos += dash[i]
	}
	return segs
}
