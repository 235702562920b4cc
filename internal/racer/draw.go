package racer

import "github.com/vovakirdan/tui-racer/internal/core"

// Surface is a 2-D drawing target in canvas pixels.
// Rotate takes degrees, clockwise on a y-down canvas. Save and Restore
// push and pop the current transform.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c core.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c core.Color, dash []float64)
	Save()
	Translate(x, y float64)
	Rotate(deg float64)
	Restore()
	DrawSprite(s Sprite, x, y, w, h float64)
}

// Render draws the track, the player and every obstacle.
func (c *Controller) Render(dst Surface) {
	w, h := c.cfg.Canvas.Width, c.cfg.Canvas.Height
	track := c.cfg.Track

	dst.Clear()
	dst.FillRect(0, 0, w, h, core.Color(track.Background))

	laneW := w / float64(track.Lanes)
	for i := 1; i < track.Lanes; i++ {
		x := laneW * float64(i)
		dst.StrokeLine(x, c.track.Offset, x, h+c.track.Offset, track.LineWidth, core.Color(track.Divider), track.Dash)
	}

	p := c.player
	dst.Save()
	dst.Translate(p.X+p.Width/2, p.Y+p.Height/2)
	dst.Rotate(p.Rotation)
	dst.DrawSprite(c.PlayerSprite(), -p.ImgW/2, -p.ImgH/2, p.ImgW, p.ImgH)
	dst.Restore()

	for _, o := range c.field.Obstacles() {
		dst.DrawSprite(o.Sprite, o.X, o.Y, o.ImgW, o.ImgH)
	}
}
