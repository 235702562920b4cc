package sprites

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// RGBA converts a cell colour to an opaque RGBA value. The default colour
// and malformed values become transparent.
func RGBA(c core.Color) color.RGBA {
	if c.IsDefault() {
		return color.RGBA{}
	}
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{}
	}
	r, g, b := cc.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Raster paints sprite id into a w x h image, sampling each pixel centre.
// Pixels outside the car stay transparent.
func Raster(id string, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	style := StyleFor(id)
	for y := range h {
		v := (float64(y) + 0.5) / float64(h)
		for x := range w {
			part := PartAt((float64(x)+0.5)/float64(w), v)
			if part == PartNone {
				continue
			}
			img.SetRGBA(x, y, RGBA(style.Color(part)))
		}
	}
	return img
}
