package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// fontAscent positions text.Draw's baseline so Text coordinates are the
// top-left corner of the string.
const fontAscent = 11

// Image renders onto an ebiten image.
type Image struct {
	Dst *ebiten.Image
}

func (c *Image) Fill(clr color.Color) {
	c.Dst.Fill(clr)
}

func (c *Image) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.Dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Image) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(c.Dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (c *Image) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.Dst, float32(cx), float32(cy), float32(r), clr, false)
}

func (c *Image) Line(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.Dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, false)
}

func (c *Image) Text(s string, x, y int, clr color.Color) {
	text.Draw(c.Dst, s, basicfont.Face7x13, x, y+fontAscent, clr)
}
