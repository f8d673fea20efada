package ui

import (
	"image"
	"image/color"

	"github.com/iburimskiy/lissajous-scope/internal/canvas"
)

var (
	buttonColor      = color.RGBA{R: 150, A: 255}
	buttonHoverColor = color.RGBA{R: 180, G: 50, B: 50, A: 255}
)

// Button invokes its action synchronously on click. Hover state is
// purely visual.
type Button struct {
	label   string
	rect    image.Rectangle
	hovered bool
	onPress func()
}

func NewButton(label string, rect image.Rectangle, onPress func()) *Button {
	return &Button{label: label, rect: rect, onPress: onPress}
}

// HandleClick fires the action if p is inside the bounds and reports
// whether the click was consumed.
func (b *Button) HandleClick(p image.Point) bool {
	if !p.In(b.rect) {
		return false
	}
	if b.onPress != nil {
		b.onPress()
	}
	return true
}

// UpdateHover tracks the cursor for the hover highlight.
func (b *Button) UpdateHover(p image.Point) {
	b.hovered = p.In(b.rect)
}

func (b *Button) Render(c canvas.Canvas) {
	bg := buttonColor
	if b.hovered {
		bg = buttonHoverColor
	}
	x := float64(b.rect.Min.X)
	y := float64(b.rect.Min.Y)
	w := float64(b.rect.Dx())
	h := float64(b.rect.Dy())

	c.FillRect(x, y, w, h, bg)
	c.StrokeRect(x, y, w, h, 2, labelColor)

	// Center the label, 7px per basicfont glyph.
	textW := len(b.label) * 7
	c.Text(b.label, b.rect.Min.X+(b.rect.Dx()-textW)/2, b.rect.Min.Y+(b.rect.Dy()-13)/2, labelColor)
}
