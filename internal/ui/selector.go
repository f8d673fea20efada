package ui

import (
	"image"

	"github.com/iburimskiy/lissajous-scope/internal/canvas"
)

// Selector cycles through a fixed list of options on click. It backs the
// waveform-kind control, which is an enum rather than a continuous value.
type Selector struct {
	label    string
	rect     image.Rectangle
	options  []string
	index    int
	onChange func(int)
}

func NewSelector(label string, rect image.Rectangle, options []string, onChange func(int)) *Selector {
	return &Selector{label: label, rect: rect, options: options, onChange: onChange}
}

// HandleClick advances to the next option, wrapping after the last, and
// reports whether the click was consumed.
func (s *Selector) HandleClick(p image.Point) bool {
	if !p.In(s.rect) {
		return false
	}
	s.Set((s.index + 1) % len(s.options))
	return true
}

// Set selects option i and fires the binding.
func (s *Selector) Set(i int) {
	s.index = i
	if s.onChange != nil {
		s.onChange(i)
	}
}

func (s *Selector) Index() int { return s.index }

func (s *Selector) Render(c canvas.Canvas) {
	x := float64(s.rect.Min.X)
	y := float64(s.rect.Min.Y)
	c.FillRect(x, y, float64(s.rect.Dx()), float64(s.rect.Dy()), trackColor)
	c.StrokeRect(x, y, float64(s.rect.Dx()), float64(s.rect.Dy()), 1, borderColor)
	c.Text(s.label, s.rect.Min.X, s.rect.Min.Y-14, labelColor)
	c.Text(s.options[s.index], s.rect.Min.X+6, s.rect.Min.Y+1, labelColor)
}
