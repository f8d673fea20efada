// Package ui implements the control-panel widgets: sliders, the reset
// button, and the cyclic waveform selector. Widgets consume explicit
// pointer coordinates so they are testable without a display.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/iburimskiy/lissajous-scope/internal/canvas"
	"github.com/iburimskiy/lissajous-scope/internal/config"
)

var (
	trackColor  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	borderColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	fillColor   = color.RGBA{R: 60, G: 120, B: 60, A: 255}
	handleColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	labelColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Slider maps horizontal pointer position within its track linearly onto
// [min, max] and pushes each change through an onChange callback, so the
// bound parameter is mutated explicitly rather than read back by callers.
type Slider struct {
	label    string
	rect     image.Rectangle
	min, max float64
	value    float64
	isInt    bool
	dragging bool
	onChange func(float64)
}

// NewSlider builds a slider over the given track rectangle. min must be
// strictly below max, otherwise the value mapping would be undefined.
func NewSlider(label string, rect image.Rectangle, min, max, initial float64, isInt bool, onChange func(float64)) (*Slider, error) {
	if min >= max {
		return nil, fmt.Errorf("slider %q: min %v must be below max %v", label, min, max)
	}
	s := &Slider{
		label:    label,
		rect:     rect,
		min:      min,
		max:      max,
		isInt:    isInt,
		onChange: onChange,
	}
	s.value = s.clamp(initial)
	return s, nil
}

// HandlePointerDown starts a drag when the press lands on the track and
// jumps the value to the pressed position. Reports whether the press was
// consumed.
func (s *Slider) HandlePointerDown(p image.Point) bool {
	if !p.In(s.hitRect()) {
		return false
	}
	s.dragging = true
	s.setFromX(p.X)
	return true
}

// HandlePointerMove updates the value while dragging. Positions beyond
// the track bounds clamp to the range ends.
func (s *Slider) HandlePointerMove(p image.Point) {
	if !s.dragging {
		return
	}
	s.setFromX(p.X)
}

func (s *Slider) HandlePointerUp() { s.dragging = false }

// Set clamps v into range and fires the binding. Used by reset.
func (s *Slider) Set(v float64) {
	s.value = s.clamp(v)
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

func (s *Slider) Value() float64 { return s.value }

func (s *Slider) Dragging() bool { return s.dragging }

func (s *Slider) setFromX(x int) {
	ratio := float64(x-s.rect.Min.X) / float64(s.rect.Dx())
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	s.Set(s.min + ratio*(s.max-s.min))
}

func (s *Slider) clamp(v float64) float64 {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	if s.isInt {
		v = math.Round(v)
	}
	return v
}

// hitRect is the track grown to the handle's overhang so the taller
// handle is grabbable.
func (s *Slider) hitRect() image.Rectangle {
	return image.Rect(s.rect.Min.X, s.rect.Min.Y-s.rect.Dy()/2, s.rect.Max.X, s.rect.Max.Y+s.rect.Dy()/2)
}

func (s *Slider) Render(c canvas.Canvas) {
	x := float64(s.rect.Min.X)
	y := float64(s.rect.Min.Y)
	w := float64(s.rect.Dx())
	h := float64(s.rect.Dy())

	c.FillRect(x, y, w, h, trackColor)

	ratio := (s.value - s.min) / (s.max - s.min)
	c.FillRect(x, y, w*ratio, h, fillColor)
	c.StrokeRect(x, y, w, h, 1, borderColor)

	handleX := x + ratio*(w-config.HandleWidth)
	c.FillRect(handleX, y-h/2, config.HandleWidth, h*2, handleColor)
	c.StrokeRect(handleX, y-h/2, config.HandleWidth, h*2, 1, labelColor)

	c.Text(s.label, s.rect.Min.X, s.rect.Min.Y-14, labelColor)
	var val string
	if s.isInt {
		val = fmt.Sprintf("%d", int(s.value))
	} else {
		val = fmt.Sprintf("%.2f", s.value)
	}
	c.Text(val, s.rect.Max.X+8, s.rect.Min.Y, labelColor)
}
