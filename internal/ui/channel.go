package ui

import (
	"fmt"
	"image"

	"github.com/iburimskiy/lissajous-scope/internal/canvas"
	"github.com/iburimskiy/lissajous-scope/internal/config"
	"github.com/iburimskiy/lissajous-scope/internal/wave"
)

var waveNames = []string{
	wave.Sine.String(),
	wave.Square.String(),
	wave.Sawtooth.String(),
	wave.Triangle.String(),
}

// ChannelControls groups one axis's generator with the widgets bound to
// it: the waveform selector and the frequency, amplitude, offset and
// phase sliders, handled and rendered in that fixed order.
type ChannelControls struct {
	name     string
	gen      *wave.Generator
	selector *Selector
	sliders  [4]*Slider
}

// NewChannelControls lays the widgets out in a column starting at origin,
// one row per widget, and binds them to gen's setters.
func NewChannelControls(name string, origin image.Point, gen *wave.Generator) (*ChannelControls, error) {
	c := &ChannelControls{name: name, gen: gen}

	row := func(i int) image.Rectangle {
		y := origin.Y + i*config.SliderSpacing
		return image.Rect(origin.X, y, origin.X+config.SliderWidth, y+config.SliderHeight)
	}

	c.selector = NewSelector(name+" Wave", row(0), waveNames, func(i int) {
		gen.SetKind(wave.Kind(i))
	})

	specs := []struct {
		label    string
		min, max float64
		initial  float64
		bind     func(float64)
	}{
		{"Freq", config.FreqMin, config.FreqMax, config.DefaultFreq, gen.SetFrequency},
		{"Amp", config.AmpMin, config.AmpMax, config.DefaultAmp, gen.SetAmplitude},
		{"Offset", config.OffsetMin, config.OffsetMax, config.DefaultOffset, gen.SetOffset},
		{"Phase", config.PhaseMin, config.PhaseMax, config.DefaultPhase, gen.SetPhase},
	}
	for i, sp := range specs {
		s, err := NewSlider(fmt.Sprintf("%s %s", name, sp.label), row(i+1), sp.min, sp.max, sp.initial, false, sp.bind)
		if err != nil {
			return nil, err
		}
		c.sliders[i] = s
	}
	return c, nil
}

func (c *ChannelControls) Selector() *Selector { return c.selector }

// Sliders returns the channel sliders in handling order: frequency,
// amplitude, offset, phase.
func (c *ChannelControls) Sliders() []*Slider { return c.sliders[:] }

func (c *ChannelControls) Generator() *wave.Generator { return c.gen }

// HandleClick routes a press to the selector.
func (c *ChannelControls) HandleClick(p image.Point) bool {
	return c.selector.HandleClick(p)
}

// Reset restores the documented defaults and re-fires every binding.
func (c *ChannelControls) Reset() {
	c.selector.Set(int(wave.Sine))
	defaults := []float64{config.DefaultFreq, config.DefaultAmp, config.DefaultOffset, config.DefaultPhase}
	for i, s := range c.sliders {
		s.Set(defaults[i])
	}
}

func (c *ChannelControls) Render(cv canvas.Canvas) {
	c.selector.Render(cv)
	for _, s := range c.sliders {
		s.Render(cv)
	}
}
