// Package scope is the display-independent frame core: mode state,
// signal polling, spot emission, and widget routing. The ebiten host
// feeds it Input once per frame and renders it through a Canvas, so the
// whole update path runs in tests without a window.
package scope

import (
	"image"

	"github.com/iburimskiy/lissajous-scope/internal/config"
	"github.com/iburimskiy/lissajous-scope/internal/trail"
	"github.com/iburimskiy/lissajous-scope/internal/ui"
	"github.com/iburimskiy/lissajous-scope/internal/wave"
)

// Mode selects the trail source.
type Mode int

const (
	ModeMouse Mode = iota
	ModeSignal
)

func (m Mode) String() string {
	if m == ModeSignal {
		return "X/Y Signals"
	}
	return "Mouse"
}

// Input is one frame's worth of already-edge-detected host input.
type Input struct {
	Cursor            image.Point
	MousePressed      bool
	MouseJustPressed  bool
	MouseJustReleased bool
	ToggleMode        bool
}

// App owns all process-wide state for one run.
type App struct {
	mode Mode

	// App clock and signal-mode timing, in seconds. pollAccum gates
	// sampling by subtracting the fixed poll period rather than
	// resetting from "now", so variable frame rates do not distort
	// the signal frequency.
	now        float64
	signalTime float64
	pollAccum  float64

	buffer *trail.Buffer

	// Beam continuity for interpolation between emissions.
	beamX, beamY float64
	hasBeam      bool

	// Parameters written by the bound sliders.
	spotSize     float64
	spotLifetime float64
	pollRate     float64

	chanX, chanY *ui.ChannelControls

	sizeSlider *ui.Slider
	lifeSlider *ui.Slider
	pollSlider *ui.Slider
	reset      *ui.Button

	active *ui.Slider
}

// New builds the app with the compiled-in defaults and the control panel
// laid out along the right edge.
func New() (*App, error) {
	a := &App{
		buffer:       trail.NewBuffer(config.MaxSpots),
		spotSize:     config.DefaultSize,
		spotLifetime: config.DefaultLifetime,
		pollRate:     config.DefaultPollRate,
	}

	panelX := config.CanvasWidth + config.PanelPadding
	row := func(i int) image.Rectangle {
		y := config.PanelTop + i*config.SliderSpacing
		return image.Rect(panelX, y, panelX+config.SliderWidth, y+config.SliderHeight)
	}

	genX := wave.NewGenerator(wave.Sine, config.DefaultFreq, config.DefaultAmp, config.DefaultOffset, config.DefaultPhase)
	genY := wave.NewGenerator(wave.Sine, config.DefaultFreq, config.DefaultAmp, config.DefaultOffset, config.DefaultPhase)

	var err error
	if a.chanX, err = ui.NewChannelControls("X", row(0).Min, genX); err != nil {
		return nil, err
	}
	if a.chanY, err = ui.NewChannelControls("Y", row(5).Min, genY); err != nil {
		return nil, err
	}

	if a.sizeSlider, err = ui.NewSlider("Dot Size", row(10), config.SizeMin, config.SizeMax, config.DefaultSize, true, func(v float64) { a.spotSize = v }); err != nil {
		return nil, err
	}
	if a.lifeSlider, err = ui.NewSlider("Lifetime", row(11), config.LifetimeMin, config.LifetimeMax, config.DefaultLifetime, false, func(v float64) { a.spotLifetime = v }); err != nil {
		return nil, err
	}
	if a.pollSlider, err = ui.NewSlider("Polling Rate", row(12), config.PollRateMin, config.PollRateMax, config.DefaultPollRate, true, func(v float64) { a.pollRate = v }); err != nil {
		return nil, err
	}

	a.reset = ui.NewButton("Reset",
		image.Rect(panelX, config.WindowHeight-50, panelX+config.ButtonWidth, config.WindowHeight-50+config.ButtonHeight),
		a.Reset)

	return a, nil
}

// Step advances the app by dt seconds. Widgets see the input first so a
// slider drag always wins over trail drawing.
func (a *App) Step(dt float64, in Input) {
	a.now += dt
	if in.ToggleMode {
		a.toggleMode()
	}

	consumed := a.routeInput(in)

	switch a.mode {
	case ModeMouse:
		a.stepMouse(in, consumed)
	case ModeSignal:
		a.stepSignal(dt)
	}

	a.buffer.Tick(a.now)
}

func (a *App) toggleMode() {
	if a.mode == ModeMouse {
		a.mode = ModeSignal
	} else {
		a.mode = ModeMouse
	}
	a.pollAccum = 0
	a.hasBeam = false
}

func (a *App) routeInput(in Input) bool {
	a.reset.UpdateHover(in.Cursor)

	consumed := false
	if in.MouseJustPressed {
		consumed = a.handlePress(in.Cursor)
	}
	if a.active != nil {
		if in.MousePressed {
			a.active.HandlePointerMove(in.Cursor)
			consumed = true
		}
		if in.MouseJustReleased {
			a.active.HandlePointerUp()
			a.active = nil
		}
	}
	return consumed
}

// handlePress offers the press to each widget in the documented order:
// per channel the selector then its sliders, the global sliders, the
// reset button.
func (a *App) handlePress(p image.Point) bool {
	for _, ch := range []*ui.ChannelControls{a.chanX, a.chanY} {
		if ch.HandleClick(p) {
			return true
		}
		for _, s := range ch.Sliders() {
			if s.HandlePointerDown(p) {
				a.active = s
				return true
			}
		}
	}
	for _, s := range []*ui.Slider{a.sizeSlider, a.lifeSlider, a.pollSlider} {
		if s.HandlePointerDown(p) {
			a.active = s
			return true
		}
	}
	return a.reset.HandleClick(p)
}

func (a *App) stepMouse(in Input, consumed bool) {
	if consumed || a.active != nil {
		return
	}
	p := in.Cursor
	if p.X < 0 || p.X >= config.CanvasWidth || p.Y < 0 || p.Y >= config.WindowHeight {
		return
	}
	a.emit(float64(p.X), float64(p.Y))
}

func (a *App) stepSignal(dt float64) {
	if a.pollRate <= 0 {
		return
	}
	interval := 1.0 / a.pollRate
	a.pollAccum += dt
	for a.pollAccum >= interval {
		a.pollAccum -= interval
		a.signalTime += interval
		x, y := a.signalPosition(a.signalTime)
		a.emit(x, y)
	}
}

// signalPosition maps the generator pair onto the canvas, centered and
// clamped to the drawable area.
func (a *App) signalPosition(t float64) (float64, float64) {
	x := float64(config.CanvasWidth)/2 + a.chanX.Generator().Sample(t)
	y := float64(config.WindowHeight)/2 + a.chanY.Generator().Sample(t)
	return clamp(x, 0, config.CanvasWidth), clamp(y, 0, config.WindowHeight)
}

// emit pushes spots from the previous beam position to (x, y),
// interpolating so fast movement still leaves a continuous trail.
func (a *App) emit(x, y float64) {
	push := func(px, py float64) {
		a.buffer.Push(trail.Spot{
			X:         px,
			Y:         py,
			CreatedAt: a.now,
			Lifetime:  a.spotLifetime,
			BaseSize:  a.spotSize,
		})
	}

	if !a.hasBeam || (x == a.beamX && y == a.beamY) {
		push(x, y)
	} else {
		for i := 1; i <= config.SpotsPerStep; i++ {
			f := float64(i) / config.SpotsPerStep
			push(a.beamX+(x-a.beamX)*f, a.beamY+(y-a.beamY)*f)
		}
	}
	a.beamX, a.beamY = x, y
	a.hasBeam = true
}

// Reset restores every control to the compiled-in defaults.
func (a *App) Reset() {
	a.chanX.Reset()
	a.chanY.Reset()
	a.sizeSlider.Set(config.DefaultSize)
	a.lifeSlider.Set(config.DefaultLifetime)
	a.pollSlider.Set(config.DefaultPollRate)
}

func (a *App) Mode() Mode { return a.mode }

func (a *App) Buffer() *trail.Buffer { return a.buffer }

func (a *App) ChannelX() *ui.ChannelControls { return a.chanX }
func (a *App) ChannelY() *ui.ChannelControls { return a.chanY }

func (a *App) SizeSlider() *ui.Slider { return a.sizeSlider }
func (a *App) LifeSlider() *ui.Slider { return a.lifeSlider }
func (a *App) PollSlider() *ui.Slider { return a.pollSlider }

// BeamPosition is the current trail head, defaulting to the canvas
// center before anything has been emitted.
func (a *App) BeamPosition() (float64, float64) {
	if !a.hasBeam {
		return float64(config.CanvasWidth) / 2, float64(config.WindowHeight) / 2
	}
	return a.beamX, a.beamY
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
