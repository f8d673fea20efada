package scope

import (
	"image"
	"math"
	"testing"

	"github.com/iburimskiy/lissajous-scope/internal/config"
	"github.com/iburimskiy/lissajous-scope/internal/trail"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New()
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func step(a *App, dt float64) {
	a.Step(dt, Input{Cursor: image.Pt(-100, -100)})
}

func TestModeToggle(t *testing.T) {
	a := newTestApp(t)
	if a.Mode() != ModeMouse {
		t.Fatalf("initial mode %v, want Mouse", a.Mode())
	}
	a.Step(0, Input{ToggleMode: true, Cursor: image.Pt(-100, -100)})
	if a.Mode() != ModeSignal {
		t.Fatalf("after SPACE: mode %v, want Signal", a.Mode())
	}
	a.Step(0, Input{ToggleMode: true, Cursor: image.Pt(-100, -100)})
	if a.Mode() != ModeMouse {
		t.Fatalf("after second SPACE: mode %v, want Mouse", a.Mode())
	}
}

func TestMouseModeEmitsOnCanvasOnly(t *testing.T) {
	a := newTestApp(t)

	a.Step(1.0/60, Input{Cursor: image.Pt(100, 100)})
	if a.Buffer().Len() == 0 {
		t.Fatal("cursor on canvas must emit spots")
	}

	n := a.Buffer().Len()
	a.Step(1.0/60, Input{Cursor: image.Pt(config.CanvasWidth + 50, 100)})
	if a.Buffer().Len() != n {
		t.Error("cursor over the panel must not emit spots")
	}
}

func TestMouseTrailInterpolates(t *testing.T) {
	a := newTestApp(t)
	a.Step(1.0/60, Input{Cursor: image.Pt(100, 100)})
	a.Step(1.0/60, Input{Cursor: image.Pt(200, 100)})

	// One spot at the first position, SpotsPerStep along the segment.
	if got, want := a.Buffer().Len(), 1+config.SpotsPerStep; got != want {
		t.Fatalf("buffer has %d spots, want %d", got, want)
	}
	spots := a.Buffer().Spots()
	last := spots[len(spots)-1]
	if last.X != 200 || last.Y != 100 {
		t.Errorf("trail head at (%f, %f), want (200, 100)", last.X, last.Y)
	}
}

func TestSliderDragSuppressesDrawing(t *testing.T) {
	a := newTestApp(t)
	panelX := config.CanvasWidth + config.PanelPadding
	onSlider := image.Pt(panelX+10, config.PanelTop+config.SliderSpacing+7) // X Freq track

	a.Step(1.0/60, Input{Cursor: onSlider, MousePressed: true, MouseJustPressed: true})
	before := a.Buffer().Len()

	// Keep the button held while sweeping the cursor across the canvas.
	a.Step(1.0/60, Input{Cursor: image.Pt(100, 100), MousePressed: true})
	if a.Buffer().Len() != before {
		t.Error("an active slider drag must not draw spots")
	}

	a.Step(1.0/60, Input{Cursor: image.Pt(100, 100), MouseJustReleased: true})
	a.Step(1.0/60, Input{Cursor: image.Pt(100, 100)})
	if a.Buffer().Len() == before {
		t.Error("drawing must resume after the drag ends")
	}
}

func TestResetButtonRestoresDefaults(t *testing.T) {
	a := newTestApp(t)

	freq := a.ChannelX().Sliders()[0]
	amp := a.ChannelX().Sliders()[1]
	freq.Set(5.0)
	amp.Set(20.0)
	a.SizeSlider().Set(2)

	// Click the reset button.
	panelX := config.CanvasWidth + config.PanelPadding
	onReset := image.Pt(panelX+config.ButtonWidth/2, config.WindowHeight-50+config.ButtonHeight/2)
	a.Step(1.0/60, Input{Cursor: onReset, MousePressed: true, MouseJustPressed: true})

	if freq.Value() != config.DefaultFreq {
		t.Errorf("frequency after reset: got %f, want %f", freq.Value(), float64(config.DefaultFreq))
	}
	if amp.Value() != config.DefaultAmp {
		t.Errorf("amplitude after reset: got %f, want %f", amp.Value(), float64(config.DefaultAmp))
	}
	if a.SizeSlider().Value() != config.DefaultSize {
		t.Errorf("dot size after reset: got %f, want %f", a.SizeSlider().Value(), float64(config.DefaultSize))
	}
	if a.ChannelX().Generator().Frequency() != config.DefaultFreq {
		t.Error("generator frequency not restored through the binding")
	}
}

func TestSignalModePollAccumulatorTakesMultipleSamples(t *testing.T) {
	a := newTestApp(t)
	a.Step(0, Input{ToggleMode: true, Cursor: image.Pt(-100, -100)})
	a.PollSlider().Set(10)

	// One long frame spanning 3.5 poll periods yields exactly 3 samples:
	// the first emits a single head spot, the rest interpolate.
	step(a, 0.35)
	want := 1 + 2*config.SpotsPerStep
	if got := a.Buffer().Len(); got != want {
		t.Errorf("buffer has %d spots after a long frame, want %d", got, want)
	}
}

func TestSignalModeLissajousArc(t *testing.T) {
	a := newTestApp(t)
	a.Step(0, Input{ToggleMode: true, Cursor: image.Pt(-100, -100)})
	a.PollSlider().Set(10)

	// X: Sine, freq 1, amp 50, offset 0, phase 0.
	for i, v := range []float64{1, 50, 0, 0} {
		a.ChannelX().Sliders()[i].Set(v)
	}
	// Y: same but a quarter turn ahead.
	for i, v := range []float64{1, 50, 0, math.Pi / 2} {
		a.ChannelY().Sliders()[i].Set(v)
	}

	for i := 0; i < 5; i++ {
		step(a, 0.05) // 0.25 s total: samples land at t=0.1 and t=0.2
	}

	cx := float64(config.CanvasWidth) / 2
	cy := float64(config.WindowHeight) / 2
	for _, tm := range []float64{0.1, 0.2} {
		wantX := cx + 50*math.Sin(2*math.Pi*tm)
		wantY := cy + 50*math.Sin(2*math.Pi*tm+math.Pi/2)
		if !hasSpotNear(a.Buffer().Spots(), wantX, wantY, 1e-6) {
			t.Errorf("no spot near closed-form point (%f, %f) for t=%f", wantX, wantY, tm)
		}
	}
}

func TestSpotsExpireAfterLifetime(t *testing.T) {
	a := newTestApp(t)
	a.LifeSlider().Set(0.2)
	a.Step(1.0/60, Input{Cursor: image.Pt(100, 100)})
	if a.Buffer().Len() == 0 {
		t.Fatal("expected an initial spot")
	}

	// Advance past the lifetime without emitting anything.
	for i := 0; i < 30; i++ {
		step(a, 1.0/60)
	}
	if a.Buffer().Len() != 0 {
		t.Errorf("%d spots still alive past their lifetime", a.Buffer().Len())
	}
}

func hasSpotNear(spots []trail.Spot, x, y, tol float64) bool {
	for _, s := range spots {
		if math.Abs(s.X-x) <= tol && math.Abs(s.Y-y) <= tol {
			return true
		}
	}
	return false
}
