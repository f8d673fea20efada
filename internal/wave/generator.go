package wave

import "math"

// Generator is a single-axis oscillator. Amplitude and offset are in
// pixels relative to the canvas center, phase is in radians, so
// Sample computes offset + amp*Evaluate(kind, 2*pi*freq*t + phase).
type Generator struct {
	kind   Kind
	freq   float64
	amp    float64
	offset float64
	phase  float64
}

// NewGenerator returns a generator with the given parameters, clamping
// frequency and amplitude to non-negative values.
func NewGenerator(kind Kind, freq, amp, offset, phase float64) *Generator {
	g := &Generator{kind: kind, offset: offset, phase: phase}
	g.SetFrequency(freq)
	g.SetAmplitude(amp)
	return g
}

// Sample returns the generator output at time t seconds. Deterministic:
// the same parameters and t always yield the same value. Parameter
// changes only affect samples taken afterwards.
func (g *Generator) Sample(t float64) float64 {
	return g.offset + g.amp*Evaluate(g.kind, 2*math.Pi*g.freq*t+g.phase)
}

func (g *Generator) SetKind(k Kind) { g.kind = k }

func (g *Generator) SetFrequency(f float64) {
	if f < 0 {
		f = 0
	}
	g.freq = f
}

func (g *Generator) SetAmplitude(a float64) {
	if a < 0 {
		a = 0
	}
	g.amp = a
}

func (g *Generator) SetOffset(o float64) { g.offset = o }

func (g *Generator) SetPhase(p float64) { g.phase = p }

func (g *Generator) Kind() Kind         { return g.kind }
func (g *Generator) Frequency() float64 { return g.freq }
func (g *Generator) Amplitude() float64 { return g.amp }
func (g *Generator) Offset() float64    { return g.offset }
func (g *Generator) Phase() float64     { return g.phase }
