// Package wave holds the waveform math behind the signal mode: the four
// basic shapes and the per-axis generator that turns them into pixel
// coordinates over time.
package wave

import "math"

// Kind selects one of the basic waveform shapes.
type Kind int

const (
	Sine Kind = iota
	Square
	Sawtooth
	Triangle

	numKinds
)

func (k Kind) String() string {
	switch k {
	case Sine:
		return "Sine"
	case Square:
		return "Square"
	case Sawtooth:
		return "Sawtooth"
	case Triangle:
		return "Triangle"
	}
	return "Unknown"
}

// Next cycles Sine -> Square -> Sawtooth -> Triangle -> Sine.
func (k Kind) Next() Kind {
	return (k + 1) % numKinds
}

// Evaluate returns the signed unit amplitude of kind k at the given phase
// in radians. Output is always in [-1, 1] and periodic with period 2*pi.
func Evaluate(k Kind, phase float64) float64 {
	switch k {
	case Square:
		// sign(sin(phase)), computed from the normalized phase so the
		// period boundary lands on exactly +1 instead of picking up the
		// rounding of math.Sin near its zero crossings. sin(phase) >= 0
		// is equivalent to a normalized phase in [0, 0.5].
		if normalize(phase) <= 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		// Ramp -1 -> +1 over one period.
		return 2*normalize(phase) - 1
	case Triangle:
		// 0 at phase 0, +1 at pi/2, 0 at pi, -1 at 3*pi/2.
		p := normalize(phase)
		switch {
		case p < 0.25:
			return 4 * p
		case p < 0.75:
			return 2 - 4*p
		default:
			return 4*p - 4
		}
	default:
		return math.Sin(phase)
	}
}

// normalize maps a phase in radians to its position within one period,
// in [0, 1). Negative phases wrap into the same cycle.
func normalize(phase float64) float64 {
	p := math.Mod(phase, 2*math.Pi)
	if p < 0 {
		p += 2 * math.Pi
	}
	return p / (2 * math.Pi)
}
