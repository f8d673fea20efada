// Package trail keeps the decaying spots that form the visible motion
// path. Spots fade linearly over their lifetime and the buffer culls
// them once fully faded.
package trail

import (
	"image/color"
	"math"

	"github.com/iburimskiy/lissajous-scope/internal/canvas"
)

// Spot is a single decaying point. Times are app-clock seconds.
type Spot struct {
	X, Y      float64
	CreatedAt float64
	Lifetime  float64
	BaseSize  float64
}

// Alpha is the remaining brightness at time now: 1 at creation, 0 at
// CreatedAt+Lifetime, clamped.
func (s Spot) Alpha(now float64) float64 {
	if s.Lifetime <= 0 {
		return 0
	}
	a := 1 - (now-s.CreatedAt)/s.Lifetime
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Radius shrinks with the square root of the remaining brightness.
func (s Spot) Radius(now float64) float64 {
	return s.BaseSize * math.Sqrt(s.Alpha(now))
}

func (s Spot) Dead(now float64) bool {
	return s.Alpha(now) <= 0
}

// Buffer holds live spots in insertion order inside a fixed-size ring:
// pushing at capacity overwrites the oldest spot, so a poll rate far
// above the frame rate cannot grow it, and steady-state pushes never
// reallocate.
type Buffer struct {
	spots []Spot // ring storage, allocated once
	start int    // index of the oldest spot
	n     int    // live count
}

func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{spots: make([]Spot, capacity)}
}

func (b *Buffer) at(i int) Spot {
	return b.spots[(b.start+i)%len(b.spots)]
}

// Push appends a spot, evicting the oldest when full.
func (b *Buffer) Push(s Spot) {
	if b.n == len(b.spots) {
		b.start = (b.start + 1) % len(b.spots)
		b.n--
	}
	b.spots[(b.start+b.n)%len(b.spots)] = s
	b.n++
}

// Tick removes every spot that has fully faded, compacting survivors
// toward the ring start. Culling is permanent: a removed spot never
// reappears.
func (b *Buffer) Tick(now float64) {
	j := 0
	for i := 0; i < b.n; i++ {
		s := b.at(i)
		if !s.Dead(now) {
			b.spots[(b.start+j)%len(b.spots)] = s
			j++
		}
	}
	b.n = j
}

// Render draws live spots oldest first, so newer spots occlude older
// ones. Alpha scales the spot color.
func (b *Buffer) Render(c canvas.Canvas, now float64, clr color.RGBA) {
	for i := 0; i < b.n; i++ {
		s := b.at(i)
		a := s.Alpha(now)
		if a <= 0 {
			continue
		}
		faded := color.RGBA{
			R: uint8(float64(clr.R) * a),
			G: uint8(float64(clr.G) * a),
			B: uint8(float64(clr.B) * a),
			A: uint8(255 * a),
		}
		c.FillCircle(s.X, s.Y, s.Radius(now), faded)
	}
}

func (b *Buffer) Len() int { return b.n }

// Spots returns a copy of the live spots in insertion order.
func (b *Buffer) Spots() []Spot {
	out := make([]Spot, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}
