// Package canvas abstracts the drawing surface so the frame core and the
// widgets can render without touching ebiten directly; tests substitute a
// recording implementation to inspect draw order.
package canvas

import "image/color"

type Canvas interface {
	Fill(clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	Line(x0, y0, x1, y1, width float64, clr color.Color)
	Text(s string, x, y int, clr color.Color)
}
