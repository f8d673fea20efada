package scope

import (
	"image/color"

	"github.com/iburimskiy/lissajous-scope/internal/canvas"
	"github.com/iburimskiy/lissajous-scope/internal/config"
)

var (
	backgroundColor = color.RGBA{A: 255}
	dividerColor    = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	spotColor       = color.RGBA{G: 255, A: 255}
	statusColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Render draws the full frame: trail first, then the panel widgets on
// top. The beam head dot is drawn by the host so it can be smoothed.
func (a *App) Render(c canvas.Canvas) {
	c.Fill(backgroundColor)
	c.Line(config.CanvasWidth, 0, config.CanvasWidth, config.WindowHeight, 1, dividerColor)

	a.buffer.Render(c, a.now, spotColor)

	a.chanX.Render(c)
	a.chanY.Render(c)
	a.sizeSlider.Render(c)
	a.lifeSlider.Render(c)
	a.pollSlider.Render(c)
	a.reset.Render(c)

	c.Text("Mode: "+a.mode.String()+" (SPACE)", config.CanvasWidth-180, 10, statusColor)
}

// SpotColor is the trail color, exported for the host's beam dot.
func SpotColor() color.RGBA { return spotColor }
