// Package game is the thin ebiten host around the scope core: it
// gathers input, steps the core at the fixed tick rate, and draws it.
package game

import (
	"image"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/lissajous-scope/internal/canvas"
	"github.com/iburimskiy/lissajous-scope/internal/config"
	"github.com/iburimskiy/lissajous-scope/internal/scope"
)

type Game struct {
	app *scope.App

	// Spring-smoothed beam head so the core dot glides between polls
	// instead of teleporting.
	spring       harmonica.Spring
	beamX, beamY float64
	velX, velY   float64
}

func New(app *scope.App) *Game {
	bx, by := app.BeamPosition()
	return &Game{
		app:    app,
		spring: harmonica.NewSpring(harmonica.FPS(ebiten.TPS()), config.BeamStiffness, config.BeamDamping),
		beamX:  bx,
		beamY:  by,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	cx, cy := ebiten.CursorPosition()
	in := scope.Input{
		Cursor:            image.Pt(cx, cy),
		MousePressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseJustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseJustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		ToggleMode:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}

	g.app.Step(1.0/float64(ebiten.TPS()), in)

	tx, ty := g.app.BeamPosition()
	g.beamX, g.velX = g.spring.Update(g.beamX, g.velX, tx)
	g.beamY, g.velY = g.spring.Update(g.beamY, g.velY, ty)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	c := &canvas.Image{Dst: screen}
	g.app.Render(c)
	c.FillCircle(g.beamX, g.beamY, config.CoreRadius, scope.SpotColor())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
