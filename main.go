package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/lissajous-scope/internal/config"
	"github.com/iburimskiy/lissajous-scope/internal/game"
	"github.com/iburimskiy/lissajous-scope/internal/scope"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Lissajous Scope - SPACE: Mouse/Signal mode, Esc/Q: Quit")

	app, err := scope.New()
	if err != nil {
		fail(err)
	}

	if err := ebiten.RunGame(game.New(app)); err != nil && !errors.Is(err, ebiten.Termination) {
		fail(err)
	}
}

// fail reports a fatal error on stderr and in a native dialog, then
// exits non-zero. Used for display/init failures only; the frame loop
// itself has no fallible operations.
func fail(err error) {
	fmt.Fprintln(os.Stderr, "lissajous-scope:", err)
	_ = zenity.Error(err.Error(), zenity.Title("Lissajous Scope"))
	os.Exit(1)
}
