package main

import (
	"fmt"

	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
	"github.com/taigrr/wirecube/pkg/cube"
	"github.com/taigrr/wirecube/pkg/motion"
	"github.com/taigrr/wirecube/pkg/render"
)

func windowCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the cube in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(width, height)
		},
	}
	cmd.Flags().IntVar(&width, "width", 480, "Initial window width")
	cmd.Flags().IntVar(&height, "height", 480, "Initial window height")
	return cmd
}

func runWindow(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", width, height)
	}
	theme := render.DefaultTheme()
	if bg, ok, err := parseBackground(bgColor); err != nil {
		return err
	} else if ok {
		theme.Background = bg
	}

	g := &windowGame{
		input:   motion.NewInput(targetFPS),
		sweep:   motion.NewSweep(sweepPeriod),
		painter: render.NewPainter(width, height, theme),
		dirty:   true,
	}
	defer g.painter.Close()
	g.cube = newCube(cubeInvalidate(&g.dirty))

	ebiten.SetWindowTitle("wirecube")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(targetFPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// windowGame hosts the cube in an ebiten window. Update and Draw run on the
// same goroutine, so the cube needs no locking.
type windowGame struct {
	cube     *cube.Cube
	input    *motion.Input
	sweep    *motion.Sweep
	painter  *render.Painter
	img      *ebiten.Image
	w, h     int
	dirty    bool
	sweeping bool
	lastX    int
	lastY    int
}

func (g *windowGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.sweeping = !g.sweeping
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.sweeping = false
		g.input.Reset()
		g.cube.SetRotation(0, 0)
	}

	mx, my := ebiten.CursorPosition()
	if mx != g.lastX || my != g.lastY {
		g.lastX, g.lastY = mx, my
		g.sweeping = false
		g.input.SetTarget(normalize(mx, g.w), normalize(my, g.h))
	}
	if g.sweeping {
		g.input.SetTarget(g.sweep.Advance(1 / float64(ebiten.TPS())))
	}
	if x, y, moving := g.input.Update(); moving {
		g.cube.SetRotation(x, y)
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if g.w <= 0 || g.h <= 0 {
		return
	}
	if g.dirty || g.img == nil {
		frame := g.cube.Frame(g.w, g.h)
		if err := g.painter.Draw(frame); err != nil {
			log.Errf("draw frame: %v", err)
			return
		}
		if g.img == nil {
			g.img = ebiten.NewImage(g.w, g.h)
		}
		g.img.WritePixels(render.ToRGBA(g.painter.Image()).Pix)
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		if err := g.painter.Resize(outsideWidth, outsideHeight); err != nil {
			log.Errf("resize: %v", err)
			return max(g.w, 1), max(g.h, 1)
		}
		g.w, g.h = outsideWidth, outsideHeight
		if g.img != nil {
			g.img.Deallocate()
			g.img = nil
		}
		g.dirty = true
	}
	return g.w, g.h
}
