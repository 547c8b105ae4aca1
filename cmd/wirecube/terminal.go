package main

import (
	"image/color"
	"time"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"github.com/taigrr/wirecube/pkg/motion"
	"github.com/taigrr/wirecube/pkg/render"
)

// sweepPeriod is the time for one automatic revolution, in seconds.
const sweepPeriod = 8.0

//nolint:gocognit,funlen // one loop, one switch.
func runTerminal() int {
	bg, hasBG, err := parseBackground(bgColor)
	if err != nil {
		return log.FErrf("%v", err)
	}

	// Initialize ansipixels for terminal rendering
	ap := ansipixels.NewAnsiPixels(float64(targetFPS))
	if err = ap.Open(); err != nil {
		return log.FErrf("open ansipixels: %v", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.SyncBackgroundColor()
	ap.MouseTrackingOn()
	ap.HideCursor()

	if ap.W <= 0 || ap.H <= 0 {
		return log.FErrf("invalid terminal size: %dx%d", ap.W, ap.H)
	}

	theme := render.TerminalTheme()
	if hasBG {
		theme.Background = bg
	} else {
		theme.Background = color.NRGBA{ap.Background.R, ap.Background.G, ap.Background.B, 255}
	}

	// Surface is 2x terminal height for half-block characters.
	painter := render.NewPainter(ap.W, ap.H*2, theme)
	defer painter.Close()

	dirty := true
	c := newCube(cubeInvalidate(&dirty))
	input := motion.NewInput(targetFPS)
	sweep := motion.NewSweep(sweepPeriod)
	hud := NewHUD()

	ap.OnMouse = func() {
		hud.Sweeping = false
		input.SetTarget(normalize(ap.Mx, ap.W), normalize(ap.My, ap.H))
	}
	ap.OnResize = func() error {
		dirty = true
		log.LogVf("terminal resized to %dx%d", ap.W, ap.H)
		return painter.Resize(ap.W, ap.H*2)
	}

	lastFrame := time.Now()
	err = ap.FPSTicks(func() bool {
		now := time.Now()
		dt := min(now.Sub(lastFrame).Seconds(), 0.1)
		lastFrame = now

		for _, b := range ap.Data {
			switch b {
			case ' ':
				hud.Sweeping = !hud.Sweeping
			case 'r', 'R':
				hud.Sweeping = false
				input.Reset()
				c.SetRotation(0, 0)
			case '?':
				hud.Show = !hud.Show
				dirty = true
			case 'q', 'Q', 27, 3, 4: // Esc, Ctrl-C, Ctrl-D
				return false
			}
		}

		if hud.Sweeping {
			input.SetTarget(sweep.Advance(dt))
		}
		if x, y, moving := input.Update(); moving {
			c.SetRotation(x, y)
		}
		if !dirty {
			return true
		}
		dirty = false

		frame := c.Frame(painter.Width(), painter.Height())
		if err := painter.Draw(frame); err != nil {
			log.Errf("draw frame: %v", err)
			return false
		}
		ap.StartSyncMode()
		ap.ClearScreen()
		if err := ap.ShowScaledImage(painter.Image()); err != nil {
			log.Errf("show image: %v", err)
			return false
		}
		hud.UpdateFPS()
		hud.Draw(ap, c, frame)
		ap.EndSyncMode()
		return true
	})
	if err != nil {
		return log.FErrf("main loop: %v", err)
	}
	return 0
}
