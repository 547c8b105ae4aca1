package main

import (
	"math"
	"time"

	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"
	"github.com/taigrr/wirecube/pkg/cube"
)

// HUD renders an overlay with frame rate and classification counts.
type HUD struct {
	Show      bool
	Sweeping  bool
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD.
func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per drawn frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Draw writes the overlay for frame f of cube c.
func (h *HUD) Draw(ap *ansipixels.AnsiPixels, c *cube.Cube, f cube.Frame) {
	if !h.Show {
		return
	}
	xr, yr := c.Rotation()

	// Top left: FPS
	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"%.0f FPS "+tcolor.Reset, h.fps)

	// Top middle: angles
	ap.WriteCentered(0, "x %5.1f°  y %5.1f°", xr*180/math.Pi, yr*180/math.Pi)

	// Top right: edge split
	ap.WriteRight(0, tcolor.Cyan.Foreground()+"%d front / %d hidden"+tcolor.Reset, len(f.Front), len(f.Hidden))

	sweep := "[ ]"
	if h.Sweeping {
		sweep = "[✓]"
	}
	ap.WriteAt(0, ap.H-1, "%s Sweep (space)", sweep)
	ap.WriteRight(ap.H-1, "%sR: reset  Esc: quit%s", tcolor.Yellow.Foreground(), tcolor.Reset)
}
