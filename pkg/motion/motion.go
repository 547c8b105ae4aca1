// Package motion smooths raw rotation input with critically damped springs,
// so a jumpy pointer turns into a steady swing of the cube.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// settleEps is how close position and velocity must be to rest before an
// axis reports itself settled.
const settleEps = 1e-4

// Axis tracks one input axis with a spring pulling Position toward Target.
type Axis struct {
	Position float64
	Velocity float64
	Target   float64
	spring   harmonica.Spring
}

// NewAxis creates an axis for the given frame rate.
func NewAxis(fps int, frequency, damping float64) Axis {
	return Axis{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances the spring by one frame.
func (a *Axis) Update() {
	a.Position, a.Velocity = a.spring.Update(a.Position, a.Velocity, a.Target)
}

// Settled reports whether the axis is at rest on its target.
func (a *Axis) Settled() bool {
	return math.Abs(a.Position-a.Target) < settleEps && math.Abs(a.Velocity) < settleEps
}

// Snap jumps to the target and stops.
func (a *Axis) Snap() {
	a.Position = a.Target
	a.Velocity = 0
}

// Input is a pair of smoothed axes producing the x, y values fed to the cube.
type Input struct {
	X, Y Axis
	fps  int
}

// Default spring tuning: frequency 6 settles in well under a second,
// damping 1 is critical so the cube never overshoots the pointer.
const (
	DefaultFrequency = 6.0
	DefaultDamping   = 1.0
)

// NewInput creates a smoothed input at rest on (0, 0).
func NewInput(fps int) *Input {
	return &Input{
		X:   NewAxis(fps, DefaultFrequency, DefaultDamping),
		Y:   NewAxis(fps, DefaultFrequency, DefaultDamping),
		fps: fps,
	}
}

// SetTarget moves the point both axes are pulled toward.
func (in *Input) SetTarget(x, y float64) {
	in.X.Target = x
	in.Y.Target = y
}

// Update advances both axes one frame and returns the smoothed position.
// moving is false once both axes have settled, letting hosts skip redraws.
func (in *Input) Update() (x, y float64, moving bool) {
	if in.Settled() {
		return in.X.Position, in.Y.Position, false
	}
	in.X.Update()
	in.Y.Update()
	if in.Settled() {
		in.X.Snap()
		in.Y.Snap()
	}
	return in.X.Position, in.Y.Position, true
}

// Settled reports whether both axes are at rest.
func (in *Input) Settled() bool {
	return in.X.Settled() && in.Y.Settled()
}

// Snap moves both axes straight to their targets.
func (in *Input) Snap() {
	in.X.Snap()
	in.Y.Snap()
}

// Reset returns both axes to rest at (0, 0).
func (in *Input) Reset() {
	in.X = NewAxis(in.fps, DefaultFrequency, DefaultDamping)
	in.Y = NewAxis(in.fps, DefaultFrequency, DefaultDamping)
}
