package motion

import "math"

// Sweep drives an Input around a slow ellipse inside [0, 1] x [0, 1] when
// no pointer input is present.
type Sweep struct {
	Period float64 // seconds per revolution
	phase  float64
}

// NewSweep creates a sweep with the given period in seconds.
func NewSweep(period float64) *Sweep {
	return &Sweep{Period: period}
}

// Advance moves the sweep forward by dt seconds and returns the new target.
func (s *Sweep) Advance(dt float64) (x, y float64) {
	if s.Period > 0 {
		s.phase = math.Mod(s.phase+dt/s.Period, 1)
	}
	angle := 2 * math.Pi * s.phase
	return 0.5 + 0.5*math.Cos(angle), 0.5 + 0.5*math.Sin(angle)
}
