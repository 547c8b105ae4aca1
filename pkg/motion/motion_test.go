package motion

import (
	"math"
	"testing"
)

func TestInputConverges(t *testing.T) {
	in := NewInput(60)
	in.SetTarget(1, 0.5)

	var x, y float64
	moving := true
	for i := 0; i < 600 && moving; i++ {
		x, y, moving = in.Update()
	}
	if moving {
		t.Fatal("input did not settle within 10 seconds of frames")
	}
	if x != 1 || y != 0.5 {
		t.Errorf("settled at (%v, %v), want (1, 0.5)", x, y)
	}
}

func TestInputNoOvershoot(t *testing.T) {
	in := NewInput(60)
	in.SetTarget(1, 1)
	for i := 0; i < 300; i++ {
		x, y, _ := in.Update()
		if x > 1+1e-9 || y > 1+1e-9 {
			t.Fatalf("frame %d overshot to (%v, %v)", i, x, y)
		}
	}
}

func TestInputAtRestDoesNotMove(t *testing.T) {
	in := NewInput(30)
	x, y, moving := in.Update()
	if moving || x != 0 || y != 0 {
		t.Errorf("idle input reported (%v, %v, %v)", x, y, moving)
	}
}

func TestSnapAndReset(t *testing.T) {
	in := NewInput(60)
	in.SetTarget(0.3, 0.7)
	in.Snap()
	if !in.Settled() || in.X.Position != 0.3 || in.Y.Position != 0.7 {
		t.Errorf("Snap left input at (%v, %v)", in.X.Position, in.Y.Position)
	}
	in.Reset()
	if in.X.Position != 0 || in.Y.Target != 0 {
		t.Errorf("Reset left input at %v target %v", in.X.Position, in.Y.Target)
	}
}

func TestSweepStaysInUnitSquare(t *testing.T) {
	s := NewSweep(4)
	for i := 0; i < 500; i++ {
		x, y := s.Advance(1.0 / 60)
		if x < 0 || x > 1 || y < 0 || y > 1 {
			t.Fatalf("step %d left the unit square: (%v, %v)", i, x, y)
		}
	}
}

func TestSweepPeriod(t *testing.T) {
	s := NewSweep(2)
	x0, y0 := s.Advance(0)
	x1, y1 := s.Advance(2)
	if math.Abs(x0-x1) > 1e-9 || math.Abs(y0-y1) > 1e-9 {
		t.Errorf("full period did not return to start: (%v, %v) vs (%v, %v)", x0, y0, x1, y1)
	}
}
