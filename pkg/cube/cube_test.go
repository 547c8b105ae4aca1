package cube

import (
	"math"
	"testing"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestTopology(t *testing.T) {
	c := New()
	edges := c.Edges()
	if len(edges) != NumEdges {
		t.Fatalf("expected %d edges, got %d", NumEdges, len(edges))
	}

	seen := make(map[[2]int]bool)
	for i, e := range edges {
		if e.Start < 0 || e.Start >= NumVertices || e.End < 0 || e.End >= NumVertices {
			t.Fatalf("edge %d references vertex outside the cube: %+v", i, e)
		}
		if e.Start == e.End {
			t.Errorf("edge %d is a loop: %+v", i, e)
		}
		key := [2]int{min(e.Start, e.End), max(e.Start, e.End)}
		if seen[key] {
			t.Errorf("edge %d duplicates %v", i, key)
		}
		seen[key] = true

		// Cube edges join corners that differ in exactly one coordinate.
		a, b := c.Vertex(e.Start).Object, c.Vertex(e.End).Object
		diff := 0
		if a.X != b.X {
			diff++
		}
		if a.Y != b.Y {
			diff++
		}
		if a.Z != b.Z {
			diff++
		}
		if diff != 1 {
			t.Errorf("edge %d joins %v and %v, which are not adjacent corners", i, a, b)
		}
	}

	for i := 0; i < NumVertices; i++ {
		if d := c.Degree(i); d != 3 {
			t.Errorf("vertex %d has degree %d, want 3", i, d)
		}
	}
}

func TestEdgeOrder(t *testing.T) {
	want := [NumEdges]Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // front ring
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // back ring
	}
	if got := New().Edges(); got != want {
		t.Errorf("edges = %v, want %v", got, want)
	}
}

func TestBoundsPresetsByEndpoints(t *testing.T) {
	edges := New().Edges()
	tests := []struct {
		name  string
		index int
		want  Edge
	}{
		{"side left", SideBounds.Left, Edge{0, 4}},
		{"side upper", SideBounds.Upper, Edge{1, 5}},
		{"side right", SideBounds.Right, Edge{2, 6}},
		{"side lower", SideBounds.Lower, Edge{3, 7}},
		{"face left", FaceBounds.Left, Edge{4, 5}},
		{"face upper", FaceBounds.Upper, Edge{5, 6}},
		{"face right", FaceBounds.Right, Edge{6, 7}},
		{"face lower", FaceBounds.Lower, Edge{7, 4}},
	}
	for _, tt := range tests {
		if got := edges[tt.index]; got != tt.want {
			t.Errorf("%s: edge %d = %+v, want %+v", tt.name, tt.index, got, tt.want)
		}
	}
}

func TestObjectCoordinatesAreCorners(t *testing.T) {
	c := New()
	for i := 0; i < NumVertices; i++ {
		p := c.Vertex(i).Object
		for _, v := range []float64{p.X, p.Y, p.Z} {
			if v != -1 && v != 1 {
				t.Errorf("vertex %d has coordinate %v outside {-1, +1}", i, v)
			}
		}
	}
}

func TestObjectCoordinatesSurviveFrames(t *testing.T) {
	c := New()
	before := make([]Vertex, NumVertices)
	for i := range before {
		before[i] = c.Vertex(i)
	}
	c.SetRotation(0.7, 0.3)
	c.Frame(640, 480)
	c.SetRotation(1, 1)
	c.Frame(100, 300)
	for i := range before {
		if c.Vertex(i).Object != before[i].Object {
			t.Errorf("vertex %d object coordinates changed: %v -> %v", i, before[i].Object, c.Vertex(i).Object)
		}
	}
}

func TestSetRotationRange(t *testing.T) {
	c := New()
	for _, in := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		c.SetRotation(in, 1-in)
		x, y := c.Rotation()
		if x < 0 || x > math.Pi/6 || y < 0 || y > math.Pi/6 {
			t.Errorf("SetRotation(%v, %v) gave angles (%v, %v) outside [0, pi/6]", in, 1-in, x, y)
		}
		if !approx(x, math.Pi/6*in, 1e-15) {
			t.Errorf("x angle = %v, want %v", x, math.Pi/6*in)
		}
	}
}

func TestSetRotationDoesNotClamp(t *testing.T) {
	c := New()
	c.SetRotation(2, -1)
	x, y := c.Rotation()
	if !approx(x, math.Pi/3, 1e-15) || !approx(y, -math.Pi/6, 1e-15) {
		t.Errorf("expected extrapolated angles (pi/3, -pi/6), got (%v, %v)", x, y)
	}
}

func TestSetRotationInvalidates(t *testing.T) {
	calls := 0
	c := New(WithInvalidate(func() { calls++ }))
	c.SetRotation(0.5, 0.5)
	c.SetRotation(0.5, 0.5)
	if calls != 2 {
		t.Errorf("expected 2 invalidations, got %d", calls)
	}
	c.Frame(200, 200)
	if calls != 2 {
		t.Errorf("Frame should not invalidate, got %d calls", calls)
	}
}

func TestParseBounds(t *testing.T) {
	tests := []struct {
		name    string
		want    Bounds
		wantErr bool
	}{
		{"", SideBounds, false},
		{"side", SideBounds, false},
		{"face", FaceBounds, false},
		{"diagonal", Bounds{}, true},
	}
	for _, tt := range tests {
		got, err := ParseBounds(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBounds(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBounds(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestBoundsValidate(t *testing.T) {
	tests := []struct {
		b       Bounds
		wantErr bool
	}{
		{SideBounds, false},
		{FaceBounds, false},
		{Bounds{0, 1, 2, 11}, false},
		{Bounds{0, 1, 2, 12}, true},
		{Bounds{-1, 1, 2, 3}, true},
	}
	for _, tt := range tests {
		if err := tt.b.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.b, err, tt.wantErr)
		}
	}
}

func TestWithBoundsPanicsOnBadIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range bounds")
		}
	}()
	WithBounds(Bounds{Left: 0, Right: 1, Lower: 2, Upper: 12})
}
