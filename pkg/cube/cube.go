// Package cube holds the geometry core of the wireframe cube: a fixed
// 8-vertex, 12-edge topology, a rotate-and-project pass, and the analytic
// front/hidden edge classifier that feeds the two stroke paths.
//
// A Cube is not safe for concurrent use. Hosts call SetRotation and Frame
// from the same loop goroutine.
package cube

import (
	"fmt"
	"math"

	"github.com/taigrr/wirecube/pkg/math3d"
)

const (
	// NumVertices is the number of cube corners.
	NumVertices = 8
	// NumEdges is the number of cube edges.
	NumEdges = 12
	// FrontQuad is the number of leading vertices tested for occlusion.
	FrontQuad = 4

	// AngleRange is the rotation reached at an input of 1 (30 degrees).
	AngleRange = math.Pi / 6
)

// Vertex is one cube corner. Object is fixed at construction; Projected and
// Hidden are overwritten on every frame.
type Vertex struct {
	Object    math3d.Vec3 // corner in object space, components in {-1, +1}
	Projected math3d.Vec3 // screen X/Y after perspective divide, Z is depth before the divide
	Hidden    bool        // set by ClassifyHidden for vertices 0..3 only
}

// Edge connects two vertices by index.
type Edge struct {
	Start, End int
}

// Bounds names the four edges whose screen-space lines bound the occlusion
// test: a front-quad vertex is hidden when it lies between Left and Right
// horizontally and between Lower and Upper vertically.
type Bounds struct {
	Left, Right, Lower, Upper int
}

var (
	// SideBounds uses the four connecting edges (v0-v4, v2-v6, v3-v7, v1-v5).
	SideBounds = Bounds{Left: 4, Right: 6, Lower: 7, Upper: 5}
	// FaceBounds uses the back ring (v4-v5, v6-v7, v7-v4, v5-v6), hiding a
	// front-quad vertex that falls inside the projected back face.
	FaceBounds = Bounds{Left: 8, Right: 10, Lower: 11, Upper: 9}
)

// ParseBounds maps a silhouette name ("side" or "face") to its Bounds.
func ParseBounds(name string) (Bounds, error) {
	switch name {
	case "", "side":
		return SideBounds, nil
	case "face":
		return FaceBounds, nil
	default:
		return Bounds{}, fmt.Errorf("unknown silhouette %q (use side or face)", name)
	}
}

// Validate reports an error if any bound is not an edge index.
func (b Bounds) Validate() error {
	for _, i := range [...]int{b.Left, b.Right, b.Lower, b.Upper} {
		if i < 0 || i >= NumEdges {
			return fmt.Errorf("bounds %+v: edge %d out of range [0,%d)", b, i, NumEdges)
		}
	}
	return nil
}

// corners lists the object-space vertices. 0..3 sit at z=+1, 4..7 at z=-1,
// and vertex i+4 is directly behind vertex i.
var corners = [NumVertices]math3d.Vec3{
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: -1, Z: -1},
}

// topology is the edge list. Indices 4..11 are load-bearing for the bounds
// presets, and the order is the segment order of BuildPaths.
var topology = [NumEdges]Edge{
	// Front ring
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 0},
	// Connecting edges
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
	// Back ring
	{4, 5},
	{5, 6},
	{6, 7},
	{7, 4},
}

// Cube is the wireframe cube with its current rotation.
type Cube struct {
	vertices   [NumVertices]Vertex
	edges      [NumEdges]Edge
	bounds     Bounds
	xRotation  float64
	yRotation  float64
	invalidate func()
}

// Option configures a Cube at construction.
type Option func(*Cube)

// WithInvalidate registers the callback raised whenever the rotation changes,
// so the host can schedule a redraw.
func WithInvalidate(fn func()) Option {
	return func(c *Cube) {
		c.invalidate = fn
	}
}

// WithBounds selects the silhouette edges used by ClassifyHidden.
// b must pass Validate; ParseBounds and the presets always do.
func WithBounds(b Bounds) Option {
	if err := b.Validate(); err != nil {
		panic("cube: " + err.Error())
	}
	return func(c *Cube) {
		c.bounds = b
	}
}

// New creates a cube at rest (zero rotation) with SideBounds.
func New(opts ...Option) *Cube {
	c := &Cube{
		edges:  topology,
		bounds: SideBounds,
	}
	for i, p := range corners {
		c.vertices[i].Object = p
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetRotation maps normalized input to rotation angles: each axis turns by
// AngleRange times its input. Inputs are not clamped; values outside [0, 1]
// extrapolate past the intended swing. Projection is deferred to Frame.
func (c *Cube) SetRotation(x, y float64) {
	c.xRotation = AngleRange * x
	c.yRotation = AngleRange * y
	if c.invalidate != nil {
		c.invalidate()
	}
}

// Rotation returns the current rotation angles in radians.
func (c *Cube) Rotation() (x, y float64) {
	return c.xRotation, c.yRotation
}

// Bounds returns the silhouette edges in use.
func (c *Cube) Bounds() Bounds {
	return c.bounds
}

// Vertex returns a copy of vertex i.
func (c *Cube) Vertex(i int) Vertex {
	return c.vertices[i]
}

// Edges returns the edge list.
func (c *Cube) Edges() [NumEdges]Edge {
	return c.edges
}

// Degree returns how many edges touch vertex i.
func (c *Cube) Degree(i int) int {
	n := 0
	for _, e := range c.edges {
		if e.Start == i || e.End == i {
			n++
		}
	}
	return n
}
