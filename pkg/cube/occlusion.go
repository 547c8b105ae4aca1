package cube

import (
	"math"

	"fortio.org/log"
	"github.com/taigrr/wirecube/pkg/math3d"
)

// Epsilon is the smallest coordinate difference along which an edge can be
// interpolated. Flatter edges are treated as imposing no bound.
const Epsilon = 1e-9

// interceptX returns the X coordinate at which the line through a and b
// crosses height y. ok is false when the line is horizontal.
func interceptX(a, b math3d.Vec2, y float64) (x float64, ok bool) {
	den := a.Y - b.Y
	if math.Abs(den) < Epsilon {
		return 0, false
	}
	return (a.X*y - b.X*y + a.Y*b.X - a.X*b.Y) / den, true
}

// interceptY returns the Y coordinate at which the line through a and b
// crosses abscissa x. ok is false when the line is vertical.
func interceptY(a, b math3d.Vec2, x float64) (y float64, ok bool) {
	den := a.X - b.X
	if math.Abs(den) < Epsilon {
		return 0, false
	}
	return (a.Y*x - b.Y*x + a.X*b.Y - a.Y*b.X) / den, true
}

// PosX returns where the projected line of edge i crosses height y.
func (c *Cube) PosX(i int, y float64) (float64, bool) {
	e := c.edges[i]
	return interceptX(c.vertices[e.Start].Projected.XY(), c.vertices[e.End].Projected.XY(), y)
}

// PosY returns where the projected line of edge i crosses abscissa x.
func (c *Cube) PosY(i int, x float64) (float64, bool) {
	e := c.edges[i]
	return interceptY(c.vertices[e.Start].Projected.XY(), c.vertices[e.End].Projected.XY(), x)
}

// touches reports whether edge passes through vertex i.
func (c *Cube) touches(edge, i int) bool {
	e := c.edges[edge]
	return e.Start == i || e.End == i
}

// boundX returns the x bound that edge sets for vertex i. An edge ending at
// i passes through the vertex itself, so it bounds nothing.
func (c *Cube) boundX(edge, i int, unbounded float64) float64 {
	if c.touches(edge, i) {
		return unbounded
	}
	x, ok := c.PosX(edge, c.vertices[i].Projected.Y)
	if !ok {
		log.LogVf("cube: edge %d is horizontal on screen, x bound dropped", edge)
		return unbounded
	}
	return x
}

func (c *Cube) boundY(edge, i int, unbounded float64) float64 {
	if c.touches(edge, i) {
		return unbounded
	}
	y, ok := c.PosY(edge, c.vertices[i].Projected.X)
	if !ok {
		log.LogVf("cube: edge %d is vertical on screen, y bound dropped", edge)
		return unbounded
	}
	return y
}

// ClassifyHidden marks each front-quad vertex hidden when its projection
// falls inside the quadrilateral spanned by the silhouette edges, boundary
// included. A bound edge ending at the tested vertex is skipped: the vertex
// lies on it by construction. Vertices past the front quad are always left
// visible. Call after Project.
func (c *Cube) ClassifyHidden() {
	for i := range c.vertices {
		c.vertices[i].Hidden = false
	}
	inf := math.Inf(1)
	b := c.bounds
	for i := 0; i < FrontQuad; i++ {
		p := c.vertices[i].Projected
		left := c.boundX(b.Left, i, -inf)
		right := c.boundX(b.Right, i, inf)
		lower := c.boundY(b.Lower, i, -inf)
		upper := c.boundY(b.Upper, i, inf)
		c.vertices[i].Hidden = p.X >= left && p.X <= right && p.Y >= lower && p.Y <= upper
	}
}
