package cube

import (
	"github.com/taigrr/wirecube/pkg/math3d"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Segment is one projected edge: a moveTo From followed by a lineTo To,
// relative to the viewport center.
type Segment struct {
	Edge     int
	From, To math3d.Vec2
}

// Frame is the output of one pass of the pipeline: every edge exactly once,
// either in Front or in Hidden, in edge order.
type Frame struct {
	Width, Height int
	Origin        math3d.Vec2 // viewport center, added to segments in surface space
	Front         []Segment
	Hidden        []Segment
}

// BuildPaths splits the edges by the current hidden flags. An edge touching a
// hidden vertex is hidden. Call after ClassifyHidden.
func (c *Cube) BuildPaths() Frame {
	f := Frame{
		Front:  make([]Segment, 0, NumEdges),
		Hidden: make([]Segment, 0, NumEdges),
	}
	for i, e := range c.edges {
		start, end := c.vertices[e.Start], c.vertices[e.End]
		s := Segment{Edge: i, From: start.Projected.XY(), To: end.Projected.XY()}
		if start.Hidden || end.Hidden {
			f.Hidden = append(f.Hidden, s)
		} else {
			f.Front = append(f.Front, s)
		}
	}
	return f
}

// Frame runs project, classify and build for a surface of the given size.
func (c *Cube) Frame(width, height int) Frame {
	c.Project(ViewportScale(width, height))
	c.ClassifyHidden()
	f := c.BuildPaths()
	f.Width, f.Height = width, height
	f.Origin = math3d.V2(float64(width)/2, float64(height)/2)
	return f
}

// FrameAt is the stateless form of Frame: a fresh cube with bounds b at
// rotation input (x, y), classified for a width x height surface.
func FrameAt(x, y float64, width, height int, b Bounds) Frame {
	c := New(WithBounds(b))
	c.SetRotation(x, y)
	return c.Frame(width, height)
}

// FrontPath returns the front segments as a path in surface coordinates.
func (f Frame) FrontPath() *path.Data {
	return segmentPath(f.Front, f.Origin)
}

// HiddenPath returns the hidden segments as a path in surface coordinates.
func (f Frame) HiddenPath() *path.Data {
	return segmentPath(f.Hidden, f.Origin)
}

func segmentPath(segs []Segment, origin math3d.Vec2) *path.Data {
	p := &path.Data{}
	for _, s := range segs {
		a, b := s.From.Add(origin), s.To.Add(origin)
		p = p.MoveTo(vec.Vec2{X: a.X, Y: a.Y}).LineTo(vec.Vec2{X: b.X, Y: b.Y})
	}
	return p
}
