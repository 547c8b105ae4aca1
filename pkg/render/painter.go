package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/taigrr/wirecube/pkg/cube"
	"github.com/taigrr/wirecube/pkg/math3d"
)

// Painter strokes cube frames into an in-memory image.
type Painter struct {
	dc    *gg.Context
	theme Theme
}

// NewPainter creates a painter with a width x height surface.
func NewPainter(width, height int, theme Theme) *Painter {
	return &Painter{
		dc:    gg.NewContext(width, height),
		theme: theme,
	}
}

// Width returns the surface width in pixels.
func (p *Painter) Width() int { return p.dc.Width() }

// Height returns the surface height in pixels.
func (p *Painter) Height() int { return p.dc.Height() }

// Resize changes the surface size, discarding its contents.
func (p *Painter) Resize(width, height int) error {
	if err := p.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resize painter: %w", err)
	}
	return nil
}

// Draw clears the surface and paints f, hidden segments below front ones.
func (p *Painter) Draw(f cube.Frame) error {
	p.dc.ClearWithColor(gg.FromColor(p.theme.Background))
	if err := p.stroke(f.Hidden, f.Origin, p.theme.Hidden); err != nil {
		return fmt.Errorf("stroke hidden edges: %w", err)
	}
	if err := p.stroke(f.Front, f.Origin, p.theme.Front); err != nil {
		return fmt.Errorf("stroke front edges: %w", err)
	}
	return nil
}

func (p *Painter) stroke(segs []cube.Segment, origin math3d.Vec2, s Style) error {
	if len(segs) == 0 {
		return nil
	}
	p.dc.Push()
	defer p.dc.Pop()
	p.dc.Translate(origin.X, origin.Y)
	p.dc.SetStroke(s.stroke())
	p.dc.SetColor(s.Color)
	for _, seg := range segs {
		p.dc.MoveTo(seg.From.X, seg.From.Y)
		p.dc.LineTo(seg.To.X, seg.To.Y)
	}
	return p.dc.Stroke()
}

// Image returns the current surface contents.
func (p *Painter) Image() image.Image {
	return p.dc.Image()
}

// SavePNG writes the surface to a PNG file.
func (p *Painter) SavePNG(path string) error {
	if err := p.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the surface as PNG to w.
func (p *Painter) EncodePNG(w io.Writer) error {
	return p.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (p *Painter) Close() error {
	return p.dc.Close()
}
