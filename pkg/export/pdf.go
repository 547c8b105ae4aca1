package export

import (
	"fmt"
	"image/color"

	"github.com/taigrr/wirecube/pkg/cube"
	"github.com/taigrr/wirecube/pkg/render"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// SavePDF writes f as a single-page vector PDF, one point per pixel.
// PDF has no per-stroke alpha here, so each style is flattened onto the
// background and written as a gray level.
func SavePDF(filename string, f cube.Frame, theme render.Theme) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid page size: %dx%d", f.Width, f.Height)
	}
	w, h := float64(f.Width), float64(f.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}

	page.SetFillColor(pdfcolor.DeviceGray(luma(theme.Background)))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; frames are y-down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	strokePDF(page, f.HiddenPath(), theme.Hidden, theme.Background)
	strokePDF(page, f.FrontPath(), theme.Front, theme.Background)

	if err := page.Close(); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func strokePDF(page *document.Page, p *path.Data, s render.Style, bg color.NRGBA) {
	if len(p.Cmds) == 0 {
		return
	}
	page.PushGraphicsState()
	defer page.PopGraphicsState()

	page.SetStrokeColor(pdfcolor.DeviceGray(flatten(s.Color, bg)))
	page.SetLineWidth(s.Width)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	if len(s.Dash) > 0 {
		page.SetLineDash(s.Dash, 0)
	}

	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[i].X, p.Coords[i].Y)
			i++
		case path.CmdLineTo:
			page.LineTo(p.Coords[i].X, p.Coords[i].Y)
			i++
		}
	}
	page.Stroke()
}

// luma is the Rec. 601 gray level of c in [0,1], ignoring alpha.
func luma(c color.NRGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// flatten composites c over an opaque bg and returns the gray level.
func flatten(c, bg color.NRGBA) float64 {
	a := float64(c.A) / 255
	return a*luma(c) + (1-a)*luma(bg)
}
