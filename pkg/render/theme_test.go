package render

import (
	"image"
	"image/color"
	"testing"
)

func TestThemeScaled(t *testing.T) {
	base := DefaultTheme()
	big := base.Scaled(2)
	if big.Front.Width != 2*base.Front.Width || big.Hidden.Width != 2*base.Hidden.Width {
		t.Errorf("widths not scaled: %v %v", big.Front.Width, big.Hidden.Width)
	}
	if big.Hidden.Dash[0] != 10 || big.Hidden.Dash[1] != 20 {
		t.Errorf("dash not scaled: %v", big.Hidden.Dash)
	}
	// The unscaled theme keeps its own dash slice.
	if base.Hidden.Dash[0] != 5 {
		t.Errorf("Scaled mutated the receiver: %v", base.Hidden.Dash)
	}
	if big.Front.Dash != nil {
		t.Errorf("solid style gained a dash: %v", big.Front.Dash)
	}
}

func TestStrokeDash(t *testing.T) {
	solid := DefaultTheme().Front.stroke()
	if solid.Dash != nil {
		t.Error("front stroke should be solid")
	}
	dashed := DefaultTheme().Hidden.stroke()
	if dashed.Dash == nil || !dashed.Dash.IsDashed() {
		t.Error("hidden stroke should be dashed")
	}
}

func TestDownsample(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			src.Set(x, y, color.RGBA{200, 100, 50, 255})
		}
	}
	dst := Downsample(src, 10, 5)
	if dst.Bounds().Dx() != 10 || dst.Bounds().Dy() != 5 {
		t.Fatalf("Image dimensions wrong: got %dx%d", dst.Bounds().Dx(), dst.Bounds().Dy())
	}
	r, g, b, _ := dst.At(5, 2).RGBA()
	near := func(got uint32, want int) bool {
		d := int(got>>8) - want
		return d >= -1 && d <= 1
	}
	if !near(r, 200) || !near(g, 100) || !near(b, 50) {
		t.Errorf("uniform color not preserved: %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestToRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if ToRGBA(rgba) != rgba {
		t.Error("expected *image.RGBA to pass through")
	}
	gray := image.NewGray(image.Rect(0, 0, 3, 1))
	gray.SetGray(1, 0, color.Gray{Y: 255})
	out := ToRGBA(gray)
	if r, _, _, _ := out.At(1, 0).RGBA(); r>>8 != 255 {
		t.Errorf("gray pixel lost in conversion: %d", r>>8)
	}
}
