// Package render paints cube frames onto a raster surface: hidden edges
// first in a light dashed stroke, then front edges solid on top.
package render

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Style describes how one set of segments is stroked.
type Style struct {
	Color color.NRGBA
	Width float64
	Dash  []float64 // alternating on/off lengths, nil for solid
}

// Theme pairs a background with the front and hidden edge styles.
type Theme struct {
	Background color.NRGBA
	Front      Style
	Hidden     Style
}

// DefaultTheme matches the classic live-wallpaper look: translucent white,
// round caps, a 5/10 dash on hidden edges.
func DefaultTheme() Theme {
	return Theme{
		Background: color.NRGBA{0, 0, 0, 255},
		Front: Style{
			Color: color.NRGBA{255, 255, 255, 0xb3},
			Width: 3,
		},
		Hidden: Style{
			Color: color.NRGBA{255, 255, 255, 0x65},
			Width: 2,
			Dash:  []float64{5, 10},
		},
	}
}

// TerminalTheme is DefaultTheme scaled for half-block terminal pixels.
func TerminalTheme() Theme {
	t := DefaultTheme()
	t.Front.Width = 1
	t.Hidden.Width = 1
	t.Hidden.Dash = []float64{2, 3}
	return t
}

// Scaled returns a copy with widths and dash lengths multiplied by k.
// Used when rendering above output resolution before downsampling.
func (t Theme) Scaled(k float64) Theme {
	t.Front = t.Front.scaled(k)
	t.Hidden = t.Hidden.scaled(k)
	return t
}

func (s Style) scaled(k float64) Style {
	s.Width *= k
	if s.Dash != nil {
		dash := make([]float64, len(s.Dash))
		for i, d := range s.Dash {
			dash[i] = d * k
		}
		s.Dash = dash
	}
	return s
}

func (s Style) stroke() gg.Stroke {
	st := gg.DefaultStroke().
		WithWidth(s.Width).
		WithCap(gg.LineCapRound).
		WithJoin(gg.LineJoinRound)
	if len(s.Dash) > 0 {
		st = st.WithDashPattern(s.Dash...)
	}
	return st
}
