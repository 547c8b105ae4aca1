// wirecube - Rotating Wireframe Cube
// Draws a cube whose tilt follows the pointer, with edges behind the cube's
// own body drawn dashed.
//
// Controls (terminal and window):
//
//	Mouse       - Tilt the cube (horizontal and vertical position)
//	Space       - Toggle automatic sweep
//	R           - Reset to rest
//	?           - Toggle HUD overlay (terminal)
//	Esc/Q       - Quit
package main

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/wirecube/pkg/cube"
	"github.com/taigrr/wirecube/pkg/math3d"
)

var (
	targetFPS  int
	silhouette string
	bgColor    string
	verbose    bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "wirecube",
		Short: "Rotating wireframe cube",
		Long: `wirecube - Rotating Wireframe Cube

Draws a wireframe cube in your terminal. Its tilt follows the mouse and
edges hidden behind the cube are drawn dashed.

Controls:
  Mouse       - Tilt the cube
  Space       - Toggle automatic sweep
  R           - Reset to rest
  ?           - Toggle HUD overlay
  Esc/Q       - Quit`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLogLevel(log.Verbose)
			}
			_, err := cube.ParseBounds(silhouette)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := runTerminal(); code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}

	cmd.PersistentFlags().IntVar(&targetFPS, "fps", 60, "Target FPS")
	cmd.PersistentFlags().StringVar(&silhouette, "silhouette", "side", "Occlusion bounds: side (connecting edges) or face (back face)")
	cmd.PersistentFlags().StringVar(&bgColor, "bg", "", "Background color (R,G,B)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	cmd.AddCommand(windowCmd(), snapshotCmd(), exportCmd(), infoCmd())

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

// silhouetteBounds returns the bounds named by --silhouette.
func silhouetteBounds() cube.Bounds {
	b, err := cube.ParseBounds(silhouette)
	if err != nil {
		// Already validated in PersistentPreRunE.
		return cube.SideBounds
	}
	return b
}

// newCube builds the cube for the selected silhouette.
func newCube(opts ...cube.Option) *cube.Cube {
	return cube.New(append([]cube.Option{cube.WithBounds(silhouetteBounds())}, opts...)...)
}

// checkInput rejects rotation inputs that are NaN or infinite. Values outside
// [0, 1] are allowed and extrapolate the swing.
func checkInput(x, y float64) error {
	if !math3d.V3(x, y, 0).IsFinite() {
		return fmt.Errorf("rotation input (%v, %v) is not finite", x, y)
	}
	return nil
}

// parseBackground parses an "R,G,B" triple. An empty string yields ok=false.
func parseBackground(s string) (c color.NRGBA, ok bool, err error) {
	if s == "" {
		return c, false, nil
	}
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return c, false, fmt.Errorf("parse background %q: %w", s, err)
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return c, false, fmt.Errorf("parse background %q: component %d out of range", s, v)
		}
	}
	return color.NRGBA{uint8(r), uint8(g), uint8(b), 255}, true, nil
}

// normalize maps a pointer position in [0, extent) onto [0, 1].
// The cube accepts any value; clamping here keeps the swing at 30 degrees.
func normalize(pos, extent int) float64 {
	if extent <= 1 {
		return 0
	}
	v := float64(pos) / float64(extent-1)
	return min(1, max(0, v))
}
