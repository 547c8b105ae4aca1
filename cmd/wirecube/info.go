package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/taigrr/wirecube/pkg/cube"
)

func infoCmd() *cobra.Command {
	var (
		x, y float64
		size int
	)
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print projected vertices and edge classification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("invalid viewport size: %d", size)
			}
			if err := checkInput(x, y); err != nil {
				return err
			}
			c := newCube()
			c.SetRotation(x, y)
			printInfo(os.Stdout, c, c.Frame(size, size))
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0.5, "Rotation input around X (0-1)")
	cmd.Flags().Float64Var(&y, "y", 0.5, "Rotation input around Y (0-1)")
	cmd.Flags().IntVar(&size, "size", 800, "Viewport size (pixels, square)")
	return cmd
}

func printInfo(w io.Writer, c *cube.Cube, f cube.Frame) {
	xr, yr := c.Rotation()
	b := c.Bounds()
	fmt.Fprintf(w, "Rotation:   x %.4f rad, y %.4f rad\n", xr, yr)
	fmt.Fprintf(w, "Viewport:   %dx%d (scale %d)\n", f.Width, f.Height, cube.ViewportScale(f.Width, f.Height))
	fmt.Fprintf(w, "Bounds:     left %d, right %d, lower %d, upper %d\n", b.Left, b.Right, b.Lower, b.Upper)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Vertex  Object         Projected             Depth    Hidden")
	for i := 0; i < cube.NumVertices; i++ {
		v := c.Vertex(i)
		fmt.Fprintf(w, "%-6d  (%2.0f,%2.0f,%2.0f)     (%8.2f, %8.2f)  %7.4f  %v\n",
			i, v.Object.X, v.Object.Y, v.Object.Z, v.Projected.X, v.Projected.Y, v.Projected.Z, v.Hidden)
	}
	fmt.Fprintln(w)

	edges := c.Edges()
	set := make(map[int]string, cube.NumEdges)
	for _, s := range f.Front {
		set[s.Edge] = "front"
	}
	for _, s := range f.Hidden {
		set[s.Edge] = "hidden"
	}
	fmt.Fprintln(w, "Edge  Vertices  Set")
	for i, e := range edges {
		fmt.Fprintf(w, "%-4d  %d-%d       %s\n", i, e.Start, e.End, set[i])
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Front:      %d edges\n", len(f.Front))
	fmt.Fprintf(w, "Hidden:     %d edges\n", len(f.Hidden))
}
