package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/spf13/cobra"
	"github.com/taigrr/wirecube/pkg/export"
	"github.com/taigrr/wirecube/pkg/render"
)

func exportCmd() *cobra.Command {
	var (
		x, y float64
		size int
		out  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the rotated cube as glTF (.glb) or vector PDF (.pdf)",
		Long: `Export the rotated cube. The format follows the output extension.

  .glb  front and hidden edges as two LINES primitives with their own materials
  .pdf  one size x size page with both edge sets stroked as vectors

Edges are classified as they would be on a size x size viewport.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(x, y, size, out)
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0.5, "Rotation input around X (0-1)")
	cmd.Flags().Float64Var(&y, "y", 0.5, "Rotation input around Y (0-1)")
	cmd.Flags().IntVar(&size, "size", 800, "Viewport size used for classification")
	cmd.Flags().StringVarP(&out, "out", "o", "cube.glb", "Output path (.glb or .pdf)")
	return cmd
}

func runExport(x, y float64, size int, out string) error {
	if size <= 0 {
		return fmt.Errorf("invalid viewport size: %d", size)
	}
	if err := checkInput(x, y); err != nil {
		return err
	}
	theme := render.DefaultTheme()
	if bg, ok, err := parseBackground(bgColor); err != nil {
		return err
	} else if ok {
		theme.Background = bg
	}

	c := newCube()
	c.SetRotation(x, y)
	frame := c.Frame(size, size)

	var err error
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".glb":
		err = export.SaveGLB(out, c, frame, theme)
	case ".pdf":
		err = export.SavePDF(out, frame, theme)
	default:
		return fmt.Errorf("unsupported export format %q (want .glb or .pdf)", ext)
	}
	if err != nil {
		return err
	}
	log.Infof("Wrote %s (%d front, %d hidden edges)", out, len(frame.Front), len(frame.Hidden))
	return nil
}
