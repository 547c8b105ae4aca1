package main

import (
	"fmt"
	"image/png"
	"os"

	"fortio.org/log"
	"github.com/spf13/cobra"
	"github.com/taigrr/wirecube/pkg/cube"
	"github.com/taigrr/wirecube/pkg/render"
)

type snapshotOptions struct {
	x, y          float64
	width, height int
	supersample   int
	out           string
}

func snapshotCmd() *cobra.Command {
	var opts snapshotOptions
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame to a PNG file",
		Long:  "Render the cube at a fixed rotation input (x, y in [0,1]) to a PNG file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(opts)
		},
	}
	cmd.Flags().Float64Var(&opts.x, "x", 0.5, "Rotation input around X (0-1)")
	cmd.Flags().Float64Var(&opts.y, "y", 0.5, "Rotation input around Y (0-1)")
	cmd.Flags().IntVar(&opts.width, "width", 800, "Image width")
	cmd.Flags().IntVar(&opts.height, "height", 800, "Image height")
	cmd.Flags().IntVar(&opts.supersample, "supersample", 2, "Render at N times the size and downsample")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "cube.png", "Output PNG path")
	return cmd
}

func runSnapshot(opts snapshotOptions) (err error) {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid image size: %dx%d", opts.width, opts.height)
	}
	if err := checkInput(opts.x, opts.y); err != nil {
		return err
	}
	if opts.supersample < 1 {
		return fmt.Errorf("supersample must be at least 1, got %d", opts.supersample)
	}
	theme := render.DefaultTheme()
	if bg, ok, err := parseBackground(bgColor); err != nil {
		return err
	} else if ok {
		theme.Background = bg
	}

	k := opts.supersample
	w, h := opts.width*k, opts.height*k
	painter := render.NewPainter(w, h, theme.Scaled(float64(k)))
	defer painter.Close()

	frame := cube.FrameAt(opts.x, opts.y, w, h, silhouetteBounds())
	if err := painter.Draw(frame); err != nil {
		return err
	}
	log.Infof("Rendered %d front and %d hidden edges at %dx%d", len(frame.Front), len(frame.Hidden), w, h)

	if k == 1 {
		return painter.SavePNG(opts.out)
	}

	out, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", opts.out, cerr)
		}
	}()
	if err := png.Encode(out, render.Downsample(painter.Image(), opts.width, opts.height)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
