package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/renderer"
)

// Animate renders the frame sequence described by the scene's motion
// statement. Frames are independent; each is rendered in turn with the
// same parallel row scheduling as a still frame.
func Animate(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}
	if sc.Motion == nil {
		return &core.ConfigurationError{Reason: "scene defines no motion; animation needs one"}
	}

	opts := renderOptions(ctx)
	factory, err := tracerFactory(ctx, sc)
	if err != nil {
		return err
	}

	outDir := ctx.String("out-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	logger.Noticef("rendering %d frames into %s", sc.Motion.NumFrames, outDir)
	for frame := 0; frame < sc.Motion.NumFrames; frame++ {
		camera := sc.Motion.FrameCamera(sc.Camera, frame)

		img, err := renderer.Render(camera, opts, factory)
		if err != nil {
			return err
		}

		path := filepath.Join(outDir, fmt.Sprintf("frame_%03d.png", frame))
		if err := writeImage(img, path, ctx.Float64("alpha"), ctx.Float64("gamma")); err != nil {
			return err
		}
		logger.Infof("wrote %s", path)
	}

	return nil
}
