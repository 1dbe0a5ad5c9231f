package cmd

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/baronauta/RayTracer-sub001/pkg/hdr"
)

// Convert tone-maps a raw PFM buffer into a display-ready LDR image.
func Convert(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 2 {
		return errors.New("expected input PFM file and output image arguments")
	}

	img, err := hdr.ReadPFMFile(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	img.NormalizeImage(ctx.Float64("alpha"))
	img.ClampImage()

	out := ctx.Args().Get(1)
	if err := img.WriteLdrFile(out, ctx.Float64("gamma")); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)
	return nil
}
