package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/hdr"
	"github.com/baronauta/RayTracer-sub001/pkg/integrator"
	"github.com/baronauta/RayTracer-sub001/pkg/renderer"
	"github.com/baronauta/RayTracer-sub001/pkg/scene"
)

// RenderFrame renders a still frame from a scene file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	opts := renderOptions(ctx)
	factory, err := tracerFactory(ctx, sc)
	if err != nil {
		return err
	}

	logger.Noticef("rendering %dx%d frame with the %q algorithm",
		opts.Width, opts.Height, ctx.String("algorithm"))

	img, err := renderer.Render(sc.Camera, opts, factory)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err := writeImage(img, out, ctx.Float64("alpha"), ctx.Float64("gamma")); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)
	return nil
}

// loadScene parses the scene file, applying CLI variable overrides
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	overrides := make(map[string]float64)
	if ctx.IsSet("angle-deg") {
		overrides["angle"] = ctx.Float64("angle-deg")
	}
	for _, decl := range ctx.StringSlice("declare-float") {
		name, value, err := parseFloatDeclaration(decl)
		if err != nil {
			return nil, err
		}
		overrides[name] = value
	}

	return scene.ParseSceneFile(ctx.Args().First(), overrides)
}

// parseFloatDeclaration splits a name=value CLI override
func parseFloatDeclaration(decl string) (string, float64, error) {
	name, valueStr, found := strings.Cut(decl, "=")
	if !found || name == "" {
		return "", 0, fmt.Errorf("malformed float declaration %q, want name=value", decl)
	}
	var value float64
	if _, err := fmt.Sscanf(valueStr, "%g", &value); err != nil {
		return "", 0, fmt.Errorf("malformed float declaration %q: %v", decl, err)
	}
	return name, value, nil
}

func renderOptions(ctx *cli.Context) renderer.Options {
	return renderer.Options{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		Seed:            uint64(ctx.Int("seed")),
		NumWorkers:      ctx.Int("workers"),
	}
}

// tracerFactory selects the rendering algorithm and wires it to a
// per-worker generator
func tracerFactory(ctx *cli.Context, sc *scene.Scene) (renderer.TracerFactory, error) {
	switch ctx.String("algorithm") {
	case "onoff":
		return func(pcg *core.PCG) func(core.Ray) core.Color {
			return integrator.NewOnOffIntegrator(sc.World).RayColor
		}, nil

	case "flat":
		return func(pcg *core.PCG) func(core.Ray) core.Color {
			return integrator.NewFlatIntegrator(sc.World).RayColor
		}, nil

	case "path":
		numRays := ctx.Int("num-rays")
		maxDepth := ctx.Int("max-depth")
		rouletteLimit := ctx.Int("rr-depth")
		if rouletteLimit == 0 || rouletteLimit >= maxDepth {
			logger.Notice("disabling Russian roulette for path elimination")
			rouletteLimit = maxDepth + 1
		}
		return func(pcg *core.PCG) func(core.Ray) core.Color {
			return integrator.NewPathTracer(sc.World, pcg, numRays, maxDepth, rouletteLimit).RayColor
		}, nil
	}

	return nil, fmt.Errorf("unknown algorithm %q, want onoff, flat or path", ctx.String("algorithm"))
}

// writeImage tone-maps and saves the frame; a .pfm extension keeps the
// raw HDR values instead
func writeImage(img *hdr.HdrImage, path string, alpha, gamma float64) error {
	if strings.ToLower(filepath.Ext(path)) == ".pfm" {
		return img.WritePFMFile(path)
	}

	img.NormalizeImage(alpha)
	img.ClampImage()
	return img.WriteLdrFile(path, gamma)
}
