package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/baronauta/RayTracer-sub001/cmd"
	"github.com/baronauta/RayTracer-sub001/pkg/log"
)

var logger = log.New("raytracer")

// renderFlags are shared by the render and animate commands
var renderFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Value: 640,
		Usage: "frame width in pixels",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 480,
		Usage: "frame height in pixels",
	},
	cli.StringFlag{
		Name:  "algorithm, a",
		Value: "path",
		Usage: "rendering algorithm: onoff, flat or path",
	},
	cli.IntFlag{
		Name:  "spp",
		Value: 4,
		Usage: "samples per pixel; must be a perfect square",
	},
	cli.IntFlag{
		Name:  "num-rays",
		Value: 10,
		Usage: "rays scattered per diffuse bounce (path tracer)",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Value: 5,
		Usage: "maximum ray recursion depth (path tracer)",
	},
	cli.IntFlag{
		Name:  "rr-depth",
		Value: 3,
		Usage: "depth where Russian roulette starts; 0 disables it",
	},
	cli.IntFlag{
		Name:  "seed",
		Value: 42,
		Usage: "random generator seed",
	},
	cli.IntFlag{
		Name:  "workers",
		Value: 0,
		Usage: "parallel workers; 0 uses all CPUs",
	},
	cli.Float64Flag{
		Name:  "angle-deg",
		Usage: "override the scene float variable named angle",
	},
	cli.StringSliceFlag{
		Name:  "declare-float, d",
		Value: &cli.StringSlice{},
		Usage: "override a scene float variable, as name=value",
	},
	cli.Float64Flag{
		Name:  "alpha",
		Value: 1.0,
		Usage: "tone-mapping normalization factor",
	},
	cli.Float64Flag{
		Name:  "gamma",
		Value: 1.0,
		Usage: "gamma correction for LDR output",
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scene description files with path tracing"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a still frame from a scene file",
			ArgsUsage: "scene_file.txt",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "output image (.png, .jpg or raw .pfm)",
				},
			}, renderFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:      "animate",
			Usage:     "render the frame sequence described by the scene motion",
			ArgsUsage: "scene_file.txt",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out-dir",
					Value: "frames",
					Usage: "directory receiving the numbered frames",
				},
			}, renderFlags...),
			Action: cmd.Animate,
		},
		{
			Name:      "inspect",
			Usage:     "parse a scene file and print its contents",
			ArgsUsage: "scene_file.txt",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "declare-float, d",
					Value: &cli.StringSlice{},
					Usage: "override a scene float variable, as name=value",
				},
				cli.Float64Flag{
					Name:  "angle-deg",
					Usage: "override the scene float variable named angle",
				},
			},
			Action: cmd.Inspect,
		},
		{
			Name:      "convert",
			Usage:     "tone-map a raw PFM buffer into a PNG or JPEG image",
			ArgsUsage: "input.pfm output.png",
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "alpha",
					Value: 1.0,
					Usage: "tone-mapping normalization factor",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Value: 1.0,
					Usage: "gamma correction for LDR output",
				},
			},
			Action: cmd.Convert,
		},
	}

	if err := app.Run(os.Args); err != nil {
		// User-facing errors get a diagnostic, not a stack trace
		logger.Error(err)
		os.Exit(1)
	}
}
