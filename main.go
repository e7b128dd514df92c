package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/joshua-smart/FeO/cmd"
	"github.com/joshua-smart/FeO/pkg/log"
	"github.com/joshua-smart/FeO/pkg/renderer"
)

var logger = log.New("feo")

func newApp() *cli.App {
	defaults := renderer.DefaultConfig()

	seedFlag := cli.Int64Flag{
		Name:   "seed",
		Value:  defaults.Seed,
		Usage:  "seed for the BVH build and the per-worker sample sequences",
		EnvVar: "FEO_SEED",
	}

	app := cli.NewApp()
	app.Name = "feo"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
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
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a preset or a JSON scene file. The scene may be given either as an
argument or with --scene. The output format follows the file extension.`,
			ArgsUsage: "[scene]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "cornell",
					Usage:  "preset name or path to a .json scene",
					EnvVar: "FEO_SCENE",
				},
				cli.IntFlag{
					Name:   "width",
					Value:  defaults.Width,
					Usage:  "frame width",
					EnvVar: "FEO_WIDTH",
				},
				cli.IntFlag{
					Name:   "height",
					Value:  defaults.Height,
					Usage:  "frame height",
					EnvVar: "FEO_HEIGHT",
				},
				cli.IntFlag{
					Name:   "spp",
					Value:  defaults.SamplesPerPixel,
					Usage:  "samples per pixel, split across workers",
					EnvVar: "FEO_SPP",
				},
				cli.IntFlag{
					Name:   "workers, w",
					Value:  defaults.Workers,
					Usage:  "number of render workers (0 = one per CPU)",
					EnvVar: "FEO_WORKERS",
				},
				cli.IntFlag{
					Name:   "max-depth",
					Usage:  "override the scene's maximum bounce depth",
					EnvVar: "FEO_MAX_DEPTH",
				},
				seedFlag,
				cli.StringFlag{
					Name:   "out, o",
					Value:  "frame.png",
					Usage:  "image filename for the rendered frame",
					EnvVar: "FEO_OUT",
				},
				cli.UintFlag{
					Name:   "thumbnail",
					Usage:  "also write a thumbnail fitting this many pixels",
					EnvVar: "FEO_THUMBNAIL",
				},
				cli.StringFlag{
					Name:   "s3-bucket",
					Usage:  "upload the frame to this bucket",
					EnvVar: "FEO_S3_BUCKET",
				},
				cli.StringFlag{
					Name:   "s3-key",
					Usage:  "object key for the upload (default: output file name)",
					EnvVar: "FEO_S3_KEY",
				},
				cli.StringFlag{
					Name:   "s3-region",
					Value:  "us-east-1",
					EnvVar: "FEO_S3_REGION",
				},
				cli.StringFlag{
					Name:   "s3-endpoint",
					Usage:  "endpoint for S3 compatible stores",
					EnvVar: "FEO_S3_ENDPOINT",
				},
				cli.StringFlag{
					Name:   "s3-access-key",
					EnvVar: "FEO_S3_ACCESS_KEY",
				},
				cli.StringFlag{
					Name:   "s3-secret-key",
					EnvVar: "FEO_S3_SECRET_KEY",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "scene",
			Usage: "inspect scenes",
			Subcommands: []cli.Command{
				{
					Name:      "info",
					Usage:     "print primitive, material and light counts and BVH statistics",
					ArgsUsage: "scene",
					Flags:     []cli.Flag{seedFlag},
					Action:    cmd.ShowSceneInfo,
				},
				{
					Name:  "list",
					Usage: "list presets and scene files",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:   "dir",
							Value:  "scenes",
							Usage:  "directory searched for .json scenes",
							EnvVar: "FEO_SCENES_DIR",
						},
					},
					Action: cmd.ListScenes,
				},
			},
		},
	}

	return app
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warningf("failed to load .env: %v", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
