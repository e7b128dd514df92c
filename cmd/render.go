package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/joshua-smart/FeO/pkg/output"
	"github.com/joshua-smart/FeO/pkg/renderer"
	"github.com/joshua-smart/FeO/pkg/scene"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		Workers:         ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}

	sceneName := ctx.String("scene")
	if ctx.NArg() > 0 {
		sceneName = ctx.Args().First()
	}

	sc, err := loadScene(sceneName, opts.Seed)
	if err != nil {
		return err
	}
	// An explicit zero is a valid override and yields a black frame
	if ctx.IsSet("max-depth") {
		if sc, err = sc.WithMaxDepth(ctx.Int("max-depth")); err != nil {
			return err
		}
	}
	if sc.Camera() == nil {
		return errors.New("scene has no camera")
	}

	logger.Noticef("rendering scene %q at %dx%d, %d spp", sc.Name(), opts.Width, opts.Height, opts.SamplesPerPixel)
	frame, stats, err := renderer.Render(sc, sc.Camera(), opts)
	if err != nil {
		return err
	}

	// Display stats
	displayFrameStats(stats)

	img := frame.ToRGBA()
	out := ctx.String("out")
	if err := output.Save(img, out); err != nil {
		return err
	}

	if size := ctx.Uint("thumbnail"); size > 0 {
		if err := output.Save(output.Thumbnail(img, size), output.ThumbnailPath(out)); err != nil {
			return err
		}
	}

	if bucket := ctx.String("s3-bucket"); bucket != "" {
		uploader, err := output.NewS3Uploader(output.S3Config{
			Bucket:    bucket,
			Region:    ctx.String("s3-region"),
			Endpoint:  ctx.String("s3-endpoint"),
			AccessKey: ctx.String("s3-access-key"),
			SecretKey: ctx.String("s3-secret-key"),
		})
		if err != nil {
			return err
		}

		key := ctx.String("s3-key")
		if key == "" {
			key = filepath.Base(out)
		}
		if err := uploader.UploadImage(context.Background(), img, key); err != nil {
			return err
		}
	}

	return nil
}

// loadScene loads a preset or scene file
func loadScene(name string, seed int64) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("missing scene argument")
	}
	return scene.Load(name, seed)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Samples per pixel", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.SamplesPerPixel),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"TOTAL", fmt.Sprintf("%d", stats.SamplesPerPixel), stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics (merge took %s)\n%s", stats.MergeTime, buf.String())
}
