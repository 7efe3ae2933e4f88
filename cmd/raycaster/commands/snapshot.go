/*
 * Copyright (C) 2023 by Jason Figge
 */

package commands

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"raycaster/internal/app"
	"raycaster/internal/raycaster"
	"raycaster/internal/render"
)

func snapshotCmd() *cobra.Command {
	var (
		out    string
		format string
		frames int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames without a window and save the last one as an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := format
			if name == "" {
				name = render.FormatFromPath(out)
			}
			imgFormat, err := render.ParseFormat(name)
			if err != nil {
				return err
			}
			rc, err := raycaster.New(caster)
			if err != nil {
				return err
			}
			f, err := app.Snapshot(rc, app.Options{
				Width:   width,
				Height:  height,
				Overlay: overlay,
				Logger:  logger,
			}, frames)
			if err != nil {
				return err
			}
			if err := writeImage(out, f, imgFormat); err != nil {
				return err
			}
			logger.Info("Snapshot written", "path", out, "format", imgFormat, "width", f.Width, "height", f.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "snapshot.png", "output file")
	cmd.Flags().StringVar(&format, "format", "", "image format (png, bmp); default from the output extension")
	cmd.Flags().IntVar(&frames, "frames", 1, "frames to render before saving")
	return cmd
}

// writeImage encodes f in memory so a failed encode never touches path.
func writeImage(path string, f *render.Frame, format string) error {
	var buf bytes.Buffer
	if err := render.Encode(&buf, f, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		os.Remove(path)
		return errors.Wrap(err, "write output")
	}
	return nil
}
