/*
 * Copyright (C) 2023 by Jason Figge
 */

package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"raycaster/internal/app"
	"raycaster/internal/logging"
	"raycaster/internal/platform"
	"raycaster/internal/raycaster"
)

var (
	logLevel string
	logger   *slog.Logger

	width        int
	height       int
	caster       string
	overlay      bool
	title        string
	vsync        bool
	backend      string
	notResizable bool
)

// NewRootCmd builds the command tree. Building it resets every flag to its
// default.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "raycaster",
		Short:         "Column-streaming raycaster renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel, os.Stderr)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: runWindow,
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&width, "width", platform.DefaultWidth, "viewport width in pixels")
	root.PersistentFlags().IntVar(&height, "height", platform.DefaultHeight, "viewport height in pixels")
	root.PersistentFlags().StringVarP(&caster, "raycaster", "r", "test", "raycaster to render with (see list)")
	root.PersistentFlags().BoolVar(&overlay, "overlay", false, "draw the frame rate into the frame")

	root.Flags().StringVar(&title, "title", platform.DefaultTitle, "window title")
	root.Flags().BoolVar(&vsync, "vsync", false, "synchronise buffer swaps with the display")
	root.Flags().StringVarP(&backend, "backend", "b", "gl", "window backend (gl, sdl)")
	root.Flags().BoolVar(&notResizable, "fixed", false, "do not allow resizing the window")

	root.AddCommand(listCmd(), snapshotCmd())
	return root
}

func Execute() error {
	root := NewRootCmd()
	err := root.ExecuteContext(context.Background())
	if err != nil {
		if logger != nil {
			logger.Error("Command failed", "err", err)
		} else {
			root.PrintErrln("Error:", err)
		}
	}
	return err
}

func runWindow(cmd *cobra.Command, args []string) error {
	rc, err := raycaster.New(caster)
	if err != nil {
		return err
	}
	be, err := newBackend(backend, logger)
	if err != nil {
		return err
	}

	cfg := platform.Config{
		Width:     width,
		Height:    height,
		Title:     title,
		VSync:     vsync,
		Resizable: !notResizable,
	}
	ctrl, err := app.NewController(rc, app.Options{
		Title:   title,
		Width:   width,
		Height:  height,
		Overlay: overlay,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.New(be, ctrl, cfg, logger).Run(ctx)
}
