/*
 * Copyright (C) 2023 by Jason Figge
 */

package app

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"raycaster/internal/logging"
	"raycaster/internal/platform"
)

// App runs a Controller inside a platform backend.
type App struct {
	Backend    platform.Backend
	Controller *Controller
	Config     platform.Config
	log        *slog.Logger
}

func New(backend platform.Backend, ctrl *Controller, cfg platform.Config, log *slog.Logger) *App {
	return &App{
		Backend:    backend,
		Controller: ctrl,
		Config:     cfg,
		log:        logging.OrNop(log),
	}
}

// Run blocks until the window is closed or ctx is done. It must be called
// from the main goroutine.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("Starting", "backend", a.Backend.Name(), "title", a.Config.Title)
	err := a.Backend.Run(a.Config, &contextLoop{ctx: ctx, Controller: a.Controller})
	if err != nil {
		return errors.Wrapf(err, "%s backend", a.Backend.Name())
	}
	a.log.Info("Stopped")
	return nil
}

// contextLoop closes the window once ctx is done.
type contextLoop struct {
	ctx context.Context
	*Controller
	window platform.Window
}

func (l *contextLoop) Init(w platform.Window) error {
	l.window = w
	return l.Controller.Init(w)
}

func (l *contextLoop) EndFrame() {
	l.Controller.EndFrame()
	if l.ctx.Err() != nil && l.window != nil && !l.window.ShouldClose() {
		l.window.SetShouldClose(true)
	}
}
