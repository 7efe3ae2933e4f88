/*
 * Copyright (C) 2023 by Jason Figge
 */

package app

import (
	"fmt"

	"github.com/pkg/errors"

	"raycaster/internal/platform"
	"raycaster/internal/raycaster"
	"raycaster/internal/render"
)

// Snapshot renders frames frames without a window and returns the last one.
// With the overlay on, the frame is labelled with the raycaster name and
// size.
func Snapshot(caster raycaster.Raycaster, opts Options, frames int) (*render.Frame, error) {
	cfg := platform.Config{Width: opts.Width, Height: opts.Height}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if frames < 1 {
		return nil, errors.Errorf("frames must be at least 1, got %d", frames)
	}
	c, err := NewController(caster, opts)
	if err != nil {
		return nil, err
	}
	c.renderer.Overlay().SetText(fmt.Sprintf("%s %dx%d", raycaster.Name(caster), opts.Width, opts.Height))

	var f *render.Frame
	for i := 0; i < frames; i++ {
		f = c.BeginFrame()
		c.EndFrame()
	}
	c.log.Debug("Snapshot rendered", "frames", frames, "width", f.Width, "height", f.Height)
	return f, nil
}
