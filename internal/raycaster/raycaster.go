/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package raycaster defines the per-column contract between the renderer
// and whatever computes what each screen column sees.
package raycaster

import (
	"raycaster/internal/colorutil"
)

// Raycaster fills the screen one vertical strip at a time. The renderer
// calls StartFrame once per frame, then FillStrip for every column from
// left to right.
type Raycaster interface {
	// SetViewportSize configures the raycaster to output a scene of
	// width x height pixels.
	SetViewportSize(width, height int)

	// StartFrame prepares for the FillStrip calls of the next frame.
	StartFrame()

	// FillStrip renders the column at x, in [0, width). strip has one
	// entry per row, top to bottom, and holds opaque black on entry.
	FillStrip(strip []colorutil.Color, x int)
}

// Nop writes nothing, so the screen stays black.
type Nop struct{}

func (Nop) SetViewportSize(int, int)         {}
func (Nop) StartFrame()                      {}
func (Nop) FillStrip([]colorutil.Color, int) {}
