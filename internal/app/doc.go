/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package app wires a raycaster, the renderer and a frame timer into the
// window loop.
//
// Controller is the per-frame driver: it owns the renderer, keeps the
// window title updated with the measured frame rate and reacts to input.
// App runs a Controller in a platform backend until the window closes.
package app
