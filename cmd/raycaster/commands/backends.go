/*
 * Copyright (C) 2023 by Jason Figge
 */

package commands

import (
	"log/slog"
	"sort"

	"github.com/pkg/errors"

	"raycaster/internal/platform"
	"raycaster/internal/platform/glfwgl"
	"raycaster/internal/platform/sdlwin"
)

var ErrUnknownBackend = errors.New("unknown backend")

var backends = map[string]func(*slog.Logger) platform.Backend{
	glfwgl.Name: func(l *slog.Logger) platform.Backend { return glfwgl.New(l) },
	sdlwin.Name: func(l *slog.Logger) platform.Backend { return sdlwin.New(l) },
}

func newBackend(name string, l *slog.Logger) (platform.Backend, error) {
	f, ok := backends[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBackend, "%q (have %v)", name, backendNames())
	}
	return f(l), nil
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for n := range backends {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
