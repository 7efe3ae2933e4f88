/*
 * Copyright (C) 2023 by Jason Figge
 */

package render

import (
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

var ErrFormat = errors.New("unsupported image format")

// FormatFromPath picks the image format from a file extension, defaulting
// to PNG.
func FormatFromPath(path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case FormatBMP:
		return FormatBMP
	}
	return FormatPNG
}

// ParseFormat returns the canonical name of format, or ErrFormat when
// Encode cannot write it.
func ParseFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case FormatPNG, FormatBMP:
		return f, nil
	}
	return "", errors.Wrapf(ErrFormat, "%q", format)
}

// Encode writes the visible region of f as an image. An empty format means
// PNG.
func Encode(w io.Writer, f *Frame, format string) error {
	if format == "" {
		format = FormatPNG
	}
	format, err := ParseFormat(format)
	if err != nil {
		return err
	}
	img := f.Image()
	if format == FormatBMP {
		return errors.Wrap(bmp.Encode(w, img), "bmp")
	}
	return errors.Wrap(png.Encode(w, img), "png")
}
