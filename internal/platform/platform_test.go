/*
 * Copyright (C) 2023 by Jason Figge
 */

package platform_test

import (
	"errors"
	"math"
	"testing"

	"raycaster/internal/platform"
)

func TestDefaultConfig(t *testing.T) {
	cfg := platform.DefaultConfig()
	if cfg.Width != 800 || cfg.Height != 600 || cfg.VSync || !cfg.Resizable {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	for _, cfg := range []platform.Config{
		{Width: 0, Height: 600},
		{Width: 800, Height: -1},
		{Width: platform.MaxSize + 1, Height: 600},
		{Width: 800, Height: math.MaxInt},
	} {
		if err := cfg.Validate(); !errors.Is(err, platform.ErrInvalidConfig) {
			t.Errorf("Validate(%+v): got %v, want ErrInvalidConfig", cfg, err)
		}
	}
}

func TestConfig_ValidateAcceptsMaxSize(t *testing.T) {
	cfg := platform.Config{Width: platform.MaxSize, Height: platform.MaxSize}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate(%+v): %v", cfg, err)
	}
}

func TestStrings(t *testing.T) {
	if platform.KeyEscape.String() != "escape" {
		t.Errorf("KeyEscape: %q", platform.KeyEscape.String())
	}
	if platform.Key(99).String() != "key(99)" {
		t.Errorf("Key(99): %q", platform.Key(99).String())
	}
	if platform.Repeat.String() != "repeat" {
		t.Errorf("Repeat: %q", platform.Repeat.String())
	}
}
