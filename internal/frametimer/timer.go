/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package frametimer measures frame rate and frame time over fixed sample
// intervals.
package frametimer

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"raycaster/internal/logging"
)

var ErrInterval = errors.New("sample interval must be positive")

type Option func(*Timer)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		if now != nil {
			t.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.log = logging.OrNop(l)
	}
}

// Timer is driven by Start and End around every frame. Once more than one
// interval has elapsed since the last sample, End publishes the interval's
// figures and fires the callbacks. It is not safe for concurrent use.
type Timer struct {
	now func() time.Time
	log *slog.Logger

	interval        time.Duration
	intervalSeconds float64

	lastSample       time.Time
	frameStart       time.Time
	framesInInterval int

	fps               int
	intervalDuration  time.Duration
	avgFrameTime      time.Duration
	lastFrameDuration time.Duration

	onFPS              func(int)
	onIntervalDuration func(time.Duration)
	onAvgFrameTime     func(time.Duration)
}

func New(interval time.Duration, opts ...Option) (*Timer, error) {
	if interval <= 0 {
		return nil, errors.Wrapf(ErrInterval, "got %v", interval)
	}
	t := &Timer{
		now:      time.Now,
		log:      logging.Nop(),
		interval: interval,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.intervalSeconds = interval.Seconds()
	t.OnFPS(nil)
	t.OnIntervalDuration(nil)
	t.OnAvgFrameTime(nil)

	t.log.Debug("Setting up frame timer", "interval", interval, "seconds", t.intervalSeconds)

	t.lastSample = t.now()
	t.frameStart = t.lastSample
	t.fps = 1
	t.intervalDuration = time.Nanosecond
	t.avgFrameTime = time.Nanosecond
	t.lastFrameDuration = time.Nanosecond
	return t, nil
}

// OnFPS sets the callback given the average FPS of each finished interval.
// A nil callback turns it off.
func (t *Timer) OnFPS(fn func(int)) {
	if fn == nil {
		fn = func(int) {}
	}
	t.onFPS = fn
}

// OnIntervalDuration sets the callback given the measured length of each
// finished interval.
func (t *Timer) OnIntervalDuration(fn func(time.Duration)) {
	if fn == nil {
		fn = func(time.Duration) {}
	}
	t.onIntervalDuration = fn
}

// OnAvgFrameTime sets the callback given the average frame time of each
// finished interval.
func (t *Timer) OnAvgFrameTime(fn func(time.Duration)) {
	if fn == nil {
		fn = func(time.Duration) {}
	}
	t.onAvgFrameTime = fn
}

func (t *Timer) Start() {
	t.frameStart = t.now()
	t.framesInInterval++
}

func (t *Timer) End() {
	end := t.now()
	span := end.Sub(t.lastSample)
	t.lastFrameDuration = end.Sub(t.frameStart)
	if span <= t.interval {
		return
	}

	frames := t.framesInInterval
	if frames == 0 {
		// End without Start; count it so the average stays defined.
		frames = 1
	}
	// FPS is scaled by the nominal interval, not the measured span.
	t.fps = int(float64(frames) / t.intervalSeconds)
	t.intervalDuration = span
	t.avgFrameTime = span / time.Duration(frames)
	t.lastSample = end
	t.framesInInterval = 0

	t.onFPS(t.fps)
	t.onIntervalDuration(t.intervalDuration)
	t.onAvgFrameTime(t.avgFrameTime)
}

// FPS is the average frame rate of the last finished interval.
func (t *Timer) FPS() int { return t.fps }

func (t *Timer) IntervalDuration() time.Duration { return t.intervalDuration }

func (t *Timer) AvgFrameTime() time.Duration { return t.avgFrameTime }

func (t *Timer) LastFrameDuration() time.Duration { return t.lastFrameDuration }

// InstantFPS is the rate implied by the last frame alone.
func (t *Timer) InstantFPS() int64 {
	d := t.lastFrameDuration
	if d < time.Nanosecond {
		d = time.Nanosecond
	}
	return int64(time.Second / d)
}
