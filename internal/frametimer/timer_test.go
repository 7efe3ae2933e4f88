/*
 * Copyright (C) 2023 by Jason Figge
 */

package frametimer_test

import (
	"errors"
	"testing"
	"time"

	"raycaster/internal/frametimer"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTimer(t *testing.T, interval time.Duration) (*frametimer.Timer, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Unix(1000, 0)}
	ft, err := frametimer.New(interval, frametimer.WithClock(clk.now))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ft, clk
}

func TestNew_RejectsNonPositiveInterval(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		if _, err := frametimer.New(d); !errors.Is(err, frametimer.ErrInterval) {
			t.Errorf("New(%v): got %v, want ErrInterval", d, err)
		}
	}
}

func TestNew_InitialValues(t *testing.T) {
	ft, _ := newTimer(t, time.Second)
	if ft.FPS() != 1 {
		t.Errorf("FPS: got %d, want 1", ft.FPS())
	}
	if ft.IntervalDuration() != time.Nanosecond || ft.AvgFrameTime() != time.Nanosecond || ft.LastFrameDuration() != time.Nanosecond {
		t.Errorf("durations should start at 1ns: %v %v %v", ft.IntervalDuration(), ft.AvgFrameTime(), ft.LastFrameDuration())
	}
}

func TestTimer_SamplesAfterInterval(t *testing.T) {
	ft, clk := newTimer(t, time.Second)

	var gotFPS []int
	var gotSpan, gotAvg time.Duration
	var order []string
	ft.OnFPS(func(fps int) { gotFPS = append(gotFPS, fps); order = append(order, "fps") })
	ft.OnIntervalDuration(func(d time.Duration) { gotSpan = d; order = append(order, "span") })
	ft.OnAvgFrameTime(func(d time.Duration) { gotAvg = d; order = append(order, "avg") })

	// 100 frames of 10ms land exactly on the interval, which is not enough.
	for i := 0; i < 100; i++ {
		ft.Start()
		clk.advance(10 * time.Millisecond)
		ft.End()
	}
	if len(gotFPS) != 0 {
		t.Fatalf("sampled at exactly one interval: %v", gotFPS)
	}
	if ft.LastFrameDuration() != 10*time.Millisecond {
		t.Errorf("LastFrameDuration: got %v", ft.LastFrameDuration())
	}

	ft.Start()
	clk.advance(10 * time.Millisecond)
	ft.End()

	if len(gotFPS) != 1 || gotFPS[0] != 101 {
		t.Fatalf("FPS callbacks: got %v, want [101]", gotFPS)
	}
	if ft.FPS() != 101 {
		t.Errorf("FPS: got %d", ft.FPS())
	}
	if gotSpan != 1010*time.Millisecond || ft.IntervalDuration() != gotSpan {
		t.Errorf("interval duration: got %v", gotSpan)
	}
	if gotAvg != 10*time.Millisecond || ft.AvgFrameTime() != gotAvg {
		t.Errorf("avg frame time: got %v", gotAvg)
	}
	if len(order) != 3 || order[0] != "fps" || order[1] != "span" || order[2] != "avg" {
		t.Errorf("callback order: %v", order)
	}
	if ft.InstantFPS() != 100 {
		t.Errorf("InstantFPS: got %d, want 100", ft.InstantFPS())
	}
}

func TestTimer_FPSUsesNominalInterval(t *testing.T) {
	ft, clk := newTimer(t, 2*time.Second)
	for i := 0; i < 30; i++ {
		ft.Start()
		clk.advance(100 * time.Millisecond)
		ft.End()
	}
	// Sampled on the 21st frame, 2.1s in; 21 frames / 2s nominal = 10.
	if ft.FPS() != 10 {
		t.Errorf("FPS: got %d, want 10", ft.FPS())
	}
}

func TestTimer_NilCallbackIsNoop(t *testing.T) {
	ft, clk := newTimer(t, time.Millisecond)
	called := false
	ft.OnFPS(func(int) { called = true })
	ft.OnFPS(nil)
	ft.Start()
	clk.advance(5 * time.Millisecond)
	ft.End()
	if called {
		t.Error("replaced callback still fired")
	}
}

func TestTimer_InstantFPSZeroFrame(t *testing.T) {
	ft, _ := newTimer(t, time.Second)
	ft.Start()
	ft.End()
	if got := ft.InstantFPS(); got != int64(time.Second) {
		t.Errorf("InstantFPS for a zero-length frame: got %d", got)
	}
}
