package main

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/colorflash/engine"
	"github.com/lixenwraith/colorflash/render"
	"github.com/lixenwraith/colorflash/systems"
)

// titleSink counts completed cycles; only touched from the loop goroutine
type titleSink struct {
	render.NopSink
	titles []string
}

func (s *titleSink) SetTitle(title string) { s.titles = append(s.titles, title) }

func TestShutdownFinishesInFlightTransition(t *testing.T) {
	loop := engine.NewLoop(engine.NewMonotonicTimeProvider())
	sink := &titleSink{}

	cfg := systems.DefaultColorFlashConfig()
	cfg.TransitionDuration = 20 * time.Millisecond
	cfg.ChangeEvery = time.Hour
	flash := systems.NewColorFlash(loop, rand.New(rand.NewSource(1)), sink, cfg, nil)

	stop := newShutdown(loop, flash, 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan struct{})
	loop.AfterFunc(0, flash.Start)
	go stop.wait(signals, cancel)

	errC := make(chan error, 1)
	go func() { errC <- loop.Run(ctx) }()

	close(signals)

	select {
	case err := <-errC:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Loop did not stop after signal")
	}

	select {
	case <-flash.Done():
	default:
		t.Error("Controller should be done after shutdown")
	}
	if flash.Cycles() != 1 {
		t.Errorf("Expected 1 cycle, got %d", flash.Cycles())
	}
	if len(sink.titles) != 1 {
		t.Errorf("Expected the in-flight transition to complete with a title, got %v", sink.titles)
	}
}

func TestShutdownGraceExpires(t *testing.T) {
	// Loop never runs, so the controller never reports done
	loop := engine.NewLoop(engine.NewMonotonicTimeProvider())
	flash := systems.NewColorFlash(loop, rand.New(rand.NewSource(1)), render.NopSink{}, systems.DefaultColorFlashConfig(), nil)
	stop := newShutdown(loop, flash, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go stop.wait(make(chan struct{}), cancel)
	stop.Request()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Grace period did not cancel the loop")
	}
}

func TestShutdownRequestIsIdempotent(t *testing.T) {
	loop := engine.NewLoop(engine.NewMonotonicTimeProvider())
	flash := systems.NewColorFlash(loop, rand.New(rand.NewSource(1)), render.NopSink{}, systems.DefaultColorFlashConfig(), nil)
	stop := newShutdown(loop, flash, time.Second)

	stop.Request()
	stop.Request()

	if n := loop.Pending(); n != 1 {
		t.Errorf("Expected one queued stop, got %d", n)
	}
}
