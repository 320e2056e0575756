package main

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/colorflash/engine"
	"github.com/lixenwraith/colorflash/systems"
)

// shutdown turns quit requests from any goroutine into a graceful controller stop,
// then ends the loop once the last transition has finished or the grace period ran out
type shutdown struct {
	loop  *engine.Loop
	flash *systems.ColorFlash
	grace time.Duration

	once      sync.Once
	requested chan struct{}
}

func newShutdown(loop *engine.Loop, flash *systems.ColorFlash, grace time.Duration) *shutdown {
	return &shutdown{
		loop:      loop,
		flash:     flash,
		grace:     grace,
		requested: make(chan struct{}),
	}
}

// Request asks the controller to stop; safe to call repeatedly
func (s *shutdown) Request() {
	s.once.Do(func() {
		// Stop touches controller state, so it runs on the loop
		s.loop.AfterFunc(0, s.flash.Stop)
		close(s.requested)
	})
}

// wait blocks until the controller is done, requesting a stop when signals fires,
// and then calls cancel
func (s *shutdown) wait(signals <-chan struct{}, cancel context.CancelFunc) {
	defer cancel()

	select {
	case <-signals:
		log.Printf("signal received, finishing current transition")
		s.Request()
	case <-s.requested:
	case <-s.flash.Done():
		return
	}

	select {
	case <-s.flash.Done():
	case <-time.After(s.grace):
		log.Printf("transition did not finish within %v", s.grace)
	}
}
