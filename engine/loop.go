package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/status"
)

// ActionSource yields the actions that arrived since the last poll, in arrival order
// Poll must not block
type ActionSource interface {
	Poll() []Action
}

// SizeSource reports the terminal size in cells
type SizeSource interface {
	Size() (int, int)
}

// FrameSink receives composed frames; Send must not wait on the consumer
type FrameSink interface {
	Send(*core.Frame) error
}

// backlog is implemented by sinks that can report queued frames
type backlog interface {
	Pending() int
}

// Loop drives a Game at a fixed tick interval on the calling goroutine
type Loop struct {
	Game     *Game
	Input    ActionSource
	Terminal SizeSource
	Frames   FrameSink
	Clock    Clock
	Interval time.Duration
	Stats    *status.Registry
}

// Run ticks until the game ends or ctx is cancelled
// The last composed frame is always handed off before returning
func (l *Loop) Run(ctx context.Context) (Outcome, error) {
	interval := l.Interval
	if interval <= 0 {
		interval = constants.FrameUpdateInterval
	}
	clock := l.Clock
	if clock == nil {
		clock = NewTimeProvider()
	}
	stats := l.Stats
	if stats == nil {
		stats = status.NewRegistry()
	}
	ticks := stats.Int(status.SimTicks)
	sent := stats.Int(status.FramesSent)
	peak := stats.Int(status.PipelinePeak)
	resizes := stats.Int(status.ViewportResizes)
	queue, _ := l.Frames.(backlog)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := clock.Now()
	for {
		now := clock.Now()
		dt := tickDelta(now, last, constants.MaxTickDelta)
		last = now

		if l.Game.Resize(l.Terminal.Size()) {
			resizes.Add(1)
		}

		var actions []Action
		if l.Input != nil {
			actions = l.Input.Poll()
		}
		outcome := l.Game.Tick(dt, actions)
		ticks.Add(1)

		if err := l.Frames.Send(l.Game.Compose()); err != nil {
			return outcome, fmt.Errorf("frame hand-off: %w", err)
		}
		sent.Add(1)
		if queue != nil {
			status.StoreMax(peak, int64(queue.Pending()))
		}
		if outcome != OutcomeRunning {
			return outcome, nil
		}

		select {
		case <-ctx.Done():
			return OutcomeQuit, nil
		case <-ticker.C:
		}
	}
}

// Session couples one game run to a renderer running on its own goroutine
type Session struct {
	Game     *Game
	Input    ActionSource
	Surface  render.Surface
	Clock    Clock
	Interval time.Duration
	Stats    *status.Registry
}

// Run plays the game to completion; the simulation runs on the calling goroutine
// The render goroutine drains every queued frame before Run returns
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	if s.Stats == nil {
		s.Stats = status.NewRegistry()
	}
	pipeline := render.NewPipeline()
	renderer := render.NewTerminalRenderer(s.Surface)
	renderer.SetStats(s.Stats)

	var wg sync.WaitGroup
	wg.Add(1)
	core.Go(func() {
		defer wg.Done()
		renderer.Run(pipeline.Frames())
	})

	loop := &Loop{
		Game:     s.Game,
		Input:    s.Input,
		Terminal: s.Surface,
		Frames:   pipeline,
		Clock:    s.Clock,
		Interval: s.Interval,
		Stats:    s.Stats,
	}
	outcome, err := loop.Run(ctx)

	if errors.Is(err, render.ErrPipelineClosed) {
		pipeline.Abort()
	} else {
		pipeline.Close()
	}
	wg.Wait()

	log.Printf("session ended: outcome=%s score=%d level=%d %s",
		outcome, s.Game.Score(), s.Game.Level(), s.Stats)
	return outcome, err
}
