package render

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/invaders/core"
)

// ErrPipelineClosed is returned by Send after Close
var ErrPipelineClosed = errors.New("frame pipeline closed")

// Pipeline is an ordered, unbounded single-producer/single-consumer frame queue
// Send never waits on the consumer; frames queue up while rendering lags.
// Frames are moved: the producer must not touch a frame after sending it.
type Pipeline struct {
	in   chan *core.Frame
	out  chan *core.Frame
	stop chan struct{}

	closed   atomic.Bool
	stopOnce sync.Once
	pending  atomic.Int64
}

// NewPipeline creates a pipeline and starts its queue pump
func NewPipeline() *Pipeline {
	p := &Pipeline{
		in:   make(chan *core.Frame, 16),
		out:  make(chan *core.Frame),
		stop: make(chan struct{}),
	}
	core.Go(p.pump)
	return p
}

// Send queues a frame for the consumer; producer-only
func (p *Pipeline) Send(frame *core.Frame) error {
	if p.closed.Load() {
		return ErrPipelineClosed
	}
	select {
	case <-p.stop:
		return ErrPipelineClosed
	default:
	}

	p.pending.Add(1)
	select {
	case <-p.stop:
		p.pending.Add(-1)
		return ErrPipelineClosed
	case p.in <- frame:
		return nil
	}
}

// Close signals that no more frames follow; the consumer still drains what was sent
// Producer-only, idempotent
func (p *Pipeline) Close() {
	if p.closed.CompareAndSwap(false, true) {
		close(p.in)
	}
}

// Abort drops queued frames and closes the consumer side immediately
func (p *Pipeline) Abort() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// Frames is the consumer side; it closes once the producer closed and the queue drained
func (p *Pipeline) Frames() <-chan *core.Frame {
	return p.out
}

// Pending returns the number of frames sent but not yet received by the consumer
func (p *Pipeline) Pending() int {
	return int(p.pending.Load())
}

// pump moves frames from in to out through a growable FIFO
func (p *Pipeline) pump() {
	defer close(p.out)

	var queue []*core.Frame
	in := p.in
	for in != nil || len(queue) > 0 {
		var out chan *core.Frame
		var next *core.Frame
		if len(queue) > 0 {
			out = p.out
			next = queue[0]
		}

		select {
		case <-p.stop:
			p.pending.Store(0)
			return
		case frame, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, frame)
		case out <- next:
			queue[0] = nil
			queue = queue[1:]
			p.pending.Add(-1)
		}
	}
}
