package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// cueQueueSize bounds pending cues; extra cues are dropped
const cueQueueSize = 32

// SoundManager plays game cues through the speaker
// Play never blocks the caller: cues are synthesized and mixed on a worker goroutine
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	queue       chan core.SoundType
	done        chan struct{}
	initialized bool
	dropped     int
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the cue worker
// With audio disabled it succeeds and every Play is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)

	sm.queue = make(chan core.SoundType, cueQueueSize)
	sm.done = make(chan struct{})
	queue, done := sm.queue, sm.done
	core.Go(func() { sm.worker(queue, done) })

	sm.initialized = true
	return nil
}

// Play queues a cue; it is dropped when audio is off or the queue is full
func (sm *SoundManager) Play(s core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	select {
	case sm.queue <- s:
	default:
		sm.dropped++
	}
}

// Dropped returns the number of cues discarded on a full queue
func (sm *SoundManager) Dropped() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.dropped
}

// Enabled reports whether the speaker is open
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops the worker and silences the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	if !sm.initialized {
		sm.mu.Unlock()
		return
	}
	sm.initialized = false
	close(sm.queue)
	done := sm.done
	sm.mu.Unlock()

	<-done

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// worker synthesizes queued cues and adds them to the mixer
func (sm *SoundManager) worker(queue <-chan core.SoundType, done chan<- struct{}) {
	defer close(done)
	for s := range queue {
		streamer := GetSoundEffect(s, sm.cfg)
		if streamer == nil {
			continue
		}
		speaker.Lock()
		sm.mixer.Add(streamer)
		speaker.Unlock()
	}
}
