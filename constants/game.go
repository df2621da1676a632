package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the simulation tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps the delta fed to one tick after a stall (suspend, debugger)
	MaxTickDelta = 250 * time.Millisecond

	// InputQueueSize is the buffered capacity of the terminal event channel
	InputQueueSize = 256
)

// Run Limits
const (
	// DefaultMaxLevel is the level whose clearance wins the run
	DefaultMaxLevel = 9
)
