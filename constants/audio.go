package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Pew Sound Timing
const (
	PewSoundDuration = 120 * time.Millisecond
	PewSoundAttack   = 2 * time.Millisecond
	PewSoundRelease  = 80 * time.Millisecond
)

// Explode Sound Timing
const (
	ExplodeSoundDuration = 300 * time.Millisecond
	ExplodeSoundAttack   = 5 * time.Millisecond
	ExplodeSoundRelease  = 250 * time.Millisecond
)

// Move Sound Timing
const (
	MoveSoundDuration = 60 * time.Millisecond
	MoveSoundAttack   = 5 * time.Millisecond
	MoveSoundRelease  = 30 * time.Millisecond
)

// Win/Lose/Startup Jingle Timing
const (
	JingleNoteDuration = 110 * time.Millisecond
	JingleNoteAttack   = 5 * time.Millisecond
	JingleNoteRelease  = 60 * time.Millisecond
)
