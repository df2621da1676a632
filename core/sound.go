package core

// SoundType represents the audio cues the game emits
type SoundType int

const (
	SoundPew     SoundType = iota // Player shot fired
	SoundExplode                  // Shot hit an invader
	SoundMove                     // Swarm stepped
	SoundWin                      // Level cleared or run won
	SoundLose                     // Swarm landed or player quit
	SoundStartup                  // Program launched
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundPew:     "pew",
	SoundExplode: "explode",
	SoundMove:    "move",
	SoundWin:     "win",
	SoundLose:    "lose",
	SoundStartup: "startup",
}

// String returns the cue name
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundPlayer is a fire-and-forget cue sink; implementations must not block
type SoundPlayer interface {
	Play(SoundType)
}

// NopSound discards every cue
type NopSound struct{}

// Play implements SoundPlayer
func (NopSound) Play(SoundType) {}
