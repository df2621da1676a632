package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Note frequencies used by the cues
const (
	noteA2 = 110.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
	noteB4 = 493.88
	noteG4 = 392.00
	noteE4 = 329.63
)

// oscillator generates a wave whose frequency glides linearly from start to end
type oscillator struct {
	start, end float64
	phase      float64
	length     int
	position   int
	wave       WaveType
	rate       beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		start:  from,
		end:    to,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.length)
		freq := o.start + (o.end-o.start)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release ramps to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration with the given attack and release lengths
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)

	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: total - rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		gain := 1.0
		switch {
		case e.position < e.attack:
			gain = float64(e.position) / float64(e.attack)
		case e.position >= e.releaseStart && e.total > e.releaseStart:
			gain = float64(e.total-e.position) / float64(e.total-e.releaseStart)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear gain
// Log2(0) is -Inf, so zero gain is mapped to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// jingle plays notes back to back with the shared jingle envelope
func jingle(rate beep.SampleRate, wave WaveType, notes ...float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, constants.JingleNoteDuration, wave, rate)
		parts = append(parts, NewEnvelope(osc, constants.JingleNoteDuration, constants.JingleNoteAttack, constants.JingleNoteRelease, rate))
	}
	return beep.Seq(parts...)
}

// CreatePewSound generates a falling laser zap for a fired shot
func CreatePewSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(1600, 400, constants.PewSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.PewSoundDuration, constants.PewSoundAttack, constants.PewSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(core.SoundPew))
}

// CreateExplodeSound generates a noise burst over a low rumble for a hit
func CreateExplodeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.ExplodeSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.ExplodeSoundDuration, constants.ExplodeSoundAttack, constants.ExplodeSoundRelease, rate)

	rumble := NewSweep(120, 40, constants.ExplodeSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, constants.ExplodeSoundDuration, constants.ExplodeSoundAttack, constants.ExplodeSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)
	return newVolume(mixed, cfg.effectVolume(core.SoundExplode))
}

// CreateMoveSound generates the low thump of a swarm step
func CreateMoveSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(noteA2, constants.MoveSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.MoveSoundDuration, constants.MoveSoundAttack, constants.MoveSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(core.SoundMove))
}

// CreateWinSound generates a rising arpeggio
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(jingle(rate, WaveSquare, noteC5, noteE5, noteG5, noteC6), cfg.effectVolume(core.SoundWin))
}

// CreateLoseSound generates a falling arpeggio
func CreateLoseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(jingle(rate, WaveSaw, noteB4, noteG4, noteE4), cfg.effectVolume(core.SoundLose))
}

// CreateStartupSound generates the launch chime
func CreateStartupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(jingle(rate, WaveSine, noteE4, noteG4, noteC5), cfg.effectVolume(core.SoundStartup))
}

// GetSoundEffect returns the streamer for a cue, nil for unknown cues
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundPew:
		return CreatePewSound(cfg)
	case core.SoundExplode:
		return CreateExplodeSound(cfg)
	case core.SoundMove:
		return CreateMoveSound(cfg)
	case core.SoundWin:
		return CreateWinSound(cfg)
	case core.SoundLose:
		return CreateLoseSound(cfg)
	case core.SoundStartup:
		return CreateStartupSound(cfg)
	default:
		return nil
	}
}
