package systems

import (
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// Shot is one player projectile: traveling, then exploding, then dead
// Once exploding its position never changes
type Shot struct {
	X, Y      int
	Exploding bool
	timer     core.Timer
}

// NewShot creates a traveling shot at the given cell
func NewShot(x, y int) *Shot {
	return &Shot{
		X:     x,
		Y:     y,
		timer: core.NewTimer(constants.ShotStepInterval),
	}
}

// Update advances the shot timer, climbing one row per expiry while traveling
func (s *Shot) Update(dt time.Duration) {
	s.timer.Tick(dt)
	if s.Exploding || !s.timer.Finished() {
		return
	}
	if s.Y > 0 {
		s.Y--
	}
	s.timer.Reset()
}

// Explode freezes the shot and starts its decay countdown
func (s *Shot) Explode() {
	if s.Exploding {
		return
	}
	s.Exploding = true
	s.timer.ResetWith(constants.ShotExplodeDuration)
}

// Dead reports whether the shot finished decaying or left the top of the playfield
func (s *Shot) Dead() bool {
	if s.Exploding {
		return s.timer.Finished()
	}
	return s.Y <= 0
}

// Draw writes the shot glyph into the frame
func (s *Shot) Draw(frame *core.Frame) {
	glyph := rune(constants.GlyphShot)
	if s.Exploding {
		glyph = constants.GlyphExplosion
	}
	frame.Set(s.X, s.Y, glyph)
}
