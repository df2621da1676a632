package systems

import (
	"fmt"

	"github.com/lixenwraith/invaders/core"
)

// Score is a monotonically increasing point counter
type Score struct {
	value int
}

// Add increases the score; non-positive amounts are ignored
func (s *Score) Add(points int) {
	if points > 0 {
		s.value += points
	}
}

// Value returns the current score
func (s *Score) Value() int {
	return s.value
}

// Draw writes the score at the left of the HUD row
func (s *Score) Draw(frame *core.Frame, row int) {
	frame.SetString(0, row, fmt.Sprintf("SCORE: %04d", s.value))
}

// Level is a monotonically increasing level counter starting at 1
type Level struct {
	value int
}

// NewLevel creates a counter at level 1
func NewLevel() Level {
	return Level{value: 1}
}

// Increment advances to the next level
func (l *Level) Increment() {
	l.value++
}

// Value returns the current level
func (l *Level) Value() int {
	return l.value
}

// Draw writes the level right-aligned on the HUD row
func (l *Level) Draw(frame *core.Frame, row int) {
	text := fmt.Sprintf("LEVEL: %d", l.value)
	frame.SetString(frame.Width()-len(text), row, text)
}
