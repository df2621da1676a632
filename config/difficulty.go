package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/invaders/constants"
)

// Built-in difficulty names, in menu order
const (
	DifficultyEasy     = "easy"
	DifficultyNormal   = "normal"
	DifficultyHard     = "hard"
	DifficultyHardcore = "hardcore"
)

// Difficulty is an immutable profile handed to Player and Swarm at construction
// A difficulty change builds new entities instead of mutating this value
type Difficulty struct {
	Name         string        `yaml:"-"`
	InvaderSpeed time.Duration `yaml:"invader_speed"`
	FireRate     time.Duration `yaml:"fire_rate"`
	MaxShots     int           `yaml:"max_shots"`
}

// Validate rejects profiles that would stall or break the simulation
func (d Difficulty) Validate() error {
	if d.InvaderSpeed <= 0 {
		return fmt.Errorf("%w: %s: invader_speed must be positive, got %v", ErrInvalidProfile, d.Name, d.InvaderSpeed)
	}
	if d.FireRate <= 0 {
		return fmt.Errorf("%w: %s: fire_rate must be positive, got %v", ErrInvalidProfile, d.Name, d.FireRate)
	}
	if d.MaxShots < 1 {
		return fmt.Errorf("%w: %s: max_shots must be at least 1, got %d", ErrInvalidProfile, d.Name, d.MaxShots)
	}
	return nil
}

// DefaultDifficulty is the profile used when nothing was selected
func DefaultDifficulty() Difficulty {
	return builtinDifficulties()[DifficultyNormal]
}

func builtinDifficulties() map[string]Difficulty {
	return map[string]Difficulty{
		DifficultyEasy: {
			Name:         DifficultyEasy,
			InvaderSpeed: 800 * time.Millisecond,
			FireRate:     400 * time.Millisecond,
			MaxShots:     3,
		},
		DifficultyNormal: {
			Name:         DifficultyNormal,
			InvaderSpeed: 600 * time.Millisecond,
			FireRate:     500 * time.Millisecond,
			MaxShots:     constants.DefaultMaxShots,
		},
		DifficultyHard: {
			Name:         DifficultyHard,
			InvaderSpeed: 400 * time.Millisecond,
			FireRate:     600 * time.Millisecond,
			MaxShots:     2,
		},
		DifficultyHardcore: {
			Name:         DifficultyHardcore,
			InvaderSpeed: 100 * time.Millisecond,
			FireRate:     200 * time.Second,
			MaxShots:     1,
		},
	}
}
