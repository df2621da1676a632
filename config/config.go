// Package config holds the difficulty profiles and tuning knobs of a run.
// Defaults are compiled in; a YAML file and INVADERS_* environment
// variables may override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/invaders/constants"
)

// Sentinel errors
var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrInvalidProfile    = errors.New("invalid difficulty profile")
)

// Swarm holds the swarm timing knobs that are not part of a difficulty profile
type Swarm struct {
	PopInterval     time.Duration `yaml:"pop_interval"`
	MinMoveInterval time.Duration `yaml:"min_move_interval"`
	SpeedupStep     time.Duration `yaml:"speedup_step"`
	LevelSpeedup    time.Duration `yaml:"level_speedup"`
	// ShotSpeedup of zero disables shot-count scaling
	ShotSpeedup time.Duration `yaml:"shot_speedup"`
	ShotCap     int           `yaml:"shot_cap"`
}

// Audio holds speaker settings
type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
}

// Config is the full runtime configuration
type Config struct {
	Difficulties      map[string]Difficulty `yaml:"difficulties"`
	DefaultDifficulty string                `yaml:"default_difficulty"`
	MaxLevel          int                   `yaml:"max_level"`
	Swarm             Swarm                 `yaml:"swarm"`
	Audio             Audio                 `yaml:"audio"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	return &Config{
		Difficulties:      builtinDifficulties(),
		DefaultDifficulty: DifficultyNormal,
		MaxLevel:          constants.DefaultMaxLevel,
		Swarm:             DefaultSwarm(),
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 0.5,
		},
	}
}

// DefaultSwarm returns the compiled-in swarm tuning
func DefaultSwarm() Swarm {
	return Swarm{
		PopInterval:     constants.SwarmPopInterval,
		MinMoveInterval: constants.SwarmMinMoveInterval,
		SpeedupStep:     constants.SwarmSpeedupStep,
		LevelSpeedup:    constants.SwarmLevelSpeedup,
		ShotSpeedup:     constants.SwarmShotSpeedup,
		ShotCap:         constants.SwarmShotCap,
	}
}

// Parse overlays YAML data on the defaults and validates the result
// Difficulty entries present in data replace the built-in entry of the same name whole
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a YAML file, an empty path yields the defaults
// Environment overrides are applied last in both cases
func Load(path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config read %s: %w", path, err)
		}
		cfg, err = Parse(data)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies INVADERS_* overrides read through getenv
// Malformed values are ignored
func (c *Config) ApplyEnv(getenv func(string) string) {
	if name := getenv("INVADERS_DIFFICULTY"); name != "" {
		c.DefaultDifficulty = strings.ToLower(name)
	}

	if enabled := getenv("INVADERS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := getenv("INVADERS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = float64(val) / 100.0
			if c.Audio.MasterVolume < 0 {
				c.Audio.MasterVolume = 0
			}
			if c.Audio.MasterVolume > 1 {
				c.Audio.MasterVolume = 1
			}
		}
	}
}

// normalize lower-cases difficulty keys and stamps each profile with its name
func (c *Config) normalize() {
	profiles := make(map[string]Difficulty, len(c.Difficulties))
	// Mixed-case keys come from the file and win over a lower-case built-in
	for _, mixed := range []bool{false, true} {
		for name, d := range c.Difficulties {
			key := strings.ToLower(name)
			if (key != name) != mixed {
				continue
			}
			d.Name = key
			profiles[key] = d
		}
	}
	c.Difficulties = profiles
	c.DefaultDifficulty = strings.ToLower(c.DefaultDifficulty)
}

// Validate checks every profile, the default selection and the tuning
func (c *Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("%w: no difficulties configured", ErrInvalidProfile)
	}
	for _, name := range c.DifficultyNames() {
		if err := c.Difficulties[name].Validate(); err != nil {
			return err
		}
	}
	if _, err := c.Lookup(c.DefaultDifficulty); err != nil {
		return fmt.Errorf("default_difficulty: %w", err)
	}
	if c.MaxLevel < 1 {
		return fmt.Errorf("max_level must be at least 1, got %d", c.MaxLevel)
	}
	if c.Swarm.PopInterval <= 0 {
		return fmt.Errorf("swarm.pop_interval must be positive, got %v", c.Swarm.PopInterval)
	}
	if c.Swarm.MinMoveInterval <= 0 {
		return fmt.Errorf("swarm.min_move_interval must be positive, got %v", c.Swarm.MinMoveInterval)
	}
	if c.Swarm.SpeedupStep <= 0 {
		return fmt.Errorf("swarm.speedup_step must be positive, got %v", c.Swarm.SpeedupStep)
	}
	if c.Swarm.LevelSpeedup < 0 || c.Swarm.ShotSpeedup < 0 || c.Swarm.ShotCap < 0 {
		return fmt.Errorf("swarm speed-up terms must not be negative")
	}
	return nil
}

// Lookup returns the named profile, case-insensitively
func (c *Config) Lookup(name string) (Difficulty, error) {
	d, ok := c.Difficulties[strings.ToLower(name)]
	if !ok {
		return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
	return d, nil
}

// Selected returns the profile named by DefaultDifficulty, falling back to normal
func (c *Config) Selected() Difficulty {
	d, err := c.Lookup(c.DefaultDifficulty)
	if err != nil {
		return DefaultDifficulty()
	}
	return d
}

var builtinOrder = []string{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyHardcore}

// DifficultyNames lists profiles in menu order: built-ins first, then custom ones alphabetically
func (c *Config) DifficultyNames() []string {
	names := make([]string, 0, len(c.Difficulties))
	for _, name := range builtinOrder {
		if _, ok := c.Difficulties[name]; ok {
			names = append(names, name)
		}
	}

	var custom []string
	for name := range c.Difficulties {
		if !slices.Contains(builtinOrder, name) {
			custom = append(custom, name)
		}
	}
	sort.Strings(custom)
	return append(names, custom...)
}
