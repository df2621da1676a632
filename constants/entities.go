package constants

import "time"

// Swarm Timing
const (
	// SwarmPopInterval is the delay between two members becoming visible
	SwarmPopInterval = 200 * time.Millisecond

	// SwarmDefaultMoveInterval is used when no difficulty profile supplies one
	SwarmDefaultMoveInterval = 2000 * time.Millisecond

	// SwarmMinMoveInterval is the floor for the movement timer after speed-ups
	SwarmMinMoveInterval = 60 * time.Millisecond

	// SwarmSpeedupStep is removed from the movement interval on every descend
	SwarmSpeedupStep = 40 * time.Millisecond

	// SwarmLevelSpeedup is the extra decrement per level above the first
	SwarmLevelSpeedup = 10 * time.Millisecond

	// SwarmShotSpeedup is the extra decrement per shot fired this level
	SwarmShotSpeedup = 1 * time.Millisecond

	// SwarmShotCap bounds the shot term of the speed-up
	SwarmShotCap = 50
)

// Swarm Layout
const (
	// MaxSwarmPopulation caps the level population series
	MaxSwarmPopulation = 144

	// SwarmRowSpacing is the vertical distance between formation rows
	SwarmRowSpacing = 2

	// SwarmSideMargin is the horizontal inset of the outermost columns
	SwarmSideMargin = 2

	// SwarmTopRow is the first row a member may occupy (row 0 is the HUD)
	SwarmTopRow = 1

	// InvaderPoints is the score value of one member
	InvaderPoints = 1
)

// Shot Timing
const (
	// ShotStepInterval is the time a traveling shot takes to climb one row
	ShotStepInterval = 50 * time.Millisecond

	// ShotExplodeDuration is how long an exploding shot lingers
	ShotExplodeDuration = 250 * time.Millisecond
)

// Player Defaults
const (
	// PlayerBottomOffset is the distance between the player row and the frame bottom
	PlayerBottomOffset = 3

	// DefaultFireRate is used when no difficulty profile supplies one
	DefaultFireRate = 500 * time.Millisecond

	// DefaultMaxShots is used when no difficulty profile supplies one
	DefaultMaxShots = 2
)
