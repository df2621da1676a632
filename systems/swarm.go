package systems

import (
	"time"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// Invader is one swarm member
type Invader struct {
	X, Y    int
	Points  int
	Visible bool
}

// Swarm is the enemy formation state machine
// Population is laid out per level, revealed one member at a time,
// and moves as a rigid block that descends and speeds up on every edge hit
type Swarm struct {
	army       []Invader
	totalCount int

	moveTimer    core.Timer
	popTimer     core.Timer
	baseInterval time.Duration
	tuning       config.Swarm

	direction  int
	level      int
	popped     int
	shotsFired int
}

// NewSwarm creates an empty level-1 swarm; call Populate before use
func NewSwarm(d config.Difficulty, tuning config.Swarm) *Swarm {
	base := d.InvaderSpeed
	if base <= 0 {
		base = constants.SwarmDefaultMoveInterval
	}
	if tuning.PopInterval <= 0 {
		tuning.PopInterval = constants.SwarmPopInterval
	}
	if tuning.MinMoveInterval <= 0 {
		tuning.MinMoveInterval = constants.SwarmMinMoveInterval
	}
	if tuning.SpeedupStep <= 0 {
		tuning.SpeedupStep = constants.SwarmSpeedupStep
	}

	return &Swarm{
		moveTimer:    core.NewTimer(base),
		popTimer:     core.NewTimer(tuning.PopInterval),
		baseInterval: base,
		tuning:       tuning,
		direction:    1,
		level:        1,
	}
}

// PopulationForLevel returns the capped series f(1)=3, f(2)=5, f(n)=f(n-1)+f(n-2)
func PopulationForLevel(level int) int {
	if level <= 1 {
		return 3
	}
	a, b := 3, 5
	for i := 3; i <= level && b < constants.MaxSwarmPopulation; i++ {
		a, b = b, a+b
	}
	return min(b, constants.MaxSwarmPopulation)
}

// formationRows picks how many rows a population is spread over
func formationRows(count int) int {
	switch {
	case count >= 8:
		return 4
	case count >= 4:
		return 2
	default:
		return 1
	}
}

// Populate lays out the current level's population for a width x height viewport
// Layout is deterministic per (level, width, height); members start hidden.
// Columns that would not fit are dropped, so a cramped viewport gets fewer members.
func (s *Swarm) Populate(width, height int) {
	target := PopulationForLevel(s.level)

	s.army = s.army[:0]
	s.popped = 0
	s.popTimer.Reset()

	rows := formationRows(target)
	cols := (target + rows - 1) / rows

	usable := max(width-2*constants.SwarmSideMargin, 0)
	var spacing int
	if cols > 1 {
		spacing = usable / (cols - 1)
	} else {
		spacing = usable / 2
	}
	spacing = max(spacing, 1)

	var yPositions []int
	for y := constants.SwarmTopRow; y < height/2 && len(yPositions) < rows; y += constants.SwarmRowSpacing {
		yPositions = append(yPositions, y)
	}

	placed := 0
	for col := 0; col < cols && placed < target; col++ {
		x := constants.SwarmSideMargin + col*spacing
		if x > width-2 {
			break
		}
		for _, y := range yPositions {
			if placed >= target {
				break
			}
			s.army = append(s.army, Invader{
				X:      x,
				Y:      y,
				Points: constants.InvaderPoints,
			})
			placed++
		}
	}

	s.totalCount = len(s.army)
}

// Update advances the reveal and movement timers against a viewport of the given width
// Returns true when the swarm took a movement step this tick
func (s *Swarm) Update(dt time.Duration, width int) bool {
	s.reveal(dt)

	s.moveTimer.Tick(dt)
	if !s.moveTimer.Finished() {
		return false
	}
	s.moveTimer.Reset()

	if len(s.army) == 0 {
		return false
	}

	descend := false
	if s.direction < 0 {
		minX := s.army[0].X
		for _, inv := range s.army[1:] {
			minX = min(minX, inv.X)
		}
		if minX <= 1 {
			s.direction = 1
			descend = true
		}
	} else {
		maxX := s.army[0].X
		for _, inv := range s.army[1:] {
			maxX = max(maxX, inv.X)
		}
		if maxX >= width-2 {
			s.direction = -1
			descend = true
		}
	}

	if descend {
		s.speedUp()
		for i := range s.army {
			s.army[i].Y++
		}
	} else {
		for i := range s.army {
			s.army[i].X += s.direction
		}
	}
	return true
}

// reveal makes at most one more member visible per pop timer expiry
func (s *Swarm) reveal(dt time.Duration) {
	s.popTimer.Tick(dt)
	if !s.popTimer.Finished() {
		return
	}
	s.popTimer.Reset()
	if s.popped < len(s.army) {
		s.army[s.popped].Visible = true
		s.popped++
	}
}

// speedUp shortens the movement interval, never below the floor and never slowing down
func (s *Swarm) speedUp() {
	current := s.moveTimer.Duration()
	floor := s.tuning.MinMoveInterval
	if current <= floor {
		return
	}

	step := s.tuning.SpeedupStep +
		time.Duration(s.level-1)*s.tuning.LevelSpeedup +
		time.Duration(min(s.shotsFired, s.tuning.ShotCap))*s.tuning.ShotSpeedup

	s.moveTimer.SetDuration(max(current-step, floor))
}

// KillInvaderAt removes the member at (x, y) and returns its points, 0 if none
func (s *Swarm) KillInvaderAt(x, y int) int {
	for i, inv := range s.army {
		if inv.X != x || inv.Y != y {
			continue
		}
		s.army = append(s.army[:i], s.army[i+1:]...)
		// Revealed members occupy the front of the slice
		if i < s.popped {
			s.popped--
		}
		return inv.Points
	}
	return 0
}

// NextLevel advances the level, clears the shot counter and repopulates
func (s *Swarm) NextLevel(width, height int) {
	s.level++
	s.shotsFired = 0
	s.Populate(width, height)
}

// Reset returns to level 1 with the base movement interval and repopulates
func (s *Swarm) Reset(width, height int) {
	s.level = 1
	s.shotsFired = 0
	s.direction = 1
	s.moveTimer.ResetWith(s.baseInterval)
	s.Populate(width, height)
}

// RecordShot counts a player shot toward this level's speed-up
func (s *Swarm) RecordShot() {
	s.shotsFired++
}

// AllKilled reports whether the population is empty
func (s *Swarm) AllKilled() bool {
	return len(s.army) == 0
}

// ReachedBottom reports whether any member reached the last row of a viewport of the given height
func (s *Swarm) ReachedBottom(height int) bool {
	for _, inv := range s.army {
		if inv.Y >= height-1 {
			return true
		}
	}
	return false
}

// Level returns the current level
func (s *Swarm) Level() int {
	return s.level
}

// Direction returns +1 when moving right, -1 when moving left
func (s *Swarm) Direction() int {
	return s.direction
}

// MoveInterval returns the current movement timer duration
func (s *Swarm) MoveInterval() time.Duration {
	return s.moveTimer.Duration()
}

// ShotsFired returns the shots recorded this level
func (s *Swarm) ShotsFired() int {
	return s.shotsFired
}

// Count returns the number of live members
func (s *Swarm) Count() int {
	return len(s.army)
}

// TotalCount returns the population placed by the last Populate
func (s *Swarm) TotalCount() int {
	return s.totalCount
}

// Revealed returns how many live members are visible
func (s *Swarm) Revealed() int {
	return s.popped
}

// Invaders returns a copy of the live members
func (s *Swarm) Invaders() []Invader {
	out := make([]Invader, len(s.army))
	copy(out, s.army)
	return out
}

// Draw writes visible members, alternating glyphs over the movement period
func (s *Swarm) Draw(frame *core.Frame) {
	glyph := rune(constants.GlyphInvaderClosed)
	if s.moveTimer.Fraction() > 0.5 {
		glyph = constants.GlyphInvaderOpen
	}
	for _, inv := range s.army {
		if inv.Visible {
			frame.Set(inv.X, inv.Y, glyph)
		}
	}
}
