package systems

import (
	"time"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// Player owns the cannon position, the fire-rate gate and a bounded pool of shots
type Player struct {
	x, y          int
	width, height int
	shots         []*Shot
	fireTimer     core.Timer
	maxShots      int
}

// NewPlayer creates a player from a difficulty profile; call Center before use
func NewPlayer(d config.Difficulty) *Player {
	maxShots := d.MaxShots
	if maxShots < 1 {
		maxShots = constants.DefaultMaxShots
	}
	fireRate := d.FireRate
	if fireRate <= 0 {
		fireRate = constants.DefaultFireRate
	}

	return &Player{
		shots:     make([]*Shot, 0, maxShots),
		fireTimer: core.NewTimer(fireRate),
		maxShots:  maxShots,
	}
}

// Center places the player mid-width near the bottom of a width x height viewport
func (p *Player) Center(width, height int) {
	p.width, p.height = width, height
	p.x = width / 2
	p.y = height - constants.PlayerBottomOffset
	if p.y < 0 {
		p.y = 0
	}
}

// MoveLeft steps one column left, wrapping to the right edge
func (p *Player) MoveLeft() {
	left, right := p.lane()
	if p.x <= left {
		p.x = right
		return
	}
	p.x--
}

// MoveRight steps one column right, wrapping to the left edge
func (p *Player) MoveRight() {
	left, right := p.lane()
	if p.x >= right {
		p.x = left
		return
	}
	p.x++
}

// lane returns the inclusive column range the player may occupy
func (p *Player) lane() (int, int) {
	right := p.width - 2
	if right < 1 {
		return 0, 0
	}
	return 1, right
}

// Shoot spawns a shot above the player if the pool has room and the fire-rate gate is open
func (p *Player) Shoot() bool {
	if len(p.shots) >= p.maxShots || !p.fireTimer.Finished() {
		return false
	}
	p.shots = append(p.shots, NewShot(p.x, p.y-1))
	p.fireTimer.Reset()
	return true
}

// Update advances the fire-rate gate and every shot, then drops dead shots
func (p *Player) Update(dt time.Duration) {
	p.fireTimer.Tick(dt)
	for _, shot := range p.shots {
		shot.Update(dt)
	}

	alive := p.shots[:0]
	for _, shot := range p.shots {
		if !shot.Dead() {
			alive = append(alive, shot)
		}
	}
	clear(p.shots[len(alive):])
	p.shots = alive
}

// Reset drops all shots and closes the fire-rate gate for one period
func (p *Player) Reset() {
	clear(p.shots)
	p.shots = p.shots[:0]
	p.fireTimer.Reset()
}

// Position returns the player cell
func (p *Player) Position() (int, int) {
	return p.x, p.y
}

// Shots returns the live shot pool; callers must not retain it across updates
func (p *Player) Shots() []*Shot {
	return p.shots
}

// MaxShots returns the pool capacity
func (p *Player) MaxShots() int {
	return p.maxShots
}

// CanShoot reports whether Shoot would succeed now
func (p *Player) CanShoot() bool {
	return len(p.shots) < p.maxShots && p.fireTimer.Finished()
}

// Draw writes the player and its shots into the frame
func (p *Player) Draw(frame *core.Frame) {
	frame.Set(p.x, p.y, constants.GlyphPlayer)
	for _, shot := range p.shots {
		shot.Draw(frame)
	}
}
