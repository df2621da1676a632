package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/systems"
)

// Action is one discrete input event applied at the start of a tick
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionQuit
)

// Outcome is the state of a run after a tick
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ViewportFor returns the playfield size for a terminal: minus the border, capped, never negative
func ViewportFor(termWidth, termHeight int) (int, int) {
	width := min(max(termWidth-constants.BorderSize, 0), constants.MaxViewportWidth)
	height := min(max(termHeight-constants.BorderSize, 0), constants.MaxViewportHeight)
	return width, height
}

// Game owns all simulation state of one run
// It is confined to the simulation goroutine; nothing else may touch it
type Game struct {
	cfg        *config.Config
	difficulty config.Difficulty
	sound      core.SoundPlayer

	player *systems.Player
	swarm  *systems.Swarm
	score  systems.Score
	level  systems.Level

	width, height int
	outcome       Outcome
	frameNumber   int64
}

// NewGame builds player and swarm from the difficulty profile
// Call Resize with the terminal size before the first Tick
func NewGame(cfg *config.Config, difficulty config.Difficulty, sound core.SoundPlayer) *Game {
	if sound == nil {
		sound = core.NopSound{}
	}
	return &Game{
		cfg:        cfg,
		difficulty: difficulty,
		sound:      sound,
		player:     systems.NewPlayer(difficulty),
		swarm:      systems.NewSwarm(difficulty, cfg.Swarm),
		level:      systems.NewLevel(),
		width:      -1,
		height:     -1,
	}
}

// Resize recomputes viewport-relative state when the terminal size changed
// Returns true when the viewport changed
func (g *Game) Resize(termWidth, termHeight int) bool {
	width, height := ViewportFor(termWidth, termHeight)
	if width == g.width && height == g.height {
		return false
	}

	first := g.width < 0
	g.width, g.height = width, height
	g.player.Center(width, height)
	g.swarm.Populate(width, height)

	if first {
		log.Printf("session start: difficulty=%s viewport=%dx%d", g.difficulty.Name, width, height)
	} else {
		log.Printf("viewport resized to %dx%d, level %d repopulated", width, height, g.swarm.Level())
	}
	return true
}

// Restart begins a new run with the same difficulty, keeping the viewport
func (g *Game) Restart() {
	g.player.Reset()
	g.player.Center(g.width, g.height)
	g.swarm.Reset(g.width, g.height)
	g.score = systems.Score{}
	g.level = systems.NewLevel()
	g.outcome = OutcomeRunning
	g.frameNumber = 0
}

// Tick advances the simulation by dt after applying actions in arrival order
func (g *Game) Tick(dt time.Duration, actions []Action) Outcome {
	if g.outcome != OutcomeRunning {
		return g.outcome
	}

	for _, action := range actions {
		switch action {
		case ActionMoveLeft:
			g.player.MoveLeft()
		case ActionMoveRight:
			g.player.MoveRight()
		case ActionFire:
			if g.player.Shoot() {
				g.swarm.RecordShot()
				g.sound.Play(core.SoundPew)
			}
		case ActionQuit:
			g.sound.Play(core.SoundLose)
			g.outcome = OutcomeQuit
			log.Printf("run quit at level %d, score %d", g.level.Value(), g.score.Value())
			return g.outcome
		}
	}

	g.player.Update(dt)
	if g.swarm.Update(dt, g.width) {
		g.sound.Play(core.SoundMove)
	}

	if points := systems.DetectHits(g.player, g.swarm); points > 0 {
		g.score.Add(points)
		g.sound.Play(core.SoundExplode)
	}

	g.evaluate()
	g.frameNumber++
	return g.outcome
}

// evaluate applies level clearance, victory and defeat
func (g *Game) evaluate() {
	// A viewport too small to place anyone is not a cleared level
	if g.swarm.TotalCount() > 0 && g.swarm.AllKilled() {
		g.sound.Play(core.SoundWin)
		if g.level.Value() >= g.cfg.MaxLevel {
			g.outcome = OutcomeWon
			log.Printf("run won at level %d, score %d", g.level.Value(), g.score.Value())
			return
		}
		g.level.Increment()
		g.swarm.NextLevel(g.width, g.height)
		log.Printf("level %d cleared, advancing to %d (%d invaders)", g.level.Value()-1, g.level.Value(), g.swarm.Count())
		return
	}

	if g.swarm.ReachedBottom(g.height) {
		g.sound.Play(core.SoundLose)
		g.outcome = OutcomeLost
		log.Printf("run lost at level %d, score %d", g.level.Value(), g.score.Value())
	}
}

// Compose draws the current state into a fresh frame
// Draw order is fixed: swarm, player and shots, then the HUD on top
func (g *Game) Compose() *core.Frame {
	frame := core.NewFrame(g.width, g.height)
	g.swarm.Draw(frame)
	g.player.Draw(frame)
	g.score.Draw(frame, constants.HUDRow)
	g.level.Draw(frame, constants.HUDRow)
	return frame
}

// Outcome returns the run state
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Score returns the points scored this run
func (g *Game) Score() int {
	return g.score.Value()
}

// Level returns the current level
func (g *Game) Level() int {
	return g.level.Value()
}

// Difficulty returns the profile the run was built with
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// Viewport returns the playfield size
func (g *Game) Viewport() (int, int) {
	return g.width, g.height
}

// FrameNumber returns the number of ticks simulated this run
func (g *Game) FrameNumber() int64 {
	return g.frameNumber
}

// Player exposes the player for inspection
func (g *Game) Player() *systems.Player {
	return g.player
}

// Swarm exposes the swarm for inspection
func (g *Game) Swarm() *systems.Swarm {
	return g.swarm
}
