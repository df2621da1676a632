package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

const tickStep = 10 * time.Millisecond

// recordingSound collects played cues
type recordingSound struct {
	mu     sync.Mutex
	played []core.SoundType
}

func (r *recordingSound) Play(s core.SoundType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, s)
}

func (r *recordingSound) count(s core.SoundType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

// stillSwarm keeps the swarm parked so shots land on known cells
func stillSwarm() config.Difficulty {
	return config.Difficulty{
		Name:         "test",
		InvaderSpeed: time.Hour,
		FireRate:     tickStep,
		MaxShots:     3,
	}
}

func newTestGame(t *testing.T, d config.Difficulty, termWidth, termHeight int) (*Game, *recordingSound) {
	t.Helper()
	sound := &recordingSound{}
	g := NewGame(config.Default(), d, sound)
	if !g.Resize(termWidth, termHeight) {
		t.Fatalf("Expected first resize to report a change")
	}
	return g, sound
}

func repeat(a Action, n int) []Action {
	actions := make([]Action, n)
	for i := range actions {
		actions[i] = a
	}
	return actions
}

// clearLevelOne shoots the three level 1 invaders of a 60x40 viewport
func clearLevelOne(t *testing.T, g *Game) {
	t.Helper()

	// Invaders sit at x=2,30,58 on row 1; the player starts at x=30
	g.Tick(tickStep, nil)
	g.Tick(tickStep, []Action{ActionFire})
	g.Tick(tickStep, append(repeat(ActionMoveLeft, 28), ActionFire))
	g.Tick(tickStep, append(repeat(ActionMoveRight, 56), ActionFire))

	if shots := len(g.Player().Shots()); shots != 3 {
		t.Fatalf("Expected 3 shots in flight, got %d", shots)
	}

	for i := 0; i < 300 && g.Level() == 1 && g.Outcome() == OutcomeRunning; i++ {
		g.Tick(tickStep, nil)
	}
}

func TestViewportFor(t *testing.T) {
	tests := []struct {
		termW, termH int
		wantW, wantH int
	}{
		{62, 42, 60, 40},
		{80, 24, 78, 22},
		{300, 300, constants.MaxViewportWidth, constants.MaxViewportHeight},
		{2, 2, 0, 0},
		{1, 0, 0, 0},
		{-5, -5, 0, 0},
	}

	for _, tt := range tests {
		w, h := ViewportFor(tt.termW, tt.termH)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("ViewportFor(%d, %d): expected %dx%d, got %dx%d", tt.termW, tt.termH, tt.wantW, tt.wantH, w, h)
		}
	}
}

func TestGameStartsCentered(t *testing.T) {
	g, _ := newTestGame(t, stillSwarm(), 62, 42)

	w, h := g.Viewport()
	if w != 60 || h != 40 {
		t.Fatalf("Expected viewport 60x40, got %dx%d", w, h)
	}
	x, y := g.Player().Position()
	if x != 30 || y != 37 {
		t.Errorf("Expected player at (30,37), got (%d,%d)", x, y)
	}
	if g.Swarm().Count() != 3 {
		t.Errorf("Expected 3 invaders, got %d", g.Swarm().Count())
	}
	if g.Outcome() != OutcomeRunning {
		t.Errorf("Expected running, got %v", g.Outcome())
	}
}

func TestGameClearLevelAdvances(t *testing.T) {
	g, sound := newTestGame(t, stillSwarm(), 62, 42)

	clearLevelOne(t, g)

	if g.Level() != 2 {
		t.Fatalf("Expected level 2 after clearing level 1, got %d", g.Level())
	}
	if g.Score() != 3 {
		t.Errorf("Expected score 3, got %d", g.Score())
	}
	if g.Swarm().Count() != 5 {
		t.Errorf("Expected 5 invaders on level 2, got %d", g.Swarm().Count())
	}
	if g.Swarm().ShotsFired() != 0 {
		t.Errorf("Expected shot counter cleared on level change, got %d", g.Swarm().ShotsFired())
	}
	if got := sound.count(core.SoundPew); got != 3 {
		t.Errorf("Expected 3 pew cues, got %d", got)
	}
	if sound.count(core.SoundExplode) == 0 {
		t.Errorf("Expected explode cues for hits")
	}
	if got := sound.count(core.SoundWin); got != 1 {
		t.Errorf("Expected 1 win cue for the level clear, got %d", got)
	}
	if g.Outcome() != OutcomeRunning {
		t.Errorf("Expected run to continue, got %v", g.Outcome())
	}
}

func TestGameWinsAfterMaxLevel(t *testing.T) {
	sound := &recordingSound{}
	cfg := config.Default()
	cfg.MaxLevel = 1
	g := NewGame(cfg, stillSwarm(), sound)
	g.Resize(62, 42)

	clearLevelOne(t, g)

	if g.Outcome() != OutcomeWon {
		t.Fatalf("Expected won, got %v", g.Outcome())
	}
	if g.Level() != 1 {
		t.Errorf("Expected level to stay 1 on victory, got %d", g.Level())
	}
	if got := sound.count(core.SoundWin); got != 1 {
		t.Errorf("Expected 1 win cue, got %d", got)
	}
}

func TestGameLosesWhenSwarmLands(t *testing.T) {
	fast := config.Difficulty{Name: "fast", InvaderSpeed: tickStep, FireRate: time.Second, MaxShots: 1}
	g, sound := newTestGame(t, fast, 22, 12)

	moves := 0
	for i := 0; i < 10000 && g.Outcome() == OutcomeRunning; i++ {
		g.Tick(tickStep, nil)
		moves++
	}

	if g.Outcome() != OutcomeLost {
		t.Fatalf("Expected lost after %d ticks, got %v", moves, g.Outcome())
	}
	if got := sound.count(core.SoundLose); got != 1 {
		t.Errorf("Expected 1 lose cue, got %d", got)
	}
	if sound.count(core.SoundMove) == 0 {
		t.Errorf("Expected move cues while the swarm stepped")
	}

	_, h := g.Viewport()
	if !g.Swarm().ReachedBottom(h) {
		t.Errorf("Expected swarm at the bottom row")
	}

	// Finished runs ignore further ticks
	frames := g.FrameNumber()
	g.Tick(tickStep, []Action{ActionFire})
	if g.FrameNumber() != frames {
		t.Errorf("Expected no simulation after the run ended")
	}
}

func TestGameQuit(t *testing.T) {
	g, sound := newTestGame(t, stillSwarm(), 62, 42)

	g.Tick(tickStep, nil)
	outcome := g.Tick(tickStep, []Action{ActionQuit, ActionMoveLeft})
	if outcome != OutcomeQuit {
		t.Fatalf("Expected quit, got %v", outcome)
	}
	if x, _ := g.Player().Position(); x != 30 {
		t.Errorf("Expected actions after quit to be dropped, player at x=%d", x)
	}
	if got := sound.count(core.SoundLose); got != 1 {
		t.Errorf("Expected 1 lose cue on quit, got %d", got)
	}
}

func TestGameFireRespectsPool(t *testing.T) {
	d := stillSwarm()
	d.MaxShots = 2
	g, _ := newTestGame(t, d, 62, 42)

	for i := 0; i < 20; i++ {
		g.Tick(tickStep, repeat(ActionFire, 5))
		if n := len(g.Player().Shots()); n > 2 {
			t.Fatalf("Expected at most 2 shots, got %d", n)
		}
	}
	if g.Swarm().ShotsFired() != 2 {
		t.Errorf("Expected 2 recorded shots, got %d", g.Swarm().ShotsFired())
	}
}

func TestGameResizeRepopulates(t *testing.T) {
	g, _ := newTestGame(t, stillSwarm(), 62, 42)

	if g.Resize(62, 42) {
		t.Errorf("Expected unchanged size to report no change")
	}
	if !g.Resize(82, 26) {
		t.Fatalf("Expected resize to report a change")
	}

	w, h := g.Viewport()
	if w != 80 || h != 24 {
		t.Errorf("Expected viewport 80x24, got %dx%d", w, h)
	}
	x, y := g.Player().Position()
	if x != 40 || y != 21 {
		t.Errorf("Expected player recentered at (40,21), got (%d,%d)", x, y)
	}
	for _, inv := range g.Swarm().Invaders() {
		if inv.X < 0 || inv.X >= w || inv.Y < 0 || inv.Y >= h/2 {
			t.Errorf("Invader (%d,%d) outside the new viewport", inv.X, inv.Y)
		}
	}
}

func TestGameTinyViewportKeepsRunning(t *testing.T) {
	g, _ := newTestGame(t, stillSwarm(), 2, 2)

	for i := 0; i < 100; i++ {
		if outcome := g.Tick(tickStep, []Action{ActionFire, ActionMoveLeft}); outcome != OutcomeRunning {
			t.Fatalf("Expected an empty viewport to keep running, got %v", outcome)
		}
	}
	if frame := g.Compose(); frame.Width() != 0 || frame.Height() != 0 {
		t.Errorf("Expected empty frame, got %dx%d", frame.Width(), frame.Height())
	}
}

func TestGameCompose(t *testing.T) {
	g, _ := newTestGame(t, stillSwarm(), 62, 42)

	// One pop interval reveals the first invader
	g.Tick(constants.SwarmPopInterval, nil)
	frame := g.Compose()

	if frame.Width() != 60 || frame.Height() != 40 {
		t.Fatalf("Expected 60x40 frame, got %dx%d", frame.Width(), frame.Height())
	}
	if r, _ := frame.Get(30, 37); r != constants.GlyphPlayer {
		t.Errorf("Expected player glyph at (30,37), got %q", r)
	}
	if r, _ := frame.Get(2, 1); r != constants.GlyphInvaderOpen && r != constants.GlyphInvaderClosed {
		t.Errorf("Expected revealed invader at (2,1), got %q", r)
	}
	if r, _ := frame.Get(30, 1); r != constants.GlyphBlank {
		t.Errorf("Expected hidden invader at (30,1), got %q", r)
	}

	hud := string(frame.Line(constants.HUDRow))
	if len(hud) < 11 || hud[:11] != "SCORE: 0000" {
		t.Errorf("Expected score on the HUD row, got %q", hud)
	}
}

func TestGameRestart(t *testing.T) {
	g, _ := newTestGame(t, stillSwarm(), 62, 42)
	clearLevelOne(t, g)
	g.Tick(tickStep, []Action{ActionQuit})

	g.Restart()

	if g.Outcome() != OutcomeRunning {
		t.Errorf("Expected running after restart, got %v", g.Outcome())
	}
	if g.Score() != 0 || g.Level() != 1 {
		t.Errorf("Expected score 0 level 1, got %d / %d", g.Score(), g.Level())
	}
	if g.Swarm().Count() != 3 || g.Swarm().Level() != 1 {
		t.Errorf("Expected fresh level 1 swarm, got %d invaders at level %d", g.Swarm().Count(), g.Swarm().Level())
	}
	if len(g.Player().Shots()) != 0 {
		t.Errorf("Expected no shots after restart")
	}
	if x, _ := g.Player().Position(); x != 30 {
		t.Errorf("Expected player recentered, got x=%d", x)
	}
}
