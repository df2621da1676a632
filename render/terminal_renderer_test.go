package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/status"
)

// countingSurface records draw calls on top of a simulation screen
type countingSurface struct {
	tcell.SimulationScreen
	sets  int
	fills int
	shows int
}

func (c *countingSurface) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	c.sets++
	c.SimulationScreen.SetContent(x, y, primary, combining, style)
}

func (c *countingSurface) Fill(r rune, style tcell.Style) {
	c.fills++
	c.SimulationScreen.Fill(r, style)
}

func (c *countingSurface) Show() {
	c.shows++
	c.SimulationScreen.Show()
}

func (c *countingSurface) reset() {
	c.sets, c.fills, c.shows = 0, 0, 0
}

func newCountingSurface(t *testing.T, width, height int) *countingSurface {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return &countingSurface{SimulationScreen: screen}
}

func testFrame(width, height int) *core.Frame {
	frame := core.NewFrame(width, height)
	frame.Set(1, 1, constants.GlyphInvaderOpen)
	frame.Set(width/2, height-3, constants.GlyphPlayer)
	return frame
}

func TestRenderFirstFrameIsFull(t *testing.T) {
	surface := newCountingSurface(t, 30, 20)
	r := NewTerminalRenderer(surface)
	if r.State() != StateUninitialized {
		t.Fatalf("Expected uninitialized, got %v", r.State())
	}

	written := r.Render(testFrame(28, 18), false)
	if written != 28*18 {
		t.Errorf("Expected full draw of %d cells, got %d", 28*18, written)
	}
	if surface.fills != 1 {
		t.Errorf("Expected one clear, got %d", surface.fills)
	}
	if r.State() != StateSteady {
		t.Errorf("Expected steady after first frame, got %v", r.State())
	}

	// Border corners at the edge of a 30x20 terminal holding a 28x18 frame
	if c, _, _, _ := surface.GetContent(0, 0); c != constants.BorderTopLeft {
		t.Errorf("Expected top-left corner, got %q", c)
	}
	if c, _, _, _ := surface.GetContent(29, 19); c != constants.BorderBottomRight {
		t.Errorf("Expected bottom-right corner, got %q", c)
	}
	if c, _, _, _ := surface.GetContent(2, 2); c != constants.GlyphInvaderOpen {
		t.Errorf("Expected invader glyph at (2,2), got %q", c)
	}
}

func TestRenderIdenticalFrameEmitsNothing(t *testing.T) {
	surface := newCountingSurface(t, 30, 20)
	r := NewTerminalRenderer(surface)
	r.Render(testFrame(28, 18), false)
	surface.reset()

	written := r.Render(testFrame(28, 18), false)
	if written != 0 {
		t.Errorf("Expected 0 cells for an identical frame, got %d", written)
	}
	if surface.sets != 0 || surface.fills != 0 {
		t.Errorf("Expected no draw commands, got %d sets and %d fills", surface.sets, surface.fills)
	}
}

func TestRenderDiffOnlyChangedCells(t *testing.T) {
	surface := newCountingSurface(t, 30, 20)
	r := NewTerminalRenderer(surface)
	r.Render(testFrame(28, 18), false)
	surface.reset()

	next := testFrame(28, 18)
	next.Set(1, 1, constants.GlyphInvaderClosed)
	next.Set(5, 5, constants.GlyphShot)

	if written := r.Render(next, false); written != 2 {
		t.Errorf("Expected 2 changed cells, got %d", written)
	}
	if surface.sets != 2 {
		t.Errorf("Expected 2 SetContent calls, got %d", surface.sets)
	}
	if c, _, _, _ := surface.GetContent(6, 6); c != constants.GlyphShot {
		t.Errorf("Expected shot at (6,6), got %q", c)
	}
}

func TestRenderForceRedraws(t *testing.T) {
	surface := newCountingSurface(t, 30, 20)
	r := NewTerminalRenderer(surface)
	r.Render(testFrame(28, 18), false)

	if written := r.Render(testFrame(28, 18), true); written != 28*18 {
		t.Errorf("Expected forced full draw, got %d", written)
	}
}

func TestRenderResizeForcesOneFullDraw(t *testing.T) {
	surface := newCountingSurface(t, 30, 20)
	r := NewTerminalRenderer(surface)
	r.Render(testFrame(28, 18), false)

	surface.SetSize(40, 24)
	surface.reset()

	if written := r.Render(testFrame(28, 18), false); written != 28*18 {
		t.Errorf("Expected full draw after resize, got %d", written)
	}
	if surface.fills != 1 {
		t.Errorf("Expected a clear after resize, got %d", surface.fills)
	}
	if r.State() != StateSteady {
		t.Errorf("Expected steady after the resize redraw, got %v", r.State())
	}

	// Frame is centered: (40-30)/2 = 5, (24-20)/2 = 2
	if c, _, _, _ := surface.GetContent(5, 2); c != constants.BorderTopLeft {
		t.Errorf("Expected centered top-left corner at (5,2), got %q", c)
	}

	if written := r.Render(testFrame(28, 18), false); written != 0 {
		t.Errorf("Expected diff-only draw after the resize redraw, got %d", written)
	}
}

func TestRenderFrameSizeChangeIsFull(t *testing.T) {
	surface := newCountingSurface(t, 30, 20)
	r := NewTerminalRenderer(surface)
	r.Render(testFrame(28, 18), false)

	if written := r.Render(testFrame(20, 10), false); written != 20*10 {
		t.Errorf("Expected full draw for a new frame size, got %d", written)
	}
}

func TestRenderInvalidate(t *testing.T) {
	surface := newCountingSurface(t, 30, 20)
	r := NewTerminalRenderer(surface)

	r.Invalidate()
	if r.State() != StateUninitialized {
		t.Errorf("Expected invalidate to leave uninitialized state alone, got %v", r.State())
	}

	r.Render(testFrame(28, 18), false)
	r.Invalidate()
	if r.State() != StateResizing {
		t.Errorf("Expected resizing, got %v", r.State())
	}
	if written := r.Render(testFrame(28, 18), false); written != 28*18 {
		t.Errorf("Expected full draw after invalidate, got %d", written)
	}
}

func TestRenderClipsToSmallTerminal(t *testing.T) {
	surface := newCountingSurface(t, 12, 6)
	r := NewTerminalRenderer(surface)

	if written := r.Render(testFrame(28, 18), false); written != 10*4 {
		t.Errorf("Expected clipped draw of 40 cells, got %d", written)
	}

	tiny := newCountingSurface(t, 1, 1)
	r = NewTerminalRenderer(tiny)
	if written := r.Render(testFrame(28, 18), false); written != 0 {
		t.Errorf("Expected nothing drawn on a 1x1 terminal, got %d", written)
	}
}

func TestRunDrainsChannel(t *testing.T) {
	surface := newCountingSurface(t, 30, 20)
	r := NewTerminalRenderer(surface)

	frames := make(chan *core.Frame, 3)
	frames <- testFrame(28, 18)
	frames <- testFrame(28, 18)
	frames <- testFrame(28, 18)
	close(frames)

	if n := r.Run(frames); n != 3 {
		t.Errorf("Expected 3 frames rendered, got %d", n)
	}
}

func TestRenderStats(t *testing.T) {
	surface := newCountingSurface(t, 30, 20)
	r := NewTerminalRenderer(surface)
	reg := status.NewRegistry()
	r.SetStats(reg)

	r.Render(testFrame(28, 18), false)
	r.Render(testFrame(28, 18), false)
	next := testFrame(28, 18)
	next.Set(5, 5, constants.GlyphShot)
	r.Render(next, false)

	if got := reg.Value(status.FramesRendered); got != 3 {
		t.Errorf("Expected 3 frames, got %d", got)
	}
	if got := reg.Value(status.FullRedraws); got != 1 {
		t.Errorf("Expected 1 full redraw, got %d", got)
	}
	if got := reg.Value(status.CellsWritten); got != 28*18+1 {
		t.Errorf("Expected %d cells, got %d", 28*18+1, got)
	}
}
