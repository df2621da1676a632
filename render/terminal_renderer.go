package render

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/status"
)

// State is the renderer's redraw state
type State int

const (
	// StateUninitialized forces a full draw on the first frame
	StateUninitialized State = iota
	// StateSteady draws only changed cells
	StateSteady
	// StateResizing forces one full draw, then returns to StateSteady
	StateResizing
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSteady:
		return "steady"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// TerminalRenderer diffs consecutive frames and emits only changed cells
// The playfield is centered in the terminal and wrapped in a border
type TerminalRenderer struct {
	surface Surface
	last    *core.Frame
	state   State
	styler  func(rune) tcell.Style

	termWidth  int
	termHeight int

	frames *atomic.Int64
	cells  *atomic.Int64
	fulls  *atomic.Int64
}

// NewTerminalRenderer creates a renderer in the uninitialized state
func NewTerminalRenderer(surface Surface) *TerminalRenderer {
	return &TerminalRenderer{
		surface: surface,
		state:   StateUninitialized,
		styler:  StyleForGlyph,
	}
}

// SetStyler replaces the glyph to style mapping and forces a full redraw
func (r *TerminalRenderer) SetStyler(fn func(rune) tcell.Style) {
	r.styler = fn
	r.Invalidate()
}

// SetStats makes the renderer count frames, written cells and full redraws into reg
func (r *TerminalRenderer) SetStats(reg *status.Registry) {
	r.frames = reg.Int(status.FramesRendered)
	r.cells = reg.Int(status.CellsWritten)
	r.fulls = reg.Int(status.FullRedraws)
}

// State returns the current redraw state
func (r *TerminalRenderer) State() State {
	return r.state
}

// Invalidate requests a full redraw on the next frame
func (r *TerminalRenderer) Invalidate() {
	if r.state == StateSteady {
		r.state = StateResizing
	}
}

// Render draws frame and returns the number of playfield cells written
// Cells are written only where the glyph differs from the previous frame,
// unless this is the first frame, the terminal was resized, the frame
// dimensions changed, or force is set.
func (r *TerminalRenderer) Render(frame *core.Frame, force bool) int {
	termWidth, termHeight := r.surface.Size()
	if r.state != StateUninitialized && (termWidth != r.termWidth || termHeight != r.termHeight) {
		r.state = StateResizing
	}
	if r.last != nil && (r.last.Width() != frame.Width() || r.last.Height() != frame.Height()) {
		r.state = StateResizing
	}

	full := force || r.state != StateSteady || r.last == nil
	r.termWidth, r.termHeight = termWidth, termHeight

	frameWidth, frameHeight := frame.Width(), frame.Height()
	visibleWidth := min(frameWidth, max(termWidth-constants.BorderSize, 0))
	visibleHeight := min(frameHeight, max(termHeight-constants.BorderSize, 0))

	xOffset := max(termWidth-(frameWidth+constants.BorderSize), 0) / 2
	yOffset := max(termHeight-(frameHeight+constants.BorderSize), 0) / 2

	if full {
		r.surface.Fill(' ', StyleScreen)
		r.drawBorder(xOffset, yOffset, visibleWidth, visibleHeight)
	}

	written := 0
	for y := 0; y < visibleHeight; y++ {
		for x := 0; x < visibleWidth; x++ {
			glyph, _ := frame.Get(x, y)
			if !full {
				if prev, ok := r.last.Get(x, y); ok && prev == glyph {
					continue
				}
			}
			r.surface.SetContent(xOffset+1+x, yOffset+1+y, glyph, nil, r.styler(glyph))
			written++
		}
	}

	if full || written > 0 {
		r.surface.Show()
	}

	if r.frames != nil {
		r.frames.Add(1)
		r.cells.Add(int64(written))
		if full {
			r.fulls.Add(1)
		}
	}

	r.last = frame
	r.state = StateSteady
	return written
}

// drawBorder frames a width x height playfield whose top-left border corner is at (x, y)
func (r *TerminalRenderer) drawBorder(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	r.surface.SetContent(x, y, constants.BorderTopLeft, nil, StyleBorder)
	r.surface.SetContent(x+width+1, y, constants.BorderTopRight, nil, StyleBorder)
	r.surface.SetContent(x, y+height+1, constants.BorderBottomLeft, nil, StyleBorder)
	r.surface.SetContent(x+width+1, y+height+1, constants.BorderBottomRight, nil, StyleBorder)

	for i := 1; i <= width; i++ {
		r.surface.SetContent(x+i, y, constants.BorderHorizontal, nil, StyleBorder)
		r.surface.SetContent(x+i, y+height+1, constants.BorderHorizontal, nil, StyleBorder)
	}
	for i := 1; i <= height; i++ {
		r.surface.SetContent(x, y+i, constants.BorderVertical, nil, StyleBorder)
		r.surface.SetContent(x+width+1, y+i, constants.BorderVertical, nil, StyleBorder)
	}
}

// Run renders every frame received until the channel closes
// Returns the number of frames rendered
func (r *TerminalRenderer) Run(frames <-chan *core.Frame) int {
	count := 0
	for frame := range frames {
		r.Render(frame, false)
		count++
	}
	return count
}
