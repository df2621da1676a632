package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Frame is one rendered instant of the playfield: a rectangular grid of glyphs
// Every row has the same length; writes outside the grid are dropped
type Frame struct {
	width  int
	height int
	lines  [][]rune
}

// NewFrame creates a blank frame, negative dimensions saturate at zero
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := make([][]rune, height)
	for y := 0; y < height; y++ {
		lines[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			lines[y][x] = ' '
		}
	}

	return &Frame{
		width:  width,
		height: height,
		lines:  lines,
	}
}

// Width returns the frame width
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height
func (f *Frame) Height() int {
	return f.height
}

// InBounds reports whether (x, y) addresses a cell of the frame
func (f *Frame) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Get returns the glyph at the given position
func (f *Frame) Get(x, y int) (rune, bool) {
	if !f.InBounds(x, y) {
		return 0, false
	}
	return f.lines[y][x], true
}

// Set writes a glyph if the position is in bounds and reports whether it did
func (f *Frame) Set(x, y int, r rune) bool {
	if !f.InBounds(x, y) {
		return false
	}
	f.lines[y][x] = r
	return true
}

// SetString writes s left to right starting at (x, y), clipping at the edges
// Returns the number of glyphs written
func (f *Frame) SetString(x, y int, s string) int {
	n := 0
	for _, r := range s {
		if f.Set(x, y, r) {
			n++
		}
		x++
	}
	return n
}

// Clear blanks every cell
func (f *Frame) Clear() {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.lines[y][x] = ' '
		}
	}
}

// Line returns a copy of row y
func (f *Frame) Line(y int) []rune {
	if y < 0 || y >= f.height {
		return nil
	}
	line := make([]rune, f.width)
	copy(line, f.lines[y])
	return line
}

// String renders the frame as newline-separated rows
func (f *Frame) String() string {
	buf := make([]rune, 0, (f.width+1)*f.height)
	for y := 0; y < f.height; y++ {
		buf = append(buf, f.lines[y]...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
