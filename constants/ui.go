package constants

// Glyphs
const (
	GlyphPlayer        = 'A'
	GlyphShot          = '|'
	GlyphExplosion     = '*'
	GlyphInvaderOpen   = 'x'
	GlyphInvaderClosed = '+'
	GlyphBlank         = ' '
	GlyphMenuCursor    = '>'
)

// Border runes
const (
	BorderTopLeft     = '┏'
	BorderTopRight    = '┓'
	BorderBottomLeft  = '┗'
	BorderBottomRight = '┛'
	BorderHorizontal  = '━'
	BorderVertical    = '┃'
)

// Viewport Layout
const (
	// BorderSize is the number of cells the border takes on each axis (one per side)
	BorderSize = 2

	// MaxViewportWidth bounds the playfield on very wide terminals
	MaxViewportWidth = 100

	// MaxViewportHeight bounds the playfield on very tall terminals
	MaxViewportHeight = 50

	// HUDRow is the frame row carrying score and level
	HUDRow = 0
)

// Menu Layout
const (
	MenuTitleRow      = 1
	MenuDifficultyRow = 8
	MenuOptionsRow    = 10
	MenuOptionSpacing = 2
	MenuStatusRow     = 15
	MenuLeftMargin    = 2
)
