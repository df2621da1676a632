package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/constants"
)

// RGB color definitions
var (
	RgbScreenBackground = tcell.NewRGBColor(0, 0, 170)     // Blue outside the playfield
	RgbFieldBackground  = tcell.NewRGBColor(0, 0, 0)       // Black playfield
	RgbBorder           = tcell.NewRGBColor(255, 255, 255) // White frame
	RgbText             = tcell.NewRGBColor(230, 230, 230) // HUD and menu text
	RgbPlayer           = tcell.NewRGBColor(80, 220, 255)  // Cyan cannon
	RgbInvader          = tcell.NewRGBColor(50, 255, 50)   // Bright green swarm
	RgbShot             = tcell.NewRGBColor(255, 255, 0)   // Yellow shots
	RgbExplosion        = tcell.NewRGBColor(255, 80, 80)   // Red explosions
)

// Styles
var (
	StyleScreen = tcell.StyleDefault.Background(RgbScreenBackground).Foreground(RgbBorder)
	StyleBorder = tcell.StyleDefault.Background(RgbScreenBackground).Foreground(RgbBorder)
	StyleField  = tcell.StyleDefault.Background(RgbFieldBackground).Foreground(RgbText)
)

// StyleForGlyph returns the playfield style a glyph is drawn with
func StyleForGlyph(r rune) tcell.Style {
	switch r {
	case constants.GlyphPlayer:
		return StyleField.Foreground(RgbPlayer).Bold(true)
	case constants.GlyphInvaderOpen, constants.GlyphInvaderClosed:
		return StyleField.Foreground(RgbInvader)
	case constants.GlyphShot:
		return StyleField.Foreground(RgbShot)
	case constants.GlyphExplosion:
		return StyleField.Foreground(RgbExplosion).Bold(true)
	default:
		return StyleField
	}
}

// StyleText draws every glyph as plain playfield text
func StyleText(rune) tcell.Style {
	return StyleField
}
