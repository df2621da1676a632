package render

import "github.com/gdamore/tcell/v2"

// Surface is the part of a terminal screen the renderer draws on
// tcell.Screen satisfies it
type Surface interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Fill(r rune, style tcell.Style)
	Show()
}
