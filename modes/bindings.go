package modes

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/engine"
)

// MenuCommand is a menu navigation intent
type MenuCommand uint8

const (
	MenuNone MenuCommand = iota
	MenuUp
	MenuDown
	MenuPrevDifficulty
	MenuNextDifficulty
	MenuSelect
	MenuExit
)

// BindingTable maps keys to game actions and menu commands
// Rune lookups are case-insensitive
type BindingTable struct {
	playKeys  map[tcell.Key]engine.Action
	playRunes map[rune]engine.Action
	menuKeys  map[tcell.Key]MenuCommand
	menuRunes map[rune]MenuCommand
}

// DefaultBindings returns arrows plus a/d and h/l for movement, space to fire
func DefaultBindings() *BindingTable {
	return &BindingTable{
		playKeys: map[tcell.Key]engine.Action{
			tcell.KeyLeft:   engine.ActionMoveLeft,
			tcell.KeyRight:  engine.ActionMoveRight,
			tcell.KeyEnter:  engine.ActionFire,
			tcell.KeyUp:     engine.ActionFire,
			tcell.KeyEscape: engine.ActionQuit,
			tcell.KeyCtrlC:  engine.ActionQuit,
			tcell.KeyCtrlQ:  engine.ActionQuit,
		},
		playRunes: map[rune]engine.Action{
			'a': engine.ActionMoveLeft,
			'h': engine.ActionMoveLeft,
			'd': engine.ActionMoveRight,
			'l': engine.ActionMoveRight,
			' ': engine.ActionFire,
			'q': engine.ActionQuit,
		},
		menuKeys: map[tcell.Key]MenuCommand{
			tcell.KeyUp:     MenuUp,
			tcell.KeyDown:   MenuDown,
			tcell.KeyLeft:   MenuPrevDifficulty,
			tcell.KeyRight:  MenuNextDifficulty,
			tcell.KeyEnter:  MenuSelect,
			tcell.KeyEscape: MenuExit,
			tcell.KeyCtrlC:  MenuExit,
			tcell.KeyCtrlQ:  MenuExit,
		},
		menuRunes: map[rune]MenuCommand{
			'w': MenuUp,
			'k': MenuUp,
			's': MenuDown,
			'j': MenuDown,
			'a': MenuPrevDifficulty,
			'h': MenuPrevDifficulty,
			'd': MenuNextDifficulty,
			'l': MenuNextDifficulty,
			' ': MenuSelect,
			'q': MenuExit,
		},
	}
}

// Action returns the game action bound to a key event
func (b *BindingTable) Action(ev *tcell.EventKey) (engine.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		action, ok := b.playRunes[unicode.ToLower(ev.Rune())]
		return action, ok
	}
	action, ok := b.playKeys[ev.Key()]
	return action, ok
}

// MenuCommand returns the menu command bound to a key event
func (b *BindingTable) MenuCommand(ev *tcell.EventKey) MenuCommand {
	if ev.Key() == tcell.KeyRune {
		return b.menuRunes[unicode.ToLower(ev.Rune())]
	}
	return b.menuKeys[ev.Key()]
}
