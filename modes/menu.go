package modes

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/render"
)

// MenuChoice is the menu result of one event
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewGame
	ChoiceExit
)

var menuOptions = []string{"New game", "Exit"}

var titleBanner = []string{
	` ___ _   ___     ___    ____  _____ ____  ____  `,
	`|_ _| \ | \ \   / / \  |  _ \| ____|  _ \/ ___| `,
	` | ||  \| |\ \ / / _ \ | | | |  _| | |_) \___ \ `,
	` | || |\  | \ V / ___ \| |_| | |___|  _ < ___) |`,
	`|___|_| \_|  \_/_/   \_\____/|_____|_| \_\____/ `,
}

const (
	titleFallback = "INVADERS"
	menuHint      = "arrows: choose  enter: confirm  q: exit"
)

// Menu is the start screen: option list, difficulty selector and last run summary
type Menu struct {
	bindings     *BindingTable
	selection    int
	difficulties []string
	difficulty   int
	status       string
}

// NewMenu creates a menu cycling over difficulty names, starting at current
func NewMenu(difficulties []string, current string, bindings *BindingTable) *Menu {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	idx := max(slices.Index(difficulties, current), 0)
	return &Menu{
		bindings:     bindings,
		difficulties: difficulties,
		difficulty:   idx,
	}
}

// HandleEvent applies one terminal event and reports whether the menu was left
func (m *Menu) HandleEvent(ev tcell.Event) MenuChoice {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.apply(m.bindings.MenuCommand(ev))
	case *tcell.EventInterrupt:
		return ChoiceExit
	}
	return ChoiceNone
}

func (m *Menu) apply(cmd MenuCommand) MenuChoice {
	switch cmd {
	case MenuUp:
		m.selection = (m.selection + len(menuOptions) - 1) % len(menuOptions)
	case MenuDown:
		m.selection = (m.selection + 1) % len(menuOptions)
	case MenuPrevDifficulty:
		if n := len(m.difficulties); n > 0 {
			m.difficulty = (m.difficulty + n - 1) % n
		}
	case MenuNextDifficulty:
		if n := len(m.difficulties); n > 0 {
			m.difficulty = (m.difficulty + 1) % n
		}
	case MenuSelect:
		if m.selection == 0 {
			return ChoiceNewGame
		}
		return ChoiceExit
	case MenuExit:
		return ChoiceExit
	}
	return ChoiceNone
}

// Difficulty returns the selected difficulty name
func (m *Menu) Difficulty() string {
	if len(m.difficulties) == 0 {
		return ""
	}
	return m.difficulties[m.difficulty]
}

// Selection returns the highlighted option index
func (m *Menu) Selection() int {
	return m.selection
}

// SetStatus sets the line shown under the options
func (m *Menu) SetStatus(status string) {
	m.status = status
}

// Status returns the line shown under the options
func (m *Menu) Status() string {
	return m.status
}

// Compose draws the menu into a fresh width x height frame
func (m *Menu) Compose(width, height int) *core.Frame {
	frame := core.NewFrame(width, height)
	m.Draw(frame)
	return frame
}

// Draw writes the menu into frame; rows that do not fit are clipped
func (m *Menu) Draw(frame *core.Frame) {
	width := frame.Width()

	bannerWidth := len(titleBanner[0])
	if width >= bannerWidth {
		x := (width - bannerWidth) / 2
		for i, line := range titleBanner {
			frame.SetString(x, constants.MenuTitleRow+i, line)
		}
	} else {
		frame.SetString(max((width-len(titleFallback))/2, 0), constants.MenuTitleRow, titleFallback)
	}

	frame.SetString(constants.MenuLeftMargin, constants.MenuDifficultyRow,
		fmt.Sprintf("Difficulty: < %s >", strings.ToUpper(m.Difficulty())))

	for i, option := range menuOptions {
		row := constants.MenuOptionsRow + i*constants.MenuOptionSpacing
		if i == m.selection {
			frame.Set(constants.MenuLeftMargin, row, constants.GlyphMenuCursor)
		}
		frame.SetString(constants.MenuLeftMargin+2, row, option)
	}

	if m.status != "" {
		frame.SetString(constants.MenuLeftMargin, constants.MenuStatusRow, m.status)
	}
	frame.SetString(constants.MenuLeftMargin, frame.Height()-1, menuHint)
}

// Run shows the menu on surface until an option is chosen or ctx ends
// Menu frames are drawn on the calling goroutine; no game runs concurrently
func (m *Menu) Run(ctx context.Context, events <-chan tcell.Event, surface render.Surface) MenuChoice {
	renderer := render.NewTerminalRenderer(surface)
	renderer.SetStyler(render.StyleText)
	draw := func() {
		width, height := engine.ViewportFor(surface.Size())
		renderer.Render(m.Compose(width, height), false)
	}

	draw()
	for {
		select {
		case <-ctx.Done():
			return ChoiceExit
		case ev, ok := <-events:
			if !ok {
				return ChoiceExit
			}
			if choice := m.HandleEvent(ev); choice != ChoiceNone {
				return choice
			}
			draw()
		}
	}
}
