package modes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/engine"
)

// InputHandler translates terminal events into game actions
// It drains the shared event channel fed by the terminal poller
type InputHandler struct {
	events   <-chan tcell.Event
	bindings *BindingTable
}

// NewInputHandler creates a handler reading from events
func NewInputHandler(events <-chan tcell.Event, bindings *BindingTable) *InputHandler {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &InputHandler{
		events:   events,
		bindings: bindings,
	}
}

// Poll returns the actions queued since the last call, in arrival order, without blocking
// A closed event channel reads as a quit request
func (h *InputHandler) Poll() []engine.Action {
	var actions []engine.Action
	for {
		select {
		case ev, ok := <-h.events:
			if !ok {
				return append(actions, engine.ActionQuit)
			}
			if action, ok := h.Translate(ev); ok {
				actions = append(actions, action)
			}
		default:
			return actions
		}
	}
}

// Translate maps one event to an action; resize and unbound keys yield false
func (h *InputHandler) Translate(ev tcell.Event) (engine.Action, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.bindings.Action(ev)
	case *tcell.EventInterrupt:
		return engine.ActionQuit, true
	}
	return engine.ActionNone, false
}
