package app

import (
	"codeshell/internal/bus"
	"codeshell/pkg/types"
)

// Handler reacts to one action.
type Handler interface {
	Handle(types.Action)
}

const historySize = 32

// Dispatcher drains the bus once per frame and hands every action to the
// application state, the documents, the menu bar, the tool rail and the
// status bar, always in that order.
type Dispatcher struct {
	bus      *bus.Bus
	handlers [5]Handler
	history  []types.Action
}

func newDispatcher(b *bus.Bus, app, docs, menu, rail, status Handler) *Dispatcher {
	return &Dispatcher{bus: b, handlers: [5]Handler{app, docs, menu, rail, status}}
}

// Dispatch handles the actions queued before the call and returns how
// many there were. Actions published by handlers wait for the next call.
func (d *Dispatcher) Dispatch() int {
	actions := d.bus.DrainAll()
	for _, a := range actions {
		for _, h := range d.handlers {
			h.Handle(a)
		}
		d.remember(a)
	}
	return len(actions)
}

func (d *Dispatcher) remember(a types.Action) {
	d.history = append(d.history, a)
	if len(d.history) > historySize {
		d.history = d.history[len(d.history)-historySize:]
	}
}

// History returns the most recently dispatched actions, oldest first.
func (d *Dispatcher) History() []types.Action {
	return append([]types.Action(nil), d.history...)
}
