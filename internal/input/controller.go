// Package input turns pointer and reset events into stroke model mutations.
package input

import (
	"errors"
	"fmt"

	"DrawingPad/internal/state"
)

type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	PointerLeave
	Reset
)

var kindNames = map[string]Kind{
	"down":  PointerDown,
	"move":  PointerMove,
	"up":    PointerUp,
	"leave": PointerLeave,
	"clear": Reset,
}

var ErrUnknownKind = errors.New("unknown event kind")

// ParseKind maps a wire name such as "down" or "clear" to its Kind.
func ParseKind(name string) (Kind, error) {
	k, ok := kindNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one input sample. Pos is ignored for Reset.
type Event struct {
	Kind Kind
	Pos  state.Point
}

// Handler applies an event to the model and reports whether the visible
// geometry changed.
type Handler func(m state.Model, ev Event) (redraw bool)

var defaultHandlers = map[Kind]Handler{
	PointerDown: func(m state.Model, ev Event) bool {
		m.StartStroke(ev.Pos)
		return true
	},
	PointerMove: func(m state.Model, ev Event) bool {
		return m.AppendPoint(ev.Pos)
	},
	PointerUp:    endStroke,
	PointerLeave: endStroke,
	Reset: func(m state.Model, _ Event) bool {
		m.Clear()
		return true
	},
}

func endStroke(m state.Model, _ Event) bool {
	return m.EndStroke()
}

// Controller dispatches events to handlers and marks the surface dirty at
// most once per event.
type Controller struct {
	model      state.Model
	handlers   map[Kind]Handler
	invalidate func()
}

// NewController binds model to the default dispatch table. invalidate is
// called once for every event that changed the model; it may be nil.
func NewController(model state.Model, invalidate func()) *Controller {
	handlers := make(map[Kind]Handler, len(defaultHandlers))
	for k, h := range defaultHandlers {
		handlers[k] = h
	}
	return &Controller{model: model, handlers: handlers, invalidate: invalidate}
}

// Dispatch applies ev and reports whether a redraw was requested.
func (c *Controller) Dispatch(ev Event) bool {
	h, ok := c.handlers[ev.Kind]
	if !ok {
		return false
	}
	if !h(c.model, ev) {
		return false
	}
	if c.invalidate != nil {
		c.invalidate()
	}
	return true
}

// Model returns the model the controller drives.
func (c *Controller) Model() state.Model { return c.model }
