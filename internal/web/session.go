package web

import (
	"fmt"

	"DrawingPad/internal/input"
	"DrawingPad/internal/state"

	"github.com/google/uuid"
)

// Message is a browser event. X and Y are relative to the pad element.
type Message struct {
	Type string  `json:"type"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
}

// Frame carries a rendered app tree to the browser.
type Frame struct {
	HTML string `json:"html"`
}

// Session is the component state behind one connection. Events are applied
// one at a time by the connection's goroutine.
type Session struct {
	ID    string
	app   App
	ctrl  *input.Controller
	dirty bool
}

func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

func (s *Session) markDirty() { s.dirty = true }

// Handle applies msg and reports whether the page must be re-rendered.
func (s *Session) Handle(msg Message) (bool, error) {
	s.dirty = false
	if msg.Type == "toggle" {
		if s.app.Toggle() {
			s.ctrl = input.NewController(s.app.Pad, s.markDirty)
		} else {
			s.ctrl = nil
		}
		s.markDirty()
		return s.dirty, nil
	}

	kind, err := input.ParseKind(msg.Type)
	if err != nil {
		return false, fmt.Errorf("session %s: %w", s.ID, err)
	}
	if s.ctrl == nil {
		return false, nil
	}
	s.ctrl.Dispatch(input.Event{Kind: kind, Pos: state.Point{X: msg.X, Y: msg.Y}})
	return s.dirty, nil
}

// Pad returns the visible pad's history, or nil while the pad is hidden.
func (s *Session) Pad() *state.History { return s.app.Pad }

// Frame renders the current app tree.
func (s *Session) Frame() (Frame, error) {
	out, err := Render(RenderApp(&s.app))
	if err != nil {
		return Frame{}, fmt.Errorf("render session %s: %w", s.ID, err)
	}
	return Frame{HTML: out}, nil
}
