package state

import "log/slog"

// History is the stroke model of the web pad: completed strokes in drawing
// order plus the stroke being recorded.
type History struct {
	strokes []Stroke
	current Stroke
	drawing bool
}

var _ Model = (*History)(nil)

func NewHistory() *History {
	return &History{strokes: make([]Stroke, 0)}
}

// StartStroke replaces any unfinished stroke with a new one holding p.
func (h *History) StartStroke(p Point) {
	h.current = newStroke(p)
	h.drawing = true
}

func (h *History) AppendPoint(p Point) bool {
	if !h.drawing {
		return false
	}
	h.current.Points = append(h.current.Points, p)
	return true
}

// EndStroke commits the current stroke to the history. A single point still
// commits.
func (h *History) EndStroke() bool {
	if !h.drawing {
		return false
	}
	h.drawing = false
	if !h.current.Empty() {
		h.strokes = append(h.strokes, h.current)
		slog.Debug("stroke committed", "component", "state", "stroke", h.current.ID, "points", len(h.current.Points))
	}
	h.current = Stroke{}
	return true
}

func (h *History) Clear() {
	h.strokes = make([]Stroke, 0)
	h.current = Stroke{}
	h.drawing = false
}

func (h *History) Drawing() bool { return h.drawing }

// Strokes returns copies of the completed strokes.
func (h *History) Strokes() []Stroke {
	strokes := make([]Stroke, 0, len(h.strokes))
	for _, s := range h.strokes {
		strokes = append(strokes, s.clone())
	}
	return strokes
}

func (h *History) Len() int { return len(h.strokes) }

// Current returns a copy of the stroke being recorded.
func (h *History) Current() Stroke { return h.current.clone() }
