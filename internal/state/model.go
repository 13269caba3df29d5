package state

import "github.com/google/uuid"

// Point is a pointer sample in surface-local pixel space.
type Point struct{ X, Y float64 }

// Stroke is one pointer-down-to-up gesture. Point order is drawing order.
type Stroke struct {
	ID     string
	Points []Point
}

func newStroke(p Point) Stroke {
	return Stroke{ID: uuid.NewString(), Points: []Point{p}}
}

// Empty reports whether the stroke has no points.
func (s Stroke) Empty() bool { return len(s.Points) == 0 }

// Segments is the number of line segments the stroke renders as.
// A single point renders nothing.
func (s Stroke) Segments() int {
	if len(s.Points) < 2 {
		return 0
	}
	return len(s.Points) - 1
}

func (s Stroke) clone() Stroke {
	points := make([]Point, len(s.Points))
	copy(points, s.Points)
	return Stroke{ID: s.ID, Points: points}
}

// Model is the set of mutations the input controller drives.
// Every operation is total: calls that do not apply are ignored.
type Model interface {
	StartStroke(p Point)
	// AppendPoint adds p to the stroke in progress and reports whether
	// anything changed.
	AppendPoint(p Point) bool
	// EndStroke finishes the stroke in progress and reports whether
	// anything changed.
	EndStroke() bool
	Clear()
	Drawing() bool
}
