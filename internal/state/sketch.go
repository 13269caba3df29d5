package state

// Sketch is the stroke model of the native pad. Every gesture opens a new
// sub-path on one accumulating path; nothing is committed on pointer-up and
// only Clear drops earlier gestures.
type Sketch struct {
	path    []Stroke
	drawing bool
}

var _ Model = (*Sketch)(nil)

func NewSketch() *Sketch {
	return &Sketch{}
}

func (s *Sketch) StartStroke(p Point) {
	s.path = append(s.path, newStroke(p))
	s.drawing = true
}

func (s *Sketch) AppendPoint(p Point) bool {
	if !s.drawing || len(s.path) == 0 {
		return false
	}
	last := &s.path[len(s.path)-1]
	last.Points = append(last.Points, p)
	return true
}

func (s *Sketch) EndStroke() bool {
	if !s.drawing {
		return false
	}
	s.drawing = false
	return true
}

// Clear replaces the path with an empty one.
func (s *Sketch) Clear() {
	s.path = nil
	s.drawing = false
}

func (s *Sketch) Drawing() bool { return s.drawing }

// Path returns copies of the sub-paths in drawing order.
func (s *Sketch) Path() []Stroke {
	path := make([]Stroke, 0, len(s.path))
	for _, st := range s.path {
		path = append(path, st.clone())
	}
	return path
}

// Last returns a copy of the most recent sub-path.
func (s *Sketch) Last() (Stroke, bool) {
	if len(s.path) == 0 {
		return Stroke{}, false
	}
	return s.path[len(s.path)-1].clone(), true
}

// Points returns every recorded point across all sub-paths.
func (s *Sketch) Points() []Point {
	var points []Point
	for _, st := range s.path {
		points = append(points, st.Points...)
	}
	return points
}
