package input

import (
	"testing"

	"DrawingPad/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) state.Point { return state.Point{X: x, Y: y} }

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{
		"down":  PointerDown,
		"move":  PointerMove,
		"up":    PointerUp,
		"leave": PointerLeave,
		"clear": Reset,
	} {
		got, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseKind("wiggle")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDispatchRedrawPolicy(t *testing.T) {
	redraws := 0
	h := state.NewHistory()
	c := NewController(h, func() { redraws++ })

	assert.False(t, c.Dispatch(Event{Kind: PointerMove, Pos: pt(1, 1)}))
	assert.False(t, c.Dispatch(Event{Kind: PointerUp}))
	assert.False(t, c.Dispatch(Event{Kind: PointerLeave}))
	assert.Equal(t, 0, redraws)

	assert.True(t, c.Dispatch(Event{Kind: PointerDown, Pos: pt(0, 0)}))
	assert.True(t, c.Dispatch(Event{Kind: PointerMove, Pos: pt(1, 0)}))
	assert.True(t, c.Dispatch(Event{Kind: PointerMove, Pos: pt(2, 0)}))
	assert.True(t, c.Dispatch(Event{Kind: PointerLeave}))
	assert.Equal(t, 4, redraws)

	assert.False(t, c.Dispatch(Event{Kind: PointerMove, Pos: pt(3, 0)}))
	assert.Equal(t, 4, redraws)

	assert.True(t, c.Dispatch(Event{Kind: Reset}))
	assert.Equal(t, 5, redraws)

	assert.False(t, c.Dispatch(Event{Kind: Kind(42)}))
	assert.Equal(t, 5, redraws)
}

func TestDispatchRecordsGestureInOrder(t *testing.T) {
	h := state.NewHistory()
	c := NewController(h, nil)

	c.Dispatch(Event{Kind: PointerDown, Pos: pt(0, 0)})
	for i := 1; i <= 5; i++ {
		c.Dispatch(Event{Kind: PointerMove, Pos: pt(float64(i), 0)})
	}
	c.Dispatch(Event{Kind: PointerUp})

	strokes := h.Strokes()
	require.Len(t, strokes, 1)
	require.Len(t, strokes[0].Points, 6)
	for i, p := range strokes[0].Points {
		assert.Equal(t, pt(float64(i), 0), p)
	}
}

func TestResetKeyDiscardsSketch(t *testing.T) {
	s := state.NewSketch()
	c := NewController(s, nil)

	c.Dispatch(Event{Kind: PointerDown, Pos: pt(1, 1)})
	c.Dispatch(Event{Kind: PointerMove, Pos: pt(2, 2)})
	c.Dispatch(Event{Kind: PointerUp})
	c.Dispatch(Event{Kind: Reset})
	c.Dispatch(Event{Kind: PointerDown, Pos: pt(10, 10)})
	c.Dispatch(Event{Kind: PointerMove, Pos: pt(11, 11)})
	c.Dispatch(Event{Kind: PointerUp})

	assert.Equal(t, []state.Point{pt(10, 10), pt(11, 11)}, s.Points())
}
