package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCommitsPointsInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17} {
		h := NewHistory()
		h.StartStroke(Point{X: 0, Y: 0})
		for i := 1; i <= n; i++ {
			assert.True(t, h.AppendPoint(Point{X: float64(i), Y: float64(2 * i)}))
		}
		require.True(t, h.EndStroke())

		strokes := h.Strokes()
		require.Len(t, strokes, 1)
		require.Len(t, strokes[0].Points, n+1)
		for i, p := range strokes[0].Points {
			assert.Equal(t, Point{X: float64(i), Y: float64(2 * i)}, p)
		}
		assert.True(t, h.Current().Empty())
		assert.False(t, h.Drawing())
	}
}

func TestHistoryAppendBeforeStartIsNoop(t *testing.T) {
	h := NewHistory()
	assert.False(t, h.AppendPoint(Point{X: 4, Y: 2}))
	assert.False(t, h.EndStroke())
	assert.Equal(t, 0, h.Len())
	assert.True(t, h.Current().Empty())
	assert.False(t, h.Drawing())
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	h.StartStroke(Point{X: 1, Y: 1})
	h.AppendPoint(Point{X: 2, Y: 2})
	h.EndStroke()
	h.StartStroke(Point{X: 5, Y: 5})
	h.AppendPoint(Point{X: 6, Y: 6})

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.True(t, h.Current().Empty())
	assert.False(t, h.Drawing())
	assert.False(t, h.AppendPoint(Point{X: 7, Y: 7}))
}

func TestHistorySinglePointCommits(t *testing.T) {
	h := NewHistory()
	h.StartStroke(Point{X: 3, Y: 3})
	h.EndStroke()

	strokes := h.Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, 0, strokes[0].Segments())
}

func TestHistoryCommittedStrokesAreNotShared(t *testing.T) {
	h := NewHistory()
	h.StartStroke(Point{X: 1, Y: 1})
	h.AppendPoint(Point{X: 2, Y: 2})
	h.EndStroke()

	got := h.Strokes()
	got[0].Points[0] = Point{X: 99, Y: 99}
	assert.Equal(t, Point{X: 1, Y: 1}, h.Strokes()[0].Points[0])
}

func TestHistoryRestartDropsUnfinishedStroke(t *testing.T) {
	h := NewHistory()
	h.StartStroke(Point{X: 1, Y: 1})
	h.AppendPoint(Point{X: 2, Y: 2})
	h.StartStroke(Point{X: 10, Y: 10})
	h.EndStroke()

	strokes := h.Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, []Point{{X: 10, Y: 10}}, strokes[0].Points)
}

func TestHistoryTwoStrokesThenClear(t *testing.T) {
	h := NewHistory()
	lengths := []int{h.Len()}

	h.StartStroke(Point{X: 0, Y: 0})
	h.AppendPoint(Point{X: 1, Y: 0})
	assert.False(t, h.Current().Empty())
	h.AppendPoint(Point{X: 2, Y: 0})
	h.EndStroke()
	assert.True(t, h.Current().Empty())
	lengths = append(lengths, h.Len())

	h.StartStroke(Point{X: 0, Y: 5})
	h.AppendPoint(Point{X: 1, Y: 5})
	h.EndStroke()
	lengths = append(lengths, h.Len())

	h.Clear()
	lengths = append(lengths, h.Len())

	assert.Equal(t, []int{0, 1, 2, 0}, lengths)
}
