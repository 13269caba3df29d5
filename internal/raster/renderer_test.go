package raster

import (
	"testing"

	"DrawingPad/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stroke(points ...state.Point) state.Stroke {
	return state.Stroke{Points: points}
}

func TestCommandsSinglePointHasNoLine(t *testing.T) {
	cmds := Commands([]state.Stroke{stroke(state.Point{X: 4, Y: 4})})
	assert.Equal(t, []Command{{Op: MoveTo, X: 4, Y: 4}}, cmds)
}

func TestCommandsOpenEachSubPath(t *testing.T) {
	cmds := Commands([]state.Stroke{
		stroke(state.Point{X: 0, Y: 0}, state.Point{X: 10, Y: 5}),
		stroke(state.Point{X: 20, Y: 0}, state.Point{X: 30, Y: 5}),
	})
	assert.Equal(t, []Command{
		{Op: MoveTo, X: 0, Y: 0},
		{Op: LineTo, X: 10, Y: 5},
		{Op: MoveTo, X: 20, Y: 0},
		{Op: LineTo, X: 30, Y: 5},
	}, cmds)
	assert.Empty(t, Commands(nil))
}

func TestNewRejectsEmptyTarget(t *testing.T) {
	_, err := New(0, 600)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestResizeThenDrawUsesNewSize(t *testing.T) {
	r, err := New(800, 600)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	require.NoError(t, r.Resize(1024, 300))
	w, h := r.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 300, h)

	img, err := r.Draw(nil)
	require.NoError(t, err)
	assert.Equal(t, 1024, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	assert.ErrorIs(t, r.Resize(-1, 10), ErrInvalidSize)
	w, h = r.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 300, h)
}

func TestDrawPaintsBackgroundAndStroke(t *testing.T) {
	r, err := New(100, 100)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	img, err := r.Draw([]state.Stroke{
		stroke(state.Point{X: 10, Y: 50.5}, state.Point{X: 90, Y: 50.5}),
	})
	require.NoError(t, err)

	cr, cg, cb, _ := img.At(5, 5).RGBA()
	assert.InDelta(t, 240, cr>>8, 1)
	assert.InDelta(t, 240, cg>>8, 1)
	assert.InDelta(t, 240, cb>>8, 1)

	lr, lg, lb, _ := img.At(50, 50).RGBA()
	assert.Less(t, lr>>8, uint32(64))
	assert.Less(t, lg>>8, uint32(64))
	assert.Less(t, lb>>8, uint32(64))
}

func TestDrawSinglePointLeavesBackground(t *testing.T) {
	r, err := New(40, 40)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	img, err := r.Draw([]state.Stroke{stroke(state.Point{X: 20, Y: 20})})
	require.NoError(t, err)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if cr>>8 < 230 || cg>>8 < 230 || cb>>8 < 230 {
				t.Fatalf("pixel (%d,%d) drawn for a single-point stroke", x, y)
			}
		}
	}
}
