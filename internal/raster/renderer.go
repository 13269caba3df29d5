// Package raster repaints the native pad by rasterizing its path into a
// pixel buffer every frame.
package raster

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"DrawingPad/internal/state"

	"github.com/gogpu/gg"
)

var ErrInvalidSize = errors.New("invalid render target size")

// Background is the flat color every frame starts from.
var Background = gg.RGB(240.0/255, 240.0/255, 240.0/255)

// StrokeWidth is the pen width in pixels.
const StrokeWidth = 3.0

type Op int

const (
	MoveTo Op = iota
	LineTo
)

// Command is one path construction step.
type Command struct {
	Op   Op
	X, Y float64
}

// Commands flattens the sub-paths into move/line commands. Each sub-path
// opens with a MoveTo; a sub-path with one point yields no LineTo.
func Commands(path []state.Stroke) []Command {
	var cmds []Command
	for _, s := range path {
		for i, p := range s.Points {
			op := LineTo
			if i == 0 {
				op = MoveTo
			}
			cmds = append(cmds, Command{Op: op, X: p.X, Y: p.Y})
		}
	}
	return cmds
}

// Renderer owns the render target and the fixed pen.
type Renderer struct {
	dc  *gg.Context
	log *slog.Logger
}

func New(width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	r := &Renderer{
		dc:  gg.NewContext(width, height),
		log: slog.Default().With("component", "raster"),
	}
	r.log.Info("render target created", "width", width, "height", height)
	return r, nil
}

// Resize rebinds the render target to the new pixel size before the next
// Draw.
func (r *Renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	w, h := r.Size()
	if w == width && h == height {
		return nil
	}
	if err := r.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resize render target: %w", err)
	}
	r.log.Debug("render target resized", "width", width, "height", height)
	return nil
}

// Size returns the render target's pixel dimensions.
func (r *Renderer) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

// Draw clears the target, strokes the path and returns the finished frame.
func (r *Renderer) Draw(path []state.Stroke) (image.Image, error) {
	r.dc.ClearWithColor(Background)

	cmds := Commands(path)
	if len(cmds) > 0 {
		r.dc.SetStrokeBrush(gg.Solid(gg.Black))
		r.dc.SetLineWidth(StrokeWidth)
		r.dc.SetLineJoin(gg.LineJoinRound)
		for _, c := range cmds {
			switch c.Op {
			case MoveTo:
				r.dc.MoveTo(c.X, c.Y)
			case LineTo:
				r.dc.LineTo(c.X, c.Y)
			}
		}
		if err := r.dc.Stroke(); err != nil {
			return nil, fmt.Errorf("stroke path: %w", err)
		}
	}

	if err := r.dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flush frame: %w", err)
	}
	return r.dc.Image(), nil
}

func (r *Renderer) Close() error {
	return r.dc.Close()
}
