package ui

import (
	"image"
	"log/slog"

	"DrawingPad/internal/input"
	"DrawingPad/internal/raster"
	"DrawingPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// PadWidget is the native drawing surface. Its path is repainted by the
// raster renderer on every refresh.
type PadWidget struct {
	widget.BaseWidget
	sketch *state.Sketch
	ctrl   *input.Controller
	target *raster.Renderer
	log    *slog.Logger
}

var _ fyne.Widget = (*PadWidget)(nil)
var _ fyne.Draggable = (*PadWidget)(nil)
var _ desktop.Mouseable = (*PadWidget)(nil)
var _ desktop.Hoverable = (*PadWidget)(nil)

func NewPadWidget(target *raster.Renderer) *PadWidget {
	p := &PadWidget{
		sketch: state.NewSketch(),
		target: target,
		log:    slog.Default().With("component", "pad"),
	}
	p.ctrl = input.NewController(p.sketch, p.Refresh)
	p.ExtendBaseWidget(p)
	return p
}

// toPixels converts a widget position to physical pixels, the space the
// render target works in.
func (p *PadWidget) toPixels(pos fyne.Position) state.Point {
	scale := float32(1)
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(p); c != nil {
			scale = c.Scale()
		}
	}
	return state.Point{X: float64(pos.X * scale), Y: float64(pos.Y * scale)}
}

func (p *PadWidget) dispatch(kind input.Kind, pos fyne.Position) {
	ev := input.Event{Kind: kind, Pos: p.toPixels(pos)}
	if !p.ctrl.Dispatch(ev) {
		return
	}
	p.log.Debug("redraw requested", "event", kind.String(), "x", ev.Pos.X, "y", ev.Pos.Y)
	if kind == input.PointerUp {
		if last, ok := p.sketch.Last(); ok {
			p.log.Debug("gesture finished", "stroke", last.ID, "points", len(last.Points))
		}
	}
}

// Reset discards the whole path.
func (p *PadWidget) Reset() {
	p.ctrl.Dispatch(input.Event{Kind: input.Reset})
	p.log.Info("path reset")
}

// Path returns a copy of the sub-paths drawn so far.
func (p *PadWidget) Path() []state.Stroke { return p.sketch.Path() }

func (p *PadWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		p.dispatch(input.PointerDown, e.Position)
	}
}

func (p *PadWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		p.dispatch(input.PointerUp, e.Position)
	}
}

func (p *PadWidget) MouseMoved(e *desktop.MouseEvent) {
	p.dispatch(input.PointerMove, e.Position)
}

// Dragged receives the moves of a pressed pointer.
func (p *PadWidget) Dragged(e *fyne.DragEvent) {
	p.dispatch(input.PointerMove, e.Position)
}

func (p *PadWidget) MouseOut() {
	p.ctrl.Dispatch(input.Event{Kind: input.PointerLeave})
}

func (p *PadWidget) MouseIn(*desktop.MouseEvent) {}
func (p *PadWidget) DragEnd()                    {}

func (p *PadWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &padRenderer{pad: p}
	r.raster = canvas.NewRaster(r.frame)
	return r
}

type padRenderer struct {
	pad    *PadWidget
	raster *canvas.Raster
	last   image.Image
}

// frame is called with the raster's current pixel size, so the target is
// rebound before anything is drawn into it.
func (r *padRenderer) frame(w, h int) image.Image {
	if err := r.pad.target.Resize(w, h); err != nil {
		r.pad.log.Warn("frame skipped", "err", err)
		return r.fallback()
	}
	img, err := r.pad.target.Draw(r.pad.sketch.Path())
	if err != nil {
		r.pad.log.Warn("frame skipped", "err", err)
		return r.fallback()
	}
	r.last = img
	return img
}

func (r *padRenderer) fallback() image.Image {
	if r.last == nil {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return r.last
}

func (r *padRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *padRenderer) Refresh() {
	canvas.Refresh(r.raster)
}

func (r *padRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *padRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *padRenderer) Destroy() {}
