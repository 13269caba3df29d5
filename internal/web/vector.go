// Package web serves the browser pad: pointer events arrive over a
// WebSocket and every change is answered with a freshly rendered markup tree.
package web

import (
	"strconv"
	"strings"

	"DrawingPad/internal/state"

	"golang.org/x/net/html"
)

const (
	PadWidth  = 800
	PadHeight = 600
)

// strokePaint is the fixed pen of every path element.
var strokePaint = []html.Attribute{
	{Key: "stroke", Val: "black"},
	{Key: "stroke-width", Val: "3"},
	{Key: "stroke-linecap", Val: "round"},
	{Key: "stroke-linejoin", Val: "round"},
	{Key: "fill", Val: "none"},
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PathData converts a stroke to SVG path commands: a move to the first point
// then a line to each following one. An empty stroke yields "".
func PathData(s state.Stroke) string {
	if s.Empty() {
		return ""
	}
	var b strings.Builder
	for i, p := range s.Points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(p.Y))
	}
	return b.String()
}

// pathElement returns nil for an empty stroke.
func pathElement(s state.Stroke) *html.Node {
	d := PathData(s)
	if d == "" {
		return nil
	}
	var attrs []html.Attribute
	if s.ID != "" {
		attrs = append(attrs, html.Attribute{Key: "id", Val: s.ID})
	}
	attrs = append(attrs, html.Attribute{Key: "d", Val: d})
	attrs = append(attrs, strokePaint...)
	return &html.Node{Type: html.ElementNode, Data: "path", Attr: attrs}
}

// RenderPad builds the drawing surface: one path per completed stroke in
// drawing order, then the stroke in progress.
func RenderPad(h *state.History) *html.Node {
	svg := element("svg",
		"id", "pad",
		"style", "display: block; cursor: crosshair;",
		"width", strconv.Itoa(PadWidth),
		"height", strconv.Itoa(PadHeight),
		"viewBox", "0 0 "+strconv.Itoa(PadWidth)+" "+strconv.Itoa(PadHeight),
	)
	for _, s := range h.Strokes() {
		if p := pathElement(s); p != nil {
			svg.AppendChild(p)
		}
	}
	if p := pathElement(h.Current()); p != nil {
		svg.AppendChild(p)
	}
	return svg
}
