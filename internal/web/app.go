package web

import (
	"DrawingPad/internal/state"

	"golang.org/x/net/html"
)

const (
	showLabel    = "🎨 Show Drawing Pad"
	hideLabel    = "Hide Drawing Pad"
	instructions = "Click and drag to draw. Press the Clear button to clear the canvas."
)

// App is the page state of one browser connection. The pad only exists
// while it is shown; hiding it drops its strokes.
type App struct {
	ShowPad bool
	Pad     *state.History
}

// Toggle shows or hides the pad and reports the new visibility.
func (a *App) Toggle() bool {
	a.ShowPad = !a.ShowPad
	if a.ShowPad {
		a.Pad = state.NewHistory()
	} else {
		a.Pad = nil
	}
	return a.ShowPad
}

// RenderApp builds the whole page body from the app state.
func RenderApp(a *App) *html.Node {
	label := showLabel
	if a.ShowPad {
		label = hideLabel
	}
	root := withChildren(
		element("div", "style", "text-align: center; margin-top: 20px;"),
		withChildren(element("button",
			"data-event", "toggle",
			"style", "padding: 10px 20px; font-size: 16px; background: #4CAF50; color: white; border: none; border-radius: 5px; cursor: pointer; margin-bottom: 20px;",
		), text(label)),
	)
	if !a.ShowPad || a.Pad == nil {
		return root
	}

	return withChildren(root, withChildren(
		element("div", "style", "margin: 20px auto; max-width: 800px;"),
		withChildren(element("h2", "style", "margin-bottom: 10px; color: #333;"), text("Drawing Pad")),
		withChildren(element("p", "style", "margin-bottom: 10px; color: #666;"), text(instructions)),
		withChildren(element("div", "style", "text-align: center;"),
			withChildren(element("button",
				"data-event", "clear",
				"style", "padding: 8px 16px; margin-bottom: 10px; background: #ff4444; color: white; border: none; border-radius: 4px; cursor: pointer;",
			), text("Clear Canvas")),
			withChildren(element("div",
				"style", "border: 2px solid #ccc; border-radius: 8px; display: inline-block; background: white; position: relative;",
			), RenderPad(a.Pad)),
		),
	))
}
