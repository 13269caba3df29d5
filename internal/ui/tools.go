package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const hint = "Click and drag to draw. Press Space to clear."

func NewToolbar(pad *PadWidget) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), pad.Reset), // Clear
	)
	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel(hint),
		layout.NewSpacer(),
	)
}
