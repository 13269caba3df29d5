package ui

import (
	"fmt"

	"DrawingPad/internal/config"
	"DrawingPad/internal/raster"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the native pad window and blocks until it is closed.
func RunApp(cfg config.Config) error {
	target, err := raster.New(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("could not create render target: %w", err)
	}
	defer target.Close()

	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	pad := NewPadWidget(target)
	bindResetKey(myWindow.Canvas(), pad)

	content := container.NewBorder(NewToolbar(pad), nil, nil, nil, pad)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
	return nil
}

// bindResetKey makes Space clear the pad.
func bindResetKey(c fyne.Canvas, pad *PadWidget) {
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeySpace {
			pad.Reset()
		}
	})
}
