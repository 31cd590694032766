package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"BezierBoard/internal/config"
)

// RunApp opens the editor window and blocks until it is closed.
func RunApp(cfg config.Config) error {
	myApp := app.New()
	myWindow := myApp.NewWindow("Bezier Board")

	board, err := NewBoardWidget(cfg)
	if err != nil {
		return err
	}
	toolbar := NewToolbar(board, myWindow)

	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, board.Scroll())
	myWindow.SetContent(content)
	bindShortcuts(myWindow, board)

	myWindow.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)+80))
	myWindow.ShowAndRun()
	return nil
}

func bindShortcuts(w fyne.Window, board *BoardWidget) {
	w.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		switch e.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			board.DeleteLatest()
		}
	})
	w.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyS,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		board.SaveAll()
	})
}
