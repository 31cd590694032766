package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff},
	color.NRGBA{R: 0x20, G: 0x90, B: 0x30, A: 0xff},
	color.NRGBA{R: 0x20, G: 0x40, B: 0xd0, A: 0xff},
}

// NewToolbar builds the row of board actions shown above the board.
func NewToolbar(board *BoardWidget, w fyne.Window) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), board.DeleteLatest),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), board.SaveAll),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomInIcon(), board.ZoomIn),
		widget.NewToolbarAction(theme.ZoomOutIcon(), board.ZoomOut),
		widget.NewToolbarAction(theme.ZoomFitIcon(), board.ResetView),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FileImageIcon(), func() { exportPNGDialog(board, w) }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { exportPDFDialog(board, w) }),
	)

	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, board.SetColor))
	}

	strokeSlider := widget.NewSlider(1, 10)
	strokeSlider.Step = 0.5
	strokeSlider.SetValue(board.Editor().Style().StrokeWidth)
	strokeSlider.OnChanged = board.SetStroke
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), strokeSlider)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
