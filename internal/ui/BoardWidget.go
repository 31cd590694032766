package ui

import (
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"BezierBoard/internal/config"
	"BezierBoard/internal/logging"
	"BezierBoard/internal/state"
)

// BoardWidget is the drawing area. It forwards pointer input to the curve
// editor and shows what the editor drew.
type BoardWidget struct {
	widget.BaseWidget

	cfg     config.Config
	editor  *state.Editor
	surface *canvasSurface
	log     *slog.Logger

	scale     float64
	statusBar *widget.Label
	scroll    *container.Scroll
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)

// NewBoardWidget returns a board drawing with cfg's style.
func NewBoardWidget(cfg config.Config) (*BoardWidget, error) {
	st, err := cfg.Style()
	if err != nil {
		return nil, err
	}
	b := &BoardWidget{
		cfg:       cfg,
		surface:   newCanvasSurface(),
		log:       logging.WithComponent("ui"),
		scale:     1,
		statusBar: widget.NewLabel("Ready"),
	}
	b.editor = state.NewEditor(b.surface, st)
	b.ExtendBaseWidget(b)
	b.updateStatus()
	return b, nil
}

// Editor returns the curve editor behind the board.
func (b *BoardWidget) Editor() *state.Editor { return b.editor }

// Scroll returns a scroll container showing the board. Zooming in grows the
// board past the viewport; the container clips it and scrolls.
func (b *BoardWidget) Scroll() *container.Scroll {
	if b.scroll == nil {
		b.scroll = container.NewScroll(b)
	}
	return b.scroll
}

// StatusBar returns the label the board reports its state on.
func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) updateStatus() {
	n := b.editor.Len()
	text := fmt.Sprintf("%d curves, zoom %.0f%%", n, b.scale*100)
	if b.editor.PendingSecondPoint() {
		text += " - right-click to place the end point"
	}
	b.SetStatus(text)
}

// changed refreshes the board after the editor redrew its surface.
func (b *BoardWidget) changed() {
	b.updateStatus()
	b.Refresh()
}

func toButton(mb desktop.MouseButton) (state.Button, bool) {
	switch mb {
	case desktop.MouseButtonPrimary:
		return state.ButtonPrimary, true
	case desktop.MouseButtonSecondary:
		return state.ButtonSecondary, true
	default:
		return 0, false
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	btn, ok := toButton(e.Button)
	if !ok {
		return
	}
	b.editor.PointerDown(btn, float64(e.Position.X), float64(e.Position.Y))
	b.changed()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	btn, ok := toButton(e.Button)
	if !ok {
		return
	}
	b.editor.PointerUp(btn)
	b.changed()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if !b.editor.Dragging() {
		return
	}
	b.editor.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	b.Refresh()
}

// Dragged is how fyne reports moves while the primary button is held.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.editor.Dragging() {
		return
	}
	b.editor.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {
	b.editor.PointerUp(state.ButtonPrimary)
	b.changed()
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		b.ZoomIn()
	} else if e.Scrolled.DY < 0 {
		b.ZoomOut()
	}
}

func (b *BoardWidget) Cursor() desktop.Cursor { return desktop.CrosshairCursor }

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	drawn := r.board.surface.Objects()
	objects := make([]fyne.CanvasObject, 0, len(drawn)+1)
	objects = append(objects, r.background)
	return append(objects, drawn...)
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

// MinSize is the configured board size at the current zoom.
func (r *boardWidgetRenderer) MinSize() fyne.Size {
	f := float32(r.board.scale)
	return fyne.NewSize(float32(r.board.cfg.Width)*f, float32(r.board.cfg.Height)*f)
}

func (r *boardWidgetRenderer) Destroy() {}
