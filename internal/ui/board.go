package ui

import (
	"image/color"
	"log/slog"
)

func (b *BoardWidget) ZoomIn() {
	b.setScale(b.scale * b.cfg.ZoomStep)
}

func (b *BoardWidget) ZoomOut() {
	b.setScale(b.scale / b.cfg.ZoomStep)
}

func (b *BoardWidget) ResetView() {
	b.setScale(1)
}

// Scale returns the board's zoom factor.
func (b *BoardWidget) Scale() float64 { return b.scale }

func (b *BoardWidget) setScale(f float64) {
	f = b.cfg.ClampScale(f)
	if err := b.editor.Rescale(f); err != nil {
		b.log.Warn("zoom rejected", slog.Any("err", err))
		return
	}
	b.scale = f
	b.changed()
	if b.scroll != nil {
		b.scroll.Refresh()
	}
}

// DeleteLatest undoes the newest placement.
func (b *BoardWidget) DeleteLatest() {
	if !b.editor.DeleteLatestCurve() {
		b.SetStatus("Nothing to delete")
		return
	}
	b.changed()
}

// SaveAll freezes every finished curve.
func (b *BoardWidget) SaveAll() {
	n := b.editor.SaveAllCurves()
	b.log.Info("curves saved", slog.Int("count", n))
	b.changed()
}

func (b *BoardWidget) SetColor(c color.Color) {
	b.editor.SetStrokeColor(c)
	b.Refresh()
}

func (b *BoardWidget) SetStroke(w float64) {
	b.editor.SetStrokeWidth(w)
	b.Refresh()
}
