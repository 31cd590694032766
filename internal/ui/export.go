package ui

import (
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"BezierBoard/internal/export"
)

type exportFunc func(w io.Writer, board *BoardWidget) error

func exportPNG(w io.Writer, board *BoardWidget) error {
	return export.PNG(w, board.editor, board.cfg.Width, board.cfg.Height)
}

func exportPDF(w io.Writer, board *BoardWidget) error {
	return export.PDF(w, board.editor, float64(board.cfg.Width), float64(board.cfg.Height))
}

func exportPNGDialog(board *BoardWidget, win fyne.Window) {
	showExportDialog(board, win, "board.png", "PNG", exportPNG)
}

func exportPDFDialog(board *BoardWidget, win fyne.Window) {
	showExportDialog(board, win, "board.pdf", "PDF", exportPDF)
}

func showExportDialog(board *BoardWidget, win fyne.Window, name, format string, fn exportFunc) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		if err := board.ExportTo(writer, format, fn); err != nil {
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFileName(name)
	d.Show()
}

// ExportTo writes the board with fn and closes writer.
func (b *BoardWidget) ExportTo(writer io.WriteCloser, format string, fn exportFunc) (err error) {
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := fn(writer, b); err != nil {
		b.log.Error("export failed", slog.String("format", format), slog.Any("err", err))
		b.SetStatus("Error exporting " + format)
		return fmt.Errorf("export %s: %w", format, err)
	}
	b.log.Info("board exported", slog.String("format", format), slog.Int("curves", b.editor.Len()))
	b.SetStatus(fmt.Sprintf("Exported %d curves as %s", b.editor.Len(), format))
	return nil
}
