package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"Drawsome/internal/export"
	"Drawsome/internal/state"
)

// showExportDialog asks for a destination and writes doc there. The file
// extension picks the format.
func showExportDialog(win fyne.Window, ex *export.Exporter, doc *state.Document, fileName string, logger *slog.Logger, status func(string)) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return
		}
		if err := writeExport(w, ex, doc); err != nil {
			logger.Error("export failed", slog.String("uri", w.URI().String()), slog.Any("error", err))
			dialog.ShowError(err, win)
			status("Export failed")
			return
		}
		status(fmt.Sprintf("Exported %s", w.URI().Name()))
	}, win)
	d.SetFileName(fileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".pdf"}))
	d.Show()
}

// writeExport encodes doc in the format matching the URI and closes w.
func writeExport(w fyne.URIWriteCloser, ex *export.Exporter, doc *state.Document) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", w.URI().Name(), cerr))
		}
	}()
	return ex.Write(w, export.FormatFor(w.URI().Name()), doc)
}
