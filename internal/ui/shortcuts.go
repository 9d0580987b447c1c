package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd+Shift+C: Copy snippet of the active tool
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyC,
		Modifier: fyne.KeyModifierSuper | fyne.KeyModifierShift,
	}, func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: copy snippet")
		w.CopyActive()
	})

	// Cmd+N: Add entry
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyN,
		Modifier: fyne.KeyModifierSuper,
	}, func(fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: add entry")
		w.AddEntryToActive()
	})

	// Cmd+1..3: Switch tool
	for i, key := range []fyne.KeyName{fyne.Key1, fyne.Key2, fyne.Key3} {
		index := i
		canvas.AddShortcut(&desktop.CustomShortcut{
			KeyName:  key,
			Modifier: fyne.KeyModifierSuper,
		}, func(fyne.Shortcut) {
			w.logger.Debug("keyboard shortcut: switch tool")
			w.SelectTool(index)
		})
	}

	w.logger.Info("keyboard shortcuts configured")
}
