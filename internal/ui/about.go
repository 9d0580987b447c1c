package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/docsnip/internal/ui.Version=1.2.3"
var Version = "dev"

// ShowAboutDialog displays information about docsnip.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("docsnip", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Builds docfooter, request/response and button list snippets"),
		widget.NewLabel("Version "+Version),
	)
	dialog.ShowCustom("About docsnip", "Close", content, parent)
}

// shortcutReference lists every shortcut shown in the reference dialog.
var shortcutReference = []struct{ action, key string }{
	{"Copy Snippet", "⌘ ⇧ C"},
	{"Add Entry", "⌘ N"},
	{"Doc Footer", "⌘ 1"},
	{"Request / Response", "⌘ 2"},
	{"Button List", "⌘ 3"},
}

// ShowShortcutDialog displays a reference of all keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	grid := container.NewGridWithColumns(2)
	for _, s := range shortcutReference {
		grid.Add(widget.NewLabel(s.action))
		grid.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	dialog.ShowCustom("Keyboard Shortcuts", "Close", grid, parent)
}
