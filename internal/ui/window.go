package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/shhac/docsnip/internal/clipboard"
	"github.com/shhac/docsnip/internal/model"
	"github.com/shhac/docsnip/internal/ui/buttonlist"
	"github.com/shhac/docsnip/internal/ui/docfooter"
	"github.com/shhac/docsnip/internal/ui/requestresponse"
	"github.com/shhac/docsnip/internal/ui/settings"
)

// AppController defines the app-level operations the UI needs.
type AppController interface {
	State() *model.AppState
	Logger() *slog.Logger
	Publisher() *clipboard.Publisher
	ApplyResetDelay()
}

// MainWindow holds one tab per snippet tool.
type MainWindow struct {
	fyneApp fyne.App
	window  fyne.Window
	state   *model.AppState
	logger  *slog.Logger
	app     AppController

	tabs   *container.AppTabs
	tools  []model.Tool
	adders []func()

	docFooterPanel       *docfooter.Panel
	requestResponsePanel *requestresponse.Panel
	buttonListPanel      *buttonlist.Panel
}

// NewMainWindow creates the window with the three tool tabs:
//
//	┌ Doc Footer ┬ Request / Response ┬ Button List ┐
//	│  form (entries, add/remove, inline errors)    │
//	├───────────────────────────────────────────────┤
//	│  output preview + copy button                 │
//	└───────────────────────────────────────────────┘
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	w := &MainWindow{
		fyneApp: fyneApp,
		window:  fyneApp.NewWindow("docsnip - snippet builder"),
		state:   app.State(),
		logger:  app.Logger(),
		app:     app,
	}
	w.tools = w.state.Tools()

	w.docFooterPanel = docfooter.NewPanel(w.state.DocFooter, func() { w.copyTool(w.state.DocFooter) }, w.logger)
	w.requestResponsePanel = requestresponse.NewPanel(w.state.RequestResponse, func() { w.copyTool(w.state.RequestResponse) }, w.logger)
	w.buttonListPanel = buttonlist.NewPanel(w.state.ButtonList, func() { w.copyTool(w.state.ButtonList) }, w.logger)

	w.adders = []func(){
		w.docFooterPanel.AddRelatedLink,
		w.requestResponsePanel.AddRequest,
		w.buttonListPanel.AddButton,
	}

	w.tabs = container.NewAppTabs(
		container.NewTabItem(w.state.DocFooter.Kind().Title(), w.docFooterPanel),
		container.NewTabItem(w.state.RequestResponse.Kind().Title(), w.requestResponsePanel),
		container.NewTabItem(w.state.ButtonList.Kind().Title(), w.buttonListPanel),
	)
	w.tabs.OnSelected = func(item *container.TabItem) {
		w.logger.Debug("tool selected", slog.String("tool", item.Text))
	}

	w.window.SetContent(w.tabs)
	w.window.SetMainMenu(w.buildMainMenu())
	w.setupKeyboardShortcuts()
	w.window.Resize(fyne.NewSize(960, 720))

	return w
}

// copyTool publishes the tool's current output. Invalid output is ignored.
func (w *MainWindow) copyTool(tool model.Tool) {
	out, valid := tool.Current()
	if !valid {
		w.logger.Debug("copy ignored, output invalid", slog.String("tool", string(tool.Kind())))
		return
	}
	w.app.Publisher().Publish(out, valid, tool.Bindings().Copied)
}

// ActiveTool returns the tool of the selected tab.
func (w *MainWindow) ActiveTool() model.Tool {
	idx := w.tabs.SelectedIndex()
	if idx < 0 || idx >= len(w.tools) {
		return w.tools[0]
	}
	return w.tools[idx]
}

// SelectTool switches to the tab at index. Out-of-range indexes are ignored.
func (w *MainWindow) SelectTool(index int) {
	if index < 0 || index >= len(w.tools) {
		return
	}
	w.tabs.SelectIndex(index)
}

// CopyActive copies the output of the selected tool.
func (w *MainWindow) CopyActive() {
	w.copyTool(w.ActiveTool())
}

// AddEntryToActive appends an entry to the selected tool's primary list
// and focuses its first field.
func (w *MainWindow) AddEntryToActive() {
	idx := w.tabs.SelectedIndex()
	if idx < 0 || idx >= len(w.adders) {
		idx = 0
	}
	w.adders[idx]()
}

func (w *MainWindow) buildMainMenu() *fyne.MainMenu {
	prefs := fyne.NewMenuItem("Preferences…", func() {
		settings.ShowPreferencesDialog(w.fyneApp, w.window, settings.PreferencesCallbacks{
			OnThemeChange:      func(mode string) { ApplyTheme(w.fyneApp, mode) },
			OnResetDelayChange: w.app.ApplyResetDelay,
		})
	})

	return fyne.NewMainMenu(
		fyne.NewMenu("Edit",
			fyne.NewMenuItem("Copy Snippet", w.CopyActive),
			fyne.NewMenuItem("Add Entry", w.AddEntryToActive),
			fyne.NewMenuItemSeparator(),
			prefs,
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
			fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
		),
	)
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
