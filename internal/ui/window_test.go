package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/shhac/docsnip/internal/app"
	"github.com/shhac/docsnip/internal/domain"
	"github.com/shhac/docsnip/internal/logging"
	"github.com/shhac/docsnip/internal/ui/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T) (*MainWindow, *app.App) {
	t.Helper()
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)

	a := app.NewWithLogger(fyneApp, app.DefaultConfig(), logging.NewNopLogger())
	// Keep the indicator set for the duration of the test.
	a.Publisher().SetScheduler(func(_ time.Duration, _ func()) func() { return func() {} })
	return NewMainWindow(fyneApp, a), a
}

func TestMainWindow_SelectTool(t *testing.T) {
	w, _ := newTestWindow(t)

	assert.Equal(t, domain.KindDocFooter, w.ActiveTool().Kind())

	w.SelectTool(1)
	assert.Equal(t, domain.KindRequestResponse, w.ActiveTool().Kind())

	w.SelectTool(2)
	assert.Equal(t, domain.KindButtonList, w.ActiveTool().Kind())

	w.SelectTool(7)
	assert.Equal(t, domain.KindButtonList, w.ActiveTool().Kind())
}

func TestMainWindow_AddEntryToActive(t *testing.T) {
	w, a := newTestWindow(t)
	state := a.State()

	w.AddEntryToActive()
	assert.Equal(t, 2, state.DocFooter.Related.Len())
	assert.NotNil(t, w.window.Canvas().Focused())

	w.SelectTool(2)
	w.AddEntryToActive()
	assert.Equal(t, 2, state.ButtonList.Items.Len())
	assert.Equal(t, 1, state.RequestResponse.Requests.Len())
}

func TestMainWindow_CopyActive(t *testing.T) {
	w, a := newTestWindow(t)
	state := a.State().DocFooter

	w.CopyActive()
	copied, err := state.Copied.Get()
	require.NoError(t, err)
	assert.False(t, copied, "invalid output must not be copied")

	state.Related.Update(1, func(l *domain.Link) {
		l.Title = "Intro"
		l.URL = "/docs/intro"
	})
	w.CopyActive()

	copied, err = state.Copied.Get()
	require.NoError(t, err)
	assert.True(t, copied)
	assert.Equal(t,
		"{% docfooter relatedLinks=[{ 'title': 'Intro', 'url': '/docs/intro' }] /%}",
		w.fyneApp.Clipboard().Content())
}

func TestLoadThemePreference(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	assert.Equal(t, settings.ThemeSystem, LoadThemePreference(fyneApp, ""))

	fyneApp.Preferences().SetString(settings.PrefTheme, settings.ThemeDark)
	assert.Equal(t, settings.ThemeDark, LoadThemePreference(fyneApp, ""))
	assert.Equal(t, settings.ThemeLight, LoadThemePreference(fyneApp, settings.ThemeLight))
}

func TestShortcutReferenceCoversTools(t *testing.T) {
	actions := make(map[string]bool)
	for _, s := range shortcutReference {
		actions[s.action] = true
	}
	for _, k := range domain.Kinds() {
		assert.True(t, actions[k.Title()], "missing shortcut for %s", k.Title())
	}
}
