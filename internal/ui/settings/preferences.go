package settings

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Preference keys shared with the app, which reads the delay at startup.
const (
	PrefTheme          = "appTheme"
	PrefCopyResetDelay = "copyResetDelayMs" // milliseconds
)

// Theme modes stored under PrefTheme.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

var themeLabels = []string{"System Default", "Light", "Dark"}

// ThemeLabel maps a stored mode to its selector label.
func ThemeLabel(mode string) string {
	switch mode {
	case ThemeDark:
		return "Dark"
	case ThemeLight:
		return "Light"
	default:
		return "System Default"
	}
}

// ThemeMode maps a selector label back to a stored mode.
func ThemeMode(label string) string {
	switch label {
	case "Dark":
		return ThemeDark
	case "Light":
		return ThemeLight
	default:
		return ThemeSystem
	}
}

// PreferencesCallbacks provides hooks for the preferences dialog to apply changes.
type PreferencesCallbacks struct {
	OnThemeChange      func(mode string)
	OnResetDelayChange func()
}

// preferencesForm holds the dialog inputs so saving can be tested without
// showing the dialog.
type preferencesForm struct {
	theme *widget.Select
	delay *widget.Entry
}

func newPreferencesForm(prefs fyne.Preferences) *preferencesForm {
	f := &preferencesForm{
		theme: widget.NewSelect(themeLabels, nil),
		delay: widget.NewEntry(),
	}
	f.theme.SetSelected(ThemeLabel(prefs.StringWithFallback(PrefTheme, ThemeSystem)))
	if ms := prefs.Int(PrefCopyResetDelay); ms > 0 {
		f.delay.SetText(strconv.Itoa(ms))
	}
	f.delay.SetPlaceHolder("2000")
	return f
}

// save stores the form values and fires the callbacks. A delay that is not
// a positive integer clears the stored value so the default applies.
func (f *preferencesForm) save(prefs fyne.Preferences, callbacks PreferencesCallbacks) {
	if ms, err := strconv.Atoi(f.delay.Text); err == nil && ms > 0 {
		prefs.SetInt(PrefCopyResetDelay, ms)
	} else {
		prefs.RemoveValue(PrefCopyResetDelay)
	}
	if callbacks.OnResetDelayChange != nil {
		callbacks.OnResetDelayChange()
	}

	mode := ThemeMode(f.theme.Selected)
	prefs.SetString(PrefTheme, mode)
	if callbacks.OnThemeChange != nil {
		callbacks.OnThemeChange(mode)
	}
}

// ShowPreferencesDialog displays the preferences dialog with General and Appearance tabs.
func ShowPreferencesDialog(a fyne.App, window fyne.Window, callbacks PreferencesCallbacks) {
	prefs := a.Preferences()
	form := newPreferencesForm(prefs)

	generalTab := container.NewTabItem("General", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Copied indicator (ms)", form.delay),
		),
		widget.NewLabel("How long the copy button shows \"Copied!\". DOCSNIP_COPY_RESET overrides this."),
	))

	appearanceTab := container.NewTabItem("Appearance", container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Theme", form.theme),
		),
	))

	tabs := container.NewAppTabs(generalTab, appearanceTab)

	dlg := dialog.NewCustomConfirm("Preferences", "Save", "Cancel", tabs, func(ok bool) {
		if ok {
			form.save(prefs, callbacks)
		}
	}, window)

	dlg.Resize(fyne.NewSize(500, 300))
	dlg.Show()
}
