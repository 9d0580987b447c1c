package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/shhac/docsnip/internal/ui/settings"
)

// forcedVariant pins a theme to one variant regardless of the OS setting.
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// ApplyTheme sets the application theme. mode is "dark", "light" or
// "system"; anything else falls back to the system variant.
func ApplyTheme(a fyne.App, mode string) {
	switch mode {
	case settings.ThemeDark:
		a.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case settings.ThemeLight:
		a.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	default:
		a.Settings().SetTheme(theme.DefaultTheme())
	}
}

// LoadThemePreference applies override when set, otherwise the stored
// preference. It returns the mode applied.
func LoadThemePreference(a fyne.App, override string) string {
	mode := override
	if mode == "" {
		mode = a.Preferences().StringWithFallback(settings.PrefTheme, settings.ThemeSystem)
	}
	ApplyTheme(a, mode)
	return mode
}
