package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func newTestToggle() (*ViewToggle, *widget.Label, *widget.Label) {
	preview := widget.NewLabel("Preview Content")
	raw := widget.NewLabel("Raw Content")
	return NewViewToggle(View{Label: "Preview", Content: preview}, View{Label: "Raw", Content: raw}), preview, raw
}

func TestNewViewToggle_DefaultsToFirstView(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	toggle, preview, _ := newTestToggle()

	assert.Equal(t, "Preview", toggle.Selected())
	assert.Equal(t, preview, toggle.contentStack.Objects[0])
}

func TestNewViewToggle_PanicsWithoutViews(t *testing.T) {
	assert.Panics(t, func() { NewViewToggle() })
}

func TestViewToggle_Select(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	toggle, preview, raw := newTestToggle()

	tests := []struct {
		name     string
		label    string
		expected string
		content  *widget.Label
	}{
		{"switch to raw", "Raw", "Raw", raw},
		{"switch back to preview", "Preview", "Preview", preview},
		{"unknown label ignored", "Diff", "Preview", preview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toggle.Select(tt.label)
			assert.Equal(t, tt.expected, toggle.Selected())
			assert.Equal(t, tt.content, toggle.contentStack.Objects[0])
		})
	}
}

func TestViewToggle_OnChange(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	toggle, _, _ := newTestToggle()

	var calls []string
	toggle.SetOnChange(func(label string) {
		calls = append(calls, label)
	})

	toggle.Select("Raw")
	toggle.Select("Raw")
	toggle.Select("Preview")

	assert.Equal(t, []string{"Raw", "Preview"}, calls, "selecting the current view does not fire")
}
