package components

import (
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/docsnip/internal/model"
)

const (
	copyLabel   = "Copy to clipboard"
	copiedLabel = "Copied!"
)

// CopyButton is disabled while the output is invalid and reads "Copied!"
// while the copied indicator is set.
type CopyButton struct {
	widget.Button

	state *model.OutputState
}

// NewCopyButton creates a button bound to state. onCopy runs on tap.
func NewCopyButton(state *model.OutputState, onCopy func()) *CopyButton {
	b := &CopyButton{state: state}
	b.Text = copyLabel
	b.Icon = theme.ContentCopyIcon()
	b.Importance = widget.HighImportance
	b.OnTapped = onCopy
	b.ExtendBaseWidget(b)

	listener := binding.NewDataListener(b.update)
	state.Valid.AddListener(listener)
	state.Copied.AddListener(listener)
	b.update()

	return b
}

// update syncs enabled state and label with the bindings.
func (b *CopyButton) update() {
	valid, _ := b.state.Valid.Get()
	copied, _ := b.state.Copied.Get()

	if valid {
		b.Enable()
	} else {
		b.Disable()
	}

	if copied {
		b.SetText(copiedLabel)
		b.SetIcon(theme.ConfirmIcon())
	} else {
		b.SetText(copyLabel)
		b.SetIcon(theme.ContentCopyIcon())
	}
}
