package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// FieldEntry is a labelled text entry with its validation message shown
// underneath. The message is hidden while the field is valid.
type FieldEntry struct {
	widget.BaseWidget

	label      *widget.Label
	entry      *widget.Entry
	errorLabel *widget.Label

	onChanged func(string)
}

// NewFieldEntry creates a single-line field.
func NewFieldEntry(label, placeholder string) *FieldEntry {
	return newFieldEntry(label, placeholder, widget.NewEntry())
}

// NewMultiLineFieldEntry creates a monospace multi-line field for code.
func NewMultiLineFieldEntry(label, placeholder string) *FieldEntry {
	entry := widget.NewMultiLineEntry()
	entry.TextStyle = fyne.TextStyle{Monospace: true}
	entry.Wrapping = fyne.TextWrapOff
	entry.SetMinRowsVisible(5)
	return newFieldEntry(label, placeholder, entry)
}

func newFieldEntry(label, placeholder string, entry *widget.Entry) *FieldEntry {
	f := &FieldEntry{
		label:      widget.NewLabel(label),
		entry:      entry,
		errorLabel: widget.NewLabel(""),
	}
	f.label.TextStyle = fyne.TextStyle{Bold: true}
	f.entry.SetPlaceHolder(placeholder)
	f.errorLabel.Importance = widget.DangerImportance
	f.errorLabel.Wrapping = fyne.TextWrapWord
	f.errorLabel.Hide()

	f.entry.OnChanged = func(s string) {
		if f.onChanged != nil {
			f.onChanged(s)
		}
	}

	f.ExtendBaseWidget(f)
	return f
}

// SetOnChanged sets the callback run on every keystroke.
func (f *FieldEntry) SetOnChanged(fn func(string)) {
	f.onChanged = fn
}

// Text returns the current value.
func (f *FieldEntry) Text() string {
	return f.entry.Text
}

// SetText replaces the value, firing the change callback.
func (f *FieldEntry) SetText(s string) {
	f.entry.SetText(s)
}

// SetError shows msg under the field, or hides the message when msg is "".
func (f *FieldEntry) SetError(msg string) {
	f.errorLabel.SetText(msg)
	if msg == "" {
		f.errorLabel.Hide()
	} else {
		f.errorLabel.Show()
	}
}

// Error returns the message currently shown.
func (f *FieldEntry) Error() string {
	return f.errorLabel.Text
}

// FocusCanvas moves keyboard focus to the entry.
func (f *FieldEntry) FocusCanvas() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(f.entry); c != nil {
		c.Focus(f.entry)
	}
}

// CreateRenderer implements fyne.Widget.
func (f *FieldEntry) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(f.label, f.entry, f.errorLabel))
}
