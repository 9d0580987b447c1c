package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// navigationKeys move the cursor or selection without editing.
var navigationKeys = map[fyne.KeyName]bool{
	fyne.KeyLeft: true, fyne.KeyRight: true, fyne.KeyUp: true, fyne.KeyDown: true,
	fyne.KeyHome: true, fyne.KeyEnd: true, fyne.KeyPageUp: true, fyne.KeyPageDown: true,
}

// RawView shows the unhighlighted snippet as selectable monospace text.
// The text only changes through SetContent; anything else that edits the
// entry, such as a paste from the context menu, is reverted.
type RawView struct {
	widget.Entry

	content string
}

// NewRawView creates an empty raw view.
func NewRawView() *RawView {
	v := &RawView{}
	v.MultiLine = true
	v.Wrapping = fyne.TextWrapBreak
	v.TextStyle = fyne.TextStyle{Monospace: true}
	v.OnChanged = v.revert
	v.ExtendBaseWidget(v)
	return v
}

// SetContent replaces the text shown.
func (v *RawView) SetContent(s string) {
	v.content = s
	v.SetText(s)
}

// Content returns the text last set with SetContent.
func (v *RawView) Content() string {
	return v.content
}

func (v *RawView) revert(text string) {
	if text != v.content {
		v.SetText(v.content)
	}
}

func (v *RawView) TypedRune(rune) {}

func (v *RawView) TypedKey(key *fyne.KeyEvent) {
	if navigationKeys[key.Name] {
		v.Entry.TypedKey(key)
	}
}

func (v *RawView) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		v.Entry.TypedShortcut(s)
	}
}
