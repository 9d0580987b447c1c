package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/shhac/docsnip/internal/domain"
	"github.com/shhac/docsnip/internal/model"
	"github.com/shhac/docsnip/internal/snippet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldEntry(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	f := NewFieldEntry("Title", "Getting started")

	var got []string
	f.SetOnChanged(func(s string) { got = append(got, s) })
	test.Type(f.entry, "Go")

	assert.Equal(t, []string{"G", "Go"}, got)
	assert.Equal(t, "Go", f.Text())

	f.SetError("Title is required")
	assert.Equal(t, "Title is required", f.Error())
	assert.True(t, f.errorLabel.Visible())

	f.SetError("")
	assert.False(t, f.errorLabel.Visible())
}

func TestListEditor(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	list := model.NewLinkList()
	var built []int
	editor := NewListEditor("Links", "Add link", list, func(id int) fyne.CanvasObject {
		built = append(built, id)
		return widget.NewLabel("row")
	})

	require.Equal(t, 1, editor.RowCount())
	assert.False(t, editor.CanRemove(1), "single row cannot be removed")

	test.Tap(editor.addButton)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, 2, editor.RowCount())
	assert.True(t, editor.CanRemove(1))
	assert.True(t, editor.CanRemove(2))

	list.Update(1, func(l *domain.Link) { l.Title = "Guide" })
	assert.Equal(t, []int{1, 2}, built, "edits do not rebuild rows")

	test.Tap(editor.removes[1])
	assert.Equal(t, []int{2}, list.IDs())
	assert.Equal(t, 1, editor.RowCount())
	assert.False(t, editor.CanRemove(2))

	_, ok := editor.Row(1)
	assert.False(t, ok)
}

func TestCopyButton(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewOutputState()
	taps := 0
	b := NewCopyButton(state, func() { taps++ })

	assert.True(t, b.Disabled())
	assert.Equal(t, copyLabel, b.Text)

	_ = state.Valid.Set(true)
	_ = state.Copied.Set(true)
	b.update()
	assert.False(t, b.Disabled())
	assert.Equal(t, copiedLabel, b.Text)

	test.Tap(b)
	assert.Equal(t, 1, taps)

	_ = state.Copied.Set(false)
	b.update()
	assert.Equal(t, copyLabel, b.Text)
}

func TestOutputPanel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewOutputState()
	p := NewOutputPanel(state, func() {})
	assert.Equal(t, snippet.Placeholder, p.raw.Text)

	out := `{% buttonlist items=[{ "label": "Go", "link": "/docs/go" }] /%}`
	_ = state.Output.Set(out)
	p.update()

	assert.Equal(t, out, p.raw.Text)
	assert.Equal(t, out, p.highlighted.String())
}

func TestHighlightSnippet(t *testing.T) {
	assert.Nil(t, highlightSnippet(""))

	segs := highlightSnippet("{% docfooter /%}")
	require.Len(t, segs, 5)
	tag, ok := segs[2].(*widget.TextSegment)
	require.True(t, ok)
	assert.Equal(t, "docfooter", tag.Text)
	assert.True(t, tag.Style.TextStyle.Bold)
}

func TestRawView_BlocksEditing(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	v := NewRawView()
	v.SetContent("fixed")
	test.Type(v, "more")
	assert.Equal(t, "fixed", v.Text)

	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, "fixed", v.Text)

	// Edits that bypass key handling are reverted.
	v.Entry.SetText("pasted")
	assert.Equal(t, "fixed", v.Text)
	assert.Equal(t, "fixed", v.Content())
}

func TestStatusIndicator(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := model.NewOutputState()
	s := NewStatusIndicator(state)
	assert.Equal(t, statusInvalid, s.Text())

	_ = state.Valid.Set(true)
	s.update()
	assert.Equal(t, statusReady, s.Text())

	_ = state.Copied.Set(true)
	s.update()
	assert.Equal(t, statusCopied, s.Text())

	_ = state.Valid.Set(false)
	s.update()
	assert.Equal(t, statusInvalid, s.Text())
}

func TestCollapsibleSection(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	closed := NewCollapsibleSection("Extra", widget.NewLabel("body"), false)
	require.Len(t, closed.Items, 1)
	assert.False(t, closed.Items[0].Open)

	open := NewCollapsibleSection("Extra", widget.NewLabel("body"), true)
	assert.True(t, open.Items[0].Open)
}

func TestFieldEntry_FocusCanvas(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	f := NewFieldEntry("Title", "")
	w := test.NewWindow(f)
	defer w.Close()

	f.FocusCanvas()
	assert.Equal(t, f.entry, w.Canvas().Focused())
}
