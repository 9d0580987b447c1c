package docfooter

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/shhac/docsnip/internal/logging"
	"github.com/shhac/docsnip/internal/model"
	"github.com/shhac/docsnip/internal/snippet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPanel(t *testing.T) (*Panel, *model.DocFooterState, *int) {
	t.Helper()
	state := model.NewDocFooterState()
	copies := 0
	p := NewPanel(state, func() { copies++ }, logging.NewNopLogger())
	return p, state, &copies
}

func TestPanel_TypingUpdatesOutput(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state, _ := newTestPanel(t)
	row := p.fields[state.Related][1]
	require.NotNil(t, row)

	row.title.SetText("Guide")
	assert.Equal(t, "", row.title.Error())
	assert.Equal(t, "URL is required", row.url.Error())

	row.url.SetText("/guide")
	assert.Equal(t, "URL must start with /docs/", row.url.Error())

	row.url.SetText("/docs/guide")
	assert.Equal(t, "", row.url.Error())

	out, valid := state.Current()
	assert.True(t, valid)
	assert.Equal(t, "{% docfooter relatedLinks=[{ 'title': 'Guide', 'url': '/docs/guide' }] /%}", out)
}

func TestPanel_SeeAlsoCheck(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state, _ := newTestPanel(t)
	assert.False(t, p.seeAlso.Visible())

	test.Tap(p.seeAlsoCheck)
	assert.True(t, state.IncludeSeeAlso())
	assert.True(t, p.seeAlso.Visible())

	out, _ := state.Current()
	assert.Equal(t, snippet.Placeholder, out)

	test.Tap(p.seeAlsoCheck)
	assert.False(t, state.IncludeSeeAlso())
	assert.False(t, p.seeAlso.Visible())
}

func TestPanel_AddAndRemoveRows(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state, _ := newTestPanel(t)
	p.AddRelatedLink()
	assert.Equal(t, 2, p.related.RowCount())
	assert.Len(t, p.fields[state.Related], 2)

	state.Related.Remove(2)
	assert.Equal(t, 1, p.related.RowCount())
	assert.Len(t, p.fields[state.Related], 1)
}

func TestPanel_SeeAlsoSectionStartsClosed(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _, _ := newTestPanel(t)
	require.Len(t, p.section.Items, 1)
	assert.Equal(t, "See also", p.section.Items[0].Title)
	assert.False(t, p.section.Items[0].Open)
}

func TestPanel_NewRowShowsErrors(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state, _ := newTestPanel(t)
	row := p.fields[state.Related][1]
	require.NotNil(t, row)
	assert.Equal(t, "Title is required", row.title.Error())
	assert.Equal(t, "URL is required", row.url.Error())
}

func TestPanel_AddRelatedLinkFocusesTitle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state, _ := newTestPanel(t)
	w := test.NewWindow(p)
	defer w.Close()

	p.AddRelatedLink()
	require.Contains(t, p.fields[state.Related], 2)
	assert.NotNil(t, w.Canvas().Focused())
}
