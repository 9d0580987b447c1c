// Package docfooter is the form for the docfooter snippet: related links
// plus optional see-also links.
package docfooter

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/docsnip/internal/domain"
	"github.com/shhac/docsnip/internal/model"
	"github.com/shhac/docsnip/internal/ui/components"
)

// Panel edits a DocFooterState.
type Panel struct {
	widget.BaseWidget

	state  *model.DocFooterState
	logger *slog.Logger

	related      *components.ListEditor[domain.Link]
	seeAlso      *components.ListEditor[domain.Link]
	seeAlsoCheck *widget.Check
	section      *widget.Accordion
	output       *components.OutputPanel

	fields map[*model.EntryList[domain.Link]]map[int]*linkFields
}

type linkFields struct {
	title *components.FieldEntry
	url   *components.FieldEntry
}

// NewPanel creates the docfooter form. onCopy publishes the current output.
func NewPanel(state *model.DocFooterState, onCopy func(), logger *slog.Logger) *Panel {
	p := &Panel{
		state:  state,
		logger: logger,
		fields: make(map[*model.EntryList[domain.Link]]map[int]*linkFields),
	}

	state.Related.AddListener(func() { p.prune(state.Related) })
	state.SeeAlso.AddListener(func() { p.prune(state.SeeAlso) })

	p.related = components.NewListEditor("Related links", "Add related link", state.Related, p.rowFactory(state.Related))
	p.seeAlso = components.NewListEditor("See also", "Add see-also link", state.SeeAlso, p.rowFactory(state.SeeAlso))

	p.seeAlsoCheck = widget.NewCheck("Include see-also links", func(checked bool) {
		p.logger.Debug("see-also toggled", slog.Bool("include", checked))
		state.SetIncludeSeeAlso(checked)
		p.updateSeeAlsoVisibility()
	})
	p.seeAlsoCheck.SetChecked(state.IncludeSeeAlso())
	p.updateSeeAlsoVisibility()

	p.section = components.NewCollapsibleSection("See also",
		container.NewVBox(p.seeAlsoCheck, p.seeAlso), state.IncludeSeeAlso())

	p.output = components.NewOutputPanel(state.OutputState, onCopy)

	p.ExtendBaseWidget(p)
	return p
}

// rowFactory builds a title/url row editing the given list.
func (p *Panel) rowFactory(list *model.EntryList[domain.Link]) components.RowFactory {
	return func(id int) fyne.CanvasObject {
		lf := &linkFields{
			title: components.NewFieldEntry("Title", "Getting started"),
			url:   components.NewFieldEntry("URL", domain.DocsPrefix+"getting-started"),
		}

		if current, ok := list.Get(id); ok {
			lf.title.SetText(current.Title)
			lf.url.SetText(current.URL)
		}
		lf.showErrors(list, id)

		lf.title.SetOnChanged(func(s string) {
			list.Update(id, func(l *domain.Link) { l.Title = s })
			lf.showErrors(list, id)
		})
		lf.url.SetOnChanged(func(s string) {
			list.Update(id, func(l *domain.Link) { l.URL = s })
			lf.showErrors(list, id)
		})

		if p.fields[list] == nil {
			p.fields[list] = make(map[int]*linkFields)
		}
		p.fields[list][id] = lf

		return container.NewGridWithColumns(2, lf.title, lf.url)
	}
}

// prune forgets the fields of removed rows.
func (p *Panel) prune(list *model.EntryList[domain.Link]) {
	rows := p.fields[list]
	for id := range rows {
		if _, ok := list.Get(id); !ok {
			delete(rows, id)
		}
	}
}

func (lf *linkFields) showErrors(list *model.EntryList[domain.Link], id int) {
	errs := list.Errors(id)
	lf.title.SetError(errs["title"])
	lf.url.SetError(errs["url"])
}

func (p *Panel) updateSeeAlsoVisibility() {
	if p.state.IncludeSeeAlso() {
		p.seeAlso.Show()
	} else {
		p.seeAlso.Hide()
	}
}

// AddRelatedLink appends a related link and focuses its title.
func (p *Panel) AddRelatedLink() {
	id := p.state.AddEntry()
	if lf, ok := p.fields[p.state.Related][id]; ok {
		lf.title.FocusCanvas()
	}
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	form := container.NewVScroll(container.NewVBox(
		p.related,
		widget.NewSeparator(),
		p.section,
	))

	split := container.NewVSplit(form, p.output)
	split.SetOffset(0.65)
	return widget.NewSimpleRenderer(split)
}
