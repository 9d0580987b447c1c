// Package buttonlist is the form for the button list snippet.
package buttonlist

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/docsnip/internal/domain"
	"github.com/shhac/docsnip/internal/model"
	"github.com/shhac/docsnip/internal/ui/components"
)

// Panel edits a ButtonListState.
type Panel struct {
	widget.BaseWidget

	state  *model.ButtonListState
	logger *slog.Logger

	items  *components.ListEditor[domain.Button]
	output *components.OutputPanel
	rows   map[int]*buttonFields
}

type buttonFields struct {
	label *components.FieldEntry
	link  *components.FieldEntry
}

// NewPanel creates the button list form. onCopy publishes the output.
func NewPanel(state *model.ButtonListState, onCopy func(), logger *slog.Logger) *Panel {
	p := &Panel{
		state:  state,
		logger: logger,
		rows:   make(map[int]*buttonFields),
	}

	state.Items.AddListener(p.prune)
	p.items = components.NewListEditor("Buttons", "Add button", state.Items, p.newButtonRow)
	p.output = components.NewOutputPanel(state.OutputState, onCopy)

	p.ExtendBaseWidget(p)
	return p
}

func (p *Panel) newButtonRow(id int) fyne.CanvasObject {
	bf := &buttonFields{
		label: components.NewFieldEntry("Label", "Get started"),
		link:  components.NewFieldEntry("Link", domain.DocsPrefix+"quickstart"),
	}

	if current, ok := p.state.Items.Get(id); ok {
		bf.label.SetText(current.Label)
		bf.link.SetText(current.Link)
	}
	p.showErrors(id, bf)

	bf.label.SetOnChanged(func(s string) {
		p.state.Items.Update(id, func(b *domain.Button) { b.Label = s })
		p.showErrors(id, bf)
	})
	bf.link.SetOnChanged(func(s string) {
		p.state.Items.Update(id, func(b *domain.Button) { b.Link = s })
		p.showErrors(id, bf)
	})

	p.rows[id] = bf
	return container.NewGridWithColumns(2, bf.label, bf.link)
}

func (p *Panel) showErrors(id int, bf *buttonFields) {
	errs := p.state.Items.Errors(id)
	bf.label.SetError(errs["label"])
	bf.link.SetError(errs["link"])
}

func (p *Panel) prune() {
	for id := range p.rows {
		if _, ok := p.state.Items.Get(id); !ok {
			delete(p.rows, id)
		}
	}
}

// AddButton appends a button and focuses its label.
func (p *Panel) AddButton() {
	id := p.state.AddEntry()
	if bf, ok := p.rows[id]; ok {
		bf.label.FocusCanvas()
	}
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	split := container.NewVSplit(container.NewVScroll(p.items), p.output)
	split.SetOffset(0.65)
	return widget.NewSimpleRenderer(split)
}
