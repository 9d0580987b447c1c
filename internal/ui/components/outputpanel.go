package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/docsnip/internal/model"
)

const (
	viewPreview = "Preview"
	viewRaw     = "Raw"
)

// OutputPanel shows the serialized snippet, highlighted or as selectable
// raw text, with the copy button underneath.
type OutputPanel struct {
	widget.BaseWidget

	state       *model.OutputState
	highlighted *widget.RichText
	raw         *RawView
	views       *ViewToggle
	copyButton  *CopyButton
	status      *StatusIndicator
}

// NewOutputPanel creates a panel bound to state. onCopy runs when the copy
// button is tapped.
func NewOutputPanel(state *model.OutputState, onCopy func()) *OutputPanel {
	p := &OutputPanel{
		state:       state,
		highlighted: widget.NewRichText(),
		raw:         NewRawView(),
	}
	p.highlighted.Wrapping = fyne.TextWrapBreak

	p.views = NewViewToggle(
		View{Label: viewPreview, Content: container.NewVScroll(p.highlighted)},
		View{Label: viewRaw, Content: p.raw},
	)
	p.copyButton = NewCopyButton(state, onCopy)
	p.status = NewStatusIndicator(state)

	state.Output.AddListener(binding.NewDataListener(p.update))
	p.update()

	p.ExtendBaseWidget(p)
	return p
}

// update renders the current output into both views.
func (p *OutputPanel) update() {
	out, _ := p.state.Output.Get()
	p.highlighted.Segments = highlightSnippet(out)
	p.highlighted.Refresh()
	p.raw.SetContent(out)
}

// CopyButton returns the copy button, for shortcuts and tests.
func (p *OutputPanel) CopyButton() *CopyButton {
	return p.copyButton
}

// CreateRenderer implements fyne.Widget.
func (p *OutputPanel) CreateRenderer() fyne.WidgetRenderer {
	header := widget.NewLabel("Output")
	header.TextStyle = fyne.TextStyle{Bold: true}

	return widget.NewSimpleRenderer(container.NewBorder(
		header,
		container.NewHBox(p.copyButton, p.status),
		nil,
		nil,
		p.views,
	))
}

// MinSize keeps the output readable in a split.
func (p *OutputPanel) MinSize() fyne.Size {
	return p.BaseWidget.MinSize().Max(fyne.NewSize(300, 160))
}
