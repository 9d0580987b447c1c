// Package requestresponse is the form for request/response code samples.
package requestresponse

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/docsnip/internal/catalog"
	"github.com/shhac/docsnip/internal/domain"
	"github.com/shhac/docsnip/internal/model"
	"github.com/shhac/docsnip/internal/snippet"
	"github.com/shhac/docsnip/internal/ui/components"
)

// Panel edits a RequestResponseState.
type Panel struct {
	widget.BaseWidget

	state  *model.RequestResponseState
	logger *slog.Logger

	methodSelect *widget.Select
	requests     *components.ListEditor[domain.RequestBlock]
	response     *components.FieldEntry
	formatButton *widget.Button
	output       *components.OutputPanel

	rows map[int]*requestFields
}

type requestFields struct {
	language *widget.Select
	code     *components.FieldEntry
}

// NewPanel creates the request/response form. onCopy publishes the output.
func NewPanel(state *model.RequestResponseState, onCopy func(), logger *slog.Logger) *Panel {
	p := &Panel{
		state:  state,
		logger: logger,
		rows:   make(map[int]*requestFields),
	}

	p.methodSelect = widget.NewSelect(catalog.Methods(), func(m string) {
		state.SetMethod(m)
	})
	p.methodSelect.SetSelected(state.Method())

	state.Requests.AddListener(p.prune)
	p.requests = components.NewListEditor("Requests", "Add request", state.Requests, p.newRequestRow)

	p.response = components.NewMultiLineFieldEntry("Response", `{"id": 1}`)
	p.response.SetText(state.Response().Body)
	p.response.SetError(state.ResponseError())
	p.response.SetOnChanged(func(s string) {
		state.SetResponse(s)
		p.response.SetError(state.ResponseError())
	})

	p.formatButton = widget.NewButtonWithIcon("Format JSON", theme.DocumentIcon(), p.FormatResponse)
	p.formatButton.Importance = widget.LowImportance

	p.output = components.NewOutputPanel(state.OutputState, onCopy)

	p.ExtendBaseWidget(p)
	return p
}

func (p *Panel) newRequestRow(id int) fyne.CanvasObject {
	rf := &requestFields{
		code: components.NewMultiLineFieldEntry("Code", "curl https://api.example.com/v1/items"),
	}

	labels, byLabel, byName := languageLabels()
	rf.language = widget.NewSelect(labels, nil)

	if current, ok := p.state.Requests.Get(id); ok {
		rf.language.SetSelected(byName[current.Language])
		rf.code.SetText(current.Code)
	}
	rf.code.SetError(p.state.Requests.Errors(id)["code"])

	// Wired after the initial selection so building a row never edits it.
	rf.language.OnChanged = func(label string) {
		name := byLabel[label]
		p.state.Requests.Update(id, func(r *domain.RequestBlock) { r.Language = name })
	}

	rf.code.SetOnChanged(func(s string) {
		p.state.Requests.Update(id, func(r *domain.RequestBlock) { r.Code = s })
		rf.code.SetError(p.state.Requests.Errors(id)["code"])
	})

	p.rows[id] = rf

	return container.NewBorder(
		container.NewHBox(widget.NewLabel("Language"), rf.language),
		nil, nil, nil,
		rf.code,
	)
}

// languageLabels returns the select options plus label<->name lookups.
func languageLabels() ([]string, map[string]string, map[string]string) {
	langs := catalog.Languages()
	labels := make([]string, 0, len(langs))
	byLabel := make(map[string]string, len(langs))
	byName := make(map[string]string, len(langs))
	for _, l := range langs {
		label := l.Label
		if label == "" {
			label = l.Name
		}
		labels = append(labels, label)
		byLabel[label] = l.Name
		byName[l.Name] = label
	}
	return labels, byLabel, byName
}

func (p *Panel) prune() {
	for id := range p.rows {
		if _, ok := p.state.Requests.Get(id); !ok {
			delete(p.rows, id)
		}
	}
}

// FormatResponse re-indents a JSON response in place.
func (p *Panel) FormatResponse() {
	body := p.state.Response().Body
	formatted := snippet.FormatResponse(body)
	if formatted == body {
		return
	}
	p.logger.Debug("response formatted as JSON")
	p.response.SetText(formatted)
}

// AddRequest appends a request block and focuses its code field.
func (p *Panel) AddRequest() {
	id := p.state.AddEntry()
	if rf, ok := p.rows[id]; ok {
		rf.code.FocusCanvas()
	}
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	form := container.NewVScroll(container.NewVBox(
		widget.NewForm(widget.NewFormItem("Method", p.methodSelect)),
		widget.NewSeparator(),
		p.requests,
		widget.NewSeparator(),
		p.response,
		container.NewHBox(p.formatButton),
	))

	split := container.NewVSplit(form, p.output)
	split.SetOffset(0.65)
	return widget.NewSimpleRenderer(split)
}
