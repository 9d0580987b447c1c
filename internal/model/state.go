package model

import (
	"fyne.io/fyne/v2/data/binding"

	"github.com/shhac/docsnip/internal/catalog"
	"github.com/shhac/docsnip/internal/domain"
	"github.com/shhac/docsnip/internal/snippet"
	"github.com/shhac/docsnip/internal/validate"
)

// Tool is the part of every tool state the window and shortcuts need.
type Tool interface {
	Kind() domain.Kind
	// Current returns the serialized output and whether it may be published.
	Current() (string, bool)
	// AddEntry appends an entry to the tool's primary list and returns its id.
	AddEntry() int
	Bindings() *OutputState
}

// OutputState holds the bindings shared by every tool.
type OutputState struct {
	Output binding.String // serialized snippet or the placeholder
	Valid  binding.Bool   // gates the copy action
	Copied binding.Bool   // transient "copied" indicator
}

// NewOutputState creates an OutputState starting out invalid.
func NewOutputState() *OutputState {
	output := binding.NewString()
	_ = output.Set(snippet.Placeholder)

	return &OutputState{
		Output: output,
		Valid:  binding.NewBool(),
		Copied: binding.NewBool(),
	}
}

func (o *OutputState) publish(out string, valid bool) {
	_ = o.Output.Set(out)
	_ = o.Valid.Set(valid)
}

// AppState groups the state of all tools.
type AppState struct {
	DocFooter       *DocFooterState
	RequestResponse *RequestResponseState
	ButtonList      *ButtonListState
}

// NewAppState creates fresh state for every tool.
func NewAppState() *AppState {
	return &AppState{
		DocFooter:       NewDocFooterState(),
		RequestResponse: NewRequestResponseState(),
		ButtonList:      NewButtonListState(),
	}
}

// Tools returns the tool states in tab order.
func (s *AppState) Tools() []Tool {
	return []Tool{s.DocFooter, s.RequestResponse, s.ButtonList}
}

// NewLinkList creates a list of docfooter links.
func NewLinkList() *EntryList[domain.Link] {
	return NewEntryList(ListSpec[domain.Link]{
		New:      func(id int) domain.Link { return domain.Link{ID: id} },
		ID:       func(l domain.Link) int { return l.ID },
		Validate: validate.LinkErrors,
	})
}

// DocFooterState is the state of the docfooter tool.
type DocFooterState struct {
	*OutputState

	Related *EntryList[domain.Link]
	SeeAlso *EntryList[domain.Link]

	includeSeeAlso bool
}

// NewDocFooterState creates a docfooter with one blank related link.
func NewDocFooterState() *DocFooterState {
	s := &DocFooterState{
		OutputState: NewOutputState(),
		Related:     NewLinkList(),
		SeeAlso:     NewLinkList(),
	}
	s.Related.AddListener(s.refresh)
	s.SeeAlso.AddListener(s.refresh)
	s.refresh()
	return s
}

func (s *DocFooterState) Kind() domain.Kind { return domain.KindDocFooter }
func (s *DocFooterState) Bindings() *OutputState { return s.OutputState }
func (s *DocFooterState) AddEntry() int { return s.Related.Add().ID }
func (s *DocFooterState) IncludeSeeAlso() bool { return s.includeSeeAlso }

// SetIncludeSeeAlso toggles whether see-also links are validated and emitted.
func (s *DocFooterState) SetIncludeSeeAlso(include bool) {
	if s.includeSeeAlso == include {
		return
	}
	s.includeSeeAlso = include
	s.refresh()
}

// Snapshot returns the content that is serialized.
func (s *DocFooterState) Snapshot() domain.DocFooter {
	f := domain.DocFooter{RelatedLinks: s.Related.Entries()}
	if s.includeSeeAlso {
		f.SeeAlso = s.SeeAlso.Entries()
	}
	return f
}

// Current implements Tool.
func (s *DocFooterState) Current() (string, bool) {
	f := s.Snapshot()
	return snippet.DocFooter(f), len(snippet.ValidateDocFooter(f)) == 0
}

func (s *DocFooterState) refresh() {
	s.publish(s.Current())
}

// NewRequestList creates a list of request blocks defaulting to the first
// catalog language.
func NewRequestList() *EntryList[domain.RequestBlock] {
	return NewEntryList(ListSpec[domain.RequestBlock]{
		New: func(id int) domain.RequestBlock {
			return domain.RequestBlock{ID: id, Language: catalog.DefaultLanguage()}
		},
		ID:       func(r domain.RequestBlock) int { return r.ID },
		Validate: validate.RequestErrors,
	})
}

// RequestResponseState is the state of the request/response tool.
type RequestResponseState struct {
	*OutputState

	Requests *EntryList[domain.RequestBlock]

	method        string
	response      domain.Response
	responseError string
}

// NewRequestResponseState creates a GET block with one blank request.
func NewRequestResponseState() *RequestResponseState {
	s := &RequestResponseState{
		OutputState: NewOutputState(),
		Requests:    NewRequestList(),
		method:      catalog.DefaultMethod(),
	}
	s.responseError = validate.ResponseErrors(s.response)["body"]
	s.Requests.AddListener(s.refresh)
	s.refresh()
	return s
}

func (s *RequestResponseState) Kind() domain.Kind { return domain.KindRequestResponse }
func (s *RequestResponseState) Bindings() *OutputState { return s.OutputState }
func (s *RequestResponseState) AddEntry() int { return s.Requests.Add().ID }

// Method returns the selected HTTP method.
func (s *RequestResponseState) Method() string { return s.method }

// SetMethod selects the HTTP method. Methods outside the catalog are ignored.
func (s *RequestResponseState) SetMethod(m string) {
	if !catalog.IsMethod(m) || m == s.method {
		return
	}
	s.method = m
	s.refresh()
}

// Response returns the response body as typed.
func (s *RequestResponseState) Response() domain.Response { return s.response }

// ResponseError returns the validation message of the response field.
func (s *RequestResponseState) ResponseError() string { return s.responseError }

// SetResponse replaces the response body and revalidates it.
func (s *RequestResponseState) SetResponse(body string) {
	s.response.Body = body
	s.responseError = validate.ResponseErrors(s.response)["body"]
	s.refresh()
}

// Snapshot returns the content that is serialized.
func (s *RequestResponseState) Snapshot() domain.RequestResponse {
	return domain.RequestResponse{
		Method:   s.method,
		Requests: s.Requests.Entries(),
		Response: s.response,
	}
}

// Current implements Tool.
func (s *RequestResponseState) Current() (string, bool) {
	rr := s.Snapshot()
	return snippet.RequestResponse(rr), len(snippet.ValidateRequestResponse(rr)) == 0
}

func (s *RequestResponseState) refresh() {
	s.publish(s.Current())
}

// NewButtonList creates a list of buttons.
func NewButtonList() *EntryList[domain.Button] {
	return NewEntryList(ListSpec[domain.Button]{
		New:      func(id int) domain.Button { return domain.Button{ID: id} },
		ID:       func(b domain.Button) int { return b.ID },
		Validate: validate.ButtonErrors,
	})
}

// ButtonListState is the state of the button list tool.
type ButtonListState struct {
	*OutputState

	Items *EntryList[domain.Button]
}

// NewButtonListState creates a button list with one blank item.
func NewButtonListState() *ButtonListState {
	s := &ButtonListState{
		OutputState: NewOutputState(),
		Items:       NewButtonList(),
	}
	s.Items.AddListener(s.refresh)
	s.refresh()
	return s
}

func (s *ButtonListState) Kind() domain.Kind { return domain.KindButtonList }
func (s *ButtonListState) Bindings() *OutputState { return s.OutputState }
func (s *ButtonListState) AddEntry() int { return s.Items.Add().ID }

// Snapshot returns the content that is serialized.
func (s *ButtonListState) Snapshot() domain.ButtonList {
	return domain.ButtonList{Items: s.Items.Entries()}
}

// Current implements Tool.
func (s *ButtonListState) Current() (string, bool) {
	bl := s.Snapshot()
	return snippet.ButtonList(bl), len(snippet.ValidateButtonList(bl)) == 0
}

func (s *ButtonListState) refresh() {
	s.publish(s.Current())
}
