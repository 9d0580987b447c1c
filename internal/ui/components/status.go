package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/docsnip/internal/model"
)

// Status messages shown next to the copy button.
const (
	statusInvalid = "Fix the highlighted fields"
	statusReady   = "Ready to copy"
	statusCopied  = "Copied to clipboard"
)

// StatusIndicator shows whether the output can be copied. Each state uses a
// distinct icon shape so it does not rely on color alone:
//   - invalid: error icon (X shape)
//   - ready: confirm icon (checkmark)
//   - copied: content-copy icon
type StatusIndicator struct {
	widget.BaseWidget

	state *model.OutputState
	icon  *widget.Icon
	label *widget.Label
}

// NewStatusIndicator creates an indicator bound to state.
func NewStatusIndicator(state *model.OutputState) *StatusIndicator {
	s := &StatusIndicator{
		state: state,
		icon:  widget.NewIcon(theme.ErrorIcon()),
		label: widget.NewLabel(statusInvalid),
	}
	s.label.Truncation = fyne.TextTruncateEllipsis
	s.ExtendBaseWidget(s)

	state.Valid.AddListener(binding.NewDataListener(s.update))
	state.Copied.AddListener(binding.NewDataListener(s.update))
	s.update()

	return s
}

func (s *StatusIndicator) update() {
	valid, _ := s.state.Valid.Get()
	copied, _ := s.state.Copied.Get()

	switch {
	case !valid:
		s.icon.SetResource(theme.ErrorIcon())
		s.label.SetText(statusInvalid)
	case copied:
		s.icon.SetResource(theme.ContentCopyIcon())
		s.label.SetText(statusCopied)
	default:
		s.icon.SetResource(theme.ConfirmIcon())
		s.label.SetText(statusReady)
	}
}

// Text returns the current status message.
func (s *StatusIndicator) Text() string {
	return s.label.Text
}

// CreateRenderer implements fyne.Widget.
func (s *StatusIndicator) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(s.icon, s.label))
}
