package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ViewToggle switches between labelled views with a horizontal RadioGroup.
// The first view is shown initially.
type ViewToggle struct {
	widget.BaseWidget

	labels       []string
	views        map[string]fyne.CanvasObject
	selector     *widget.RadioGroup
	contentStack *fyne.Container

	onChange func(label string)
}

// View pairs a selector label with its content.
type View struct {
	Label   string
	Content fyne.CanvasObject
}

// NewViewToggle creates a toggle over views. It panics without views.
func NewViewToggle(views ...View) *ViewToggle {
	if len(views) == 0 {
		panic("components: NewViewToggle needs at least one view")
	}

	v := &ViewToggle{
		views: make(map[string]fyne.CanvasObject, len(views)),
	}
	for _, view := range views {
		v.labels = append(v.labels, view.Label)
		v.views[view.Label] = view.Content
	}

	v.contentStack = container.NewStack(views[0].Content)
	v.selector = widget.NewRadioGroup(v.labels, func(selected string) {
		if selected == "" {
			// RadioGroup allows deselecting; keep the current view.
			return
		}
		v.show(selected)
		if v.onChange != nil {
			v.onChange(selected)
		}
	})
	v.selector.Horizontal = true
	v.selector.Required = true
	v.selector.Selected = views[0].Label

	v.ExtendBaseWidget(v)
	return v
}

// SetOnChange sets the callback run when the user picks another view.
func (v *ViewToggle) SetOnChange(fn func(label string)) {
	v.onChange = fn
}

// Selected returns the label of the visible view.
func (v *ViewToggle) Selected() string {
	return v.selector.Selected
}

// Select shows the view with the given label. Unknown labels and the
// current view are ignored.
func (v *ViewToggle) Select(label string) {
	if _, ok := v.views[label]; !ok || v.Selected() == label {
		return
	}
	v.selector.SetSelected(label)
}

func (v *ViewToggle) show(label string) {
	v.contentStack.Objects = []fyne.CanvasObject{v.views[label]}
	v.contentStack.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (v *ViewToggle) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(v.selector, nil, nil, nil, v.contentStack))
}
