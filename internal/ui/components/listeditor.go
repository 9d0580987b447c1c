package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/docsnip/internal/model"
)

// RowFactory builds the form row of the entry with the given id.
type RowFactory func(id int) fyne.CanvasObject

// ListEditor displays the entries of an EntryList with add/remove buttons.
// Rows are kept across rebuilds so typing focus survives adds and removes.
type ListEditor[T any] struct {
	widget.BaseWidget

	list      *model.EntryList[T]
	newRow    RowFactory
	rows      map[int]fyne.CanvasObject
	removes   map[int]*widget.Button
	listBox   *fyne.Container
	addButton *widget.Button
	content   *fyne.Container
	syncing   bool
}

// NewListEditor creates an editor for list. newRow is called once per entry.
func NewListEditor[T any](title, addLabel string, list *model.EntryList[T], newRow RowFactory) *ListEditor[T] {
	e := &ListEditor[T]{
		list:    list,
		newRow:  newRow,
		rows:    make(map[int]fyne.CanvasObject),
		removes: make(map[int]*widget.Button),
		listBox: container.NewVBox(),
	}

	e.addButton = widget.NewButtonWithIcon(addLabel, theme.ContentAddIcon(), func() {
		e.list.Add()
	})

	header := widget.NewLabel(title)
	header.TextStyle = fyne.TextStyle{Bold: true}

	e.content = container.NewBorder(header, container.NewHBox(e.addButton), nil, nil, e.listBox)

	list.AddListener(e.sync)
	e.sync()

	e.ExtendBaseWidget(e)
	return e
}

// CreateRenderer implements fyne.Widget.
func (e *ListEditor[T]) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(e.content)
}

// RowCount returns the number of rows shown.
func (e *ListEditor[T]) RowCount() int {
	return len(e.rows)
}

// CanRemove reports whether the remove button of the given row is enabled.
func (e *ListEditor[T]) CanRemove(id int) bool {
	btn, ok := e.removes[id]
	return ok && !btn.Disabled()
}

// Row returns the row built for id.
func (e *ListEditor[T]) Row(id int) (fyne.CanvasObject, bool) {
	row, ok := e.rows[id]
	return row, ok
}

// sync rebuilds the row list when entries were added or removed. Field
// edits leave the rows untouched.
func (e *ListEditor[T]) sync() {
	if e.syncing {
		return
	}
	e.syncing = true
	defer func() { e.syncing = false }()

	ids := e.list.IDs()
	if e.sameIDs(ids) {
		e.updateRemoveButtons(len(ids))
		return
	}

	live := make(map[int]bool, len(ids))
	objects := make([]fyne.CanvasObject, 0, len(ids))
	for i, id := range ids {
		live[id] = true
		row, ok := e.rows[id]
		if !ok {
			row = e.buildRow(id)
			e.rows[id] = row
		}
		if i > 0 {
			objects = append(objects, widget.NewSeparator())
		}
		objects = append(objects, row)
	}
	for id := range e.rows {
		if !live[id] {
			delete(e.rows, id)
			delete(e.removes, id)
		}
	}

	e.listBox.Objects = objects
	e.updateRemoveButtons(len(ids))
	e.listBox.Refresh()
}

func (e *ListEditor[T]) buildRow(id int) fyne.CanvasObject {
	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		e.list.Remove(id)
	})
	remove.Importance = widget.LowImportance
	e.removes[id] = remove

	return container.NewBorder(nil, nil, nil, container.NewVBox(remove), e.newRow(id))
}

func (e *ListEditor[T]) updateRemoveButtons(count int) {
	for _, btn := range e.removes {
		if count <= 1 {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
}

func (e *ListEditor[T]) sameIDs(ids []int) bool {
	if len(ids) != len(e.rows) {
		return false
	}
	for _, id := range ids {
		if _, ok := e.rows[id]; !ok {
			return false
		}
	}
	return true
}
