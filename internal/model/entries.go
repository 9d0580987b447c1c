package model

import "github.com/shhac/docsnip/internal/validate"

// ListSpec tells an EntryList how to build, identify and validate entries.
type ListSpec[T any] struct {
	New      func(id int) T
	ID       func(T) int
	Validate func(T) validate.Errors
}

// EntryList is an ordered list of form entries that never drops below one
// entry. Each entry's errors are recomputed synchronously on every edit.
type EntryList[T any] struct {
	spec      ListSpec[T]
	entries   []T
	errors    map[int]validate.Errors
	nextID    int
	listeners []func()
}

// NewEntryList creates a list holding one blank entry.
func NewEntryList[T any](spec ListSpec[T]) *EntryList[T] {
	l := &EntryList[T]{
		spec:   spec,
		errors: make(map[int]validate.Errors),
	}
	l.appendEntry()
	return l
}

// AddListener registers fn to run after every mutation.
func (l *EntryList[T]) AddListener(fn func()) {
	l.listeners = append(l.listeners, fn)
}

// Len returns the number of entries.
func (l *EntryList[T]) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in order.
func (l *EntryList[T]) Entries() []T {
	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}

// IDs returns the entry ids in order.
func (l *EntryList[T]) IDs() []int {
	ids := make([]int, 0, len(l.entries))
	for _, e := range l.entries {
		ids = append(ids, l.spec.ID(e))
	}
	return ids
}

// Get returns the entry with the given id.
func (l *EntryList[T]) Get(id int) (T, bool) {
	if i := l.index(id); i >= 0 {
		return l.entries[i], true
	}
	var zero T
	return zero, false
}

// Add appends a blank entry with the next sequential id and returns it.
func (l *EntryList[T]) Add() T {
	e := l.appendEntry()
	l.notify()
	return e
}

// Remove deletes the entry with the given id. It is a no-op when only one
// entry is left or the id is unknown.
func (l *EntryList[T]) Remove(id int) bool {
	if len(l.entries) <= 1 {
		return false
	}
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	delete(l.errors, id)
	l.notify()
	return true
}

// Update applies fn to the entry with the given id and revalidates it.
// An edit that changes the entry's id is discarded.
func (l *EntryList[T]) Update(id int, fn func(*T)) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	e := l.entries[i]
	fn(&e)
	if l.spec.ID(e) != id {
		return false
	}
	l.entries[i] = e
	l.errors[id] = l.spec.Validate(e)
	l.notify()
	return true
}

// Errors returns the current field errors of the entry with the given id.
func (l *EntryList[T]) Errors(id int) validate.Errors {
	return l.errors[id]
}

// Valid reports whether every entry passes validation.
func (l *EntryList[T]) Valid() bool {
	for _, errs := range l.errors {
		if !errs.Valid() {
			return false
		}
	}
	return true
}

func (l *EntryList[T]) appendEntry() T {
	l.nextID++
	e := l.spec.New(l.nextID)
	l.entries = append(l.entries, e)
	l.errors[l.nextID] = l.spec.Validate(e)
	return e
}

func (l *EntryList[T]) index(id int) int {
	for i, e := range l.entries {
		if l.spec.ID(e) == id {
			return i
		}
	}
	return -1
}

func (l *EntryList[T]) notify() {
	for _, fn := range l.listeners {
		fn()
	}
}
