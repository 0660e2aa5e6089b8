// Package indexed_model file: index.go

package indexed_model

import (
	"fmt"
	"reflect"
)

// entry is a stored record together with its position in the insertion
// sequence and the index values computed when it was added.
type entry[T any] struct {
	seq    uint64
	record T
	values []any // parallel to Collection.keys
}

// uniqueIndex maps one attribute's value to the entry owning it.
type uniqueIndex[T any] struct {
	name    string
	keyFunc func(T) any
	entries map[any]*entry[T]
}

func newUniqueIndex[T any](key Key[T]) *uniqueIndex[T] {
	return &uniqueIndex[T]{
		name:    key.Name,
		keyFunc: key.Func,
		entries: make(map[any]*entry[T]),
	}
}

// value extracts and validates the index value for obj.
func (idx *uniqueIndex[T]) value(obj T) (any, error) {
	v := idx.keyFunc(obj)
	if !hashable(v) {
		return nil, fmt.Errorf("%w: index %q got %T", ErrInvalidKeyValue, idx.name, v)
	}
	return v, nil
}

// check reports a *DuplicateKeyError if v is already taken.
func (idx *uniqueIndex[T]) check(v any, obj T) error {
	if existing, found := idx.entries[v]; found {
		return &DuplicateKeyError{
			Index:    idx.name,
			Value:    v,
			Existing: existing.record,
			Record:   obj,
		}
	}
	return nil
}

func (idx *uniqueIndex[T]) insert(v any, e *entry[T]) {
	idx.entries[v] = e
}

func (idx *uniqueIndex[T]) delete(v any) {
	delete(idx.entries, v)
}

func (idx *uniqueIndex[T]) find(v any) (*entry[T], bool) {
	if !hashable(v) {
		return nil, false
	}
	e, ok := idx.entries[v]
	return e, ok
}

func (idx *uniqueIndex[T]) snapshot() map[any]T {
	out := make(map[any]T, len(idx.entries))
	for v, e := range idx.entries {
		out[v] = e.record
	}
	return out
}

// hashable checks the dynamic value, so interface fields holding slices or
// maps are caught before they reach the map.
func hashable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}
