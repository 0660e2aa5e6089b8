// Package indexed_model file: repo.go

// Package indexed_model provides an in-memory collection of homogeneous
// records with one unique, exact-match index per configured key.
package indexed_model

import "github.com/google/uuid"

type EventType string

const (
	EventAdd    EventType = "add"
	EventRemove EventType = "remove"
)

type Event[T any] struct {
	Type       EventType
	Collection uuid.UUID
	Obj        T
}

// Store is the public contract shared by Collection and SafeCollection.
type Store[T comparable] interface {
	Add(record T) error
	Remove(record T) error
	RemoveBy(index string, value any) error

	Get(index string, value any) (T, bool)
	Has(index string, value any) bool
	All() []T
	Index(name string) map[any]T
	Len() int
	Keys() []string
	ID() uuid.UUID
}
