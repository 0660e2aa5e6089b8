// Package indexed_model file: safe_collection.go

package indexed_model

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// SafeCollection guards a Collection with a single RWMutex: mutations are
// exclusive, reads may run together.
type SafeCollection[T comparable] struct {
	mu sync.RWMutex
	c  *Collection[T]
}

var (
	_ Store[int] = (*Collection[int])(nil)
	_ Store[int] = (*SafeCollection[int])(nil)
)

func NewSafeCollection[T comparable](records []T, keys []Key[T], opts ...Option[T]) (*SafeCollection[T], error) {
	c, err := New(records, keys, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeCollection[T]{c: c}, nil
}

// --- Mutations ---
func (s *SafeCollection[T]) Add(record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Add(record)
}

func (s *SafeCollection[T]) Remove(record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Remove(record)
}

func (s *SafeCollection[T]) RemoveBy(index string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.RemoveBy(index, value)
}

// --- Reads ---
func (s *SafeCollection[T]) Get(index string, value any) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Get(index, value)
}

func (s *SafeCollection[T]) Has(index string, value any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Has(index, value)
}

func (s *SafeCollection[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.All()
}

func (s *SafeCollection[T]) Index(name string) map[any]T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Index(name)
}

func (s *SafeCollection[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Len()
}

func (s *SafeCollection[T]) RecordType() reflect.Type {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.RecordType()
}

func (s *SafeCollection[T]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.String()
}

// Keys and ID are fixed at construction.
func (s *SafeCollection[T]) Keys() []string { return s.c.Keys() }
func (s *SafeCollection[T]) ID() uuid.UUID  { return s.c.ID() }
