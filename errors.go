// Package indexed_model file: errors.go

package indexed_model

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrConfiguration   = errors.New("invalid index configuration")
	ErrDuplicateKey    = errors.New("duplicate key on unique index")
	ErrTypeMismatch    = errors.New("record type mismatch")
	ErrUnknownIndex    = errors.New("unknown index")
	ErrNotFound        = errors.New("not found")
	ErrInvalidKeyValue = errors.New("index value is not comparable")
)

// DuplicateKeyError reports a collision on a unique index.
// Existing is the record already stored under Value, Record the rejected one.
type DuplicateKeyError struct {
	Index    string
	Value    any
	Existing any
	Record   any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %v for index %q: %v conflicts with %v",
		e.Value, e.Index, e.Record, e.Existing)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// TypeMismatchError is returned when a record's concrete type differs from the
// type pinned by earlier insertions.
type TypeMismatchError struct {
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("record type mismatch: expected %s, got %s",
		typeName(e.Expected), typeName(e.Actual))
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
