// Package indexed_model file: options.go

package indexed_model

import (
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type options[T any] struct {
	logger      *zap.Logger
	recordType  reflect.Type
	subscribers []func(Event[T])
	id          uuid.UUID
}

// Option configures a Collection at construction time.
type Option[T any] func(*options[T])

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(o *options[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRecordType pins the concrete record type before any record is added.
func WithRecordType[T any](t reflect.Type) Option[T] {
	return func(o *options[T]) {
		o.recordType = t
	}
}

// WithSubscriber registers fn to receive an Event after every successful
// Add or Remove. Subscribers run synchronously on the mutating goroutine and,
// under a SafeCollection, while the write lock is held.
func WithSubscriber[T any](fn func(Event[T])) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.subscribers = append(o.subscribers, fn)
		}
	}
}

// WithID sets the collection identity used in events and log fields.
func WithID[T any](id uuid.UUID) Option[T] {
	return func(o *options[T]) {
		o.id = id
	}
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		logger: zap.NewNop(),
	}
}
