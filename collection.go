// Package indexed_model file: collection.go

package indexed_model

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/btree"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Collection is an in-memory, insertion-ordered set of records with one
// unique index per configured key. It is not safe for concurrent mutation;
// see SafeCollection.
type Collection[T comparable] struct {
	id          uuid.UUID
	keys        []Key[T]
	indexes     map[string]*uniqueIndex[T]
	records     *btree.BTreeG[*entry[T]]
	nextSeq     uint64
	recordType  reflect.Type
	subscribers []func(Event[T])
	logger      *zap.Logger
}

// New builds a collection over keys and loads records through Add, in order.
// If any record is rejected no collection is returned.
func New[T comparable](records []T, keys []Key[T], opts ...Option[T]) (*Collection[T], error) {
	if err := validateKeys(keys); err != nil {
		return nil, err
	}

	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	c := &Collection[T]{
		id:         o.id,
		keys:       append([]Key[T](nil), keys...),
		indexes:    make(map[string]*uniqueIndex[T], len(keys)),
		records:    btree.NewG(2, func(a, b *entry[T]) bool { return a.seq < b.seq }),
		recordType: o.recordType,
		logger:     o.logger.Named("indexed_model").With(zap.Stringer("collection", o.id)),
	}
	for _, k := range keys {
		c.indexes[k.Name] = newUniqueIndex(k)
	}

	for i, r := range records {
		if err := c.Add(r); err != nil {
			return nil, fmt.Errorf("failed to load record %d: %w", i, err)
		}
	}

	// initial records are announced only once the whole load succeeded
	c.subscribers = o.subscribers
	for _, r := range c.All() {
		c.notify(EventAdd, r)
	}

	c.logger.Info("Collection created",
		zap.Int("records", c.Len()),
		zap.Strings("keys", c.Keys()))
	return c, nil
}

// Add validates obj against the pinned type and every index, then commits it
// to all indexes and the sequence. On error the collection is unchanged.
// A nil record (possible when T is an interface) is rejected as a type
// mismatch.
func (c *Collection[T]) Add(obj T) error {
	rt := reflect.TypeOf(obj)
	if rt == nil || (c.recordType != nil && rt != c.recordType) {
		err := &TypeMismatchError{Expected: c.recordType, Actual: rt}
		c.logger.Debug("Add rejected", zap.Error(err))
		return err
	}

	values := make([]any, len(c.keys))
	for i, k := range c.keys {
		idx := c.indexes[k.Name]
		v, err := idx.value(obj)
		if err == nil {
			err = idx.check(v, obj)
		}
		if err != nil {
			c.logger.Debug("Add rejected", zap.String("index", k.Name), zap.Error(err))
			return err
		}
		values[i] = v
	}

	// commit
	if c.recordType == nil {
		c.recordType = rt
	}
	e := &entry[T]{seq: c.nextSeq, record: obj, values: values}
	c.nextSeq++
	for i, k := range c.keys {
		c.indexes[k.Name].insert(values[i], e)
	}
	c.records.ReplaceOrInsert(e)

	c.logger.Debug("Record added", zap.Uint64("seq", e.seq))
	c.notify(EventAdd, obj)
	return nil
}

// Remove deletes the first stored record equal to obj.
func (c *Collection[T]) Remove(obj T) error {
	var found *entry[T]
	c.records.Ascend(func(e *entry[T]) bool {
		if e.record == obj {
			found = e
			return false
		}
		return true
	})
	if found == nil {
		c.logger.Debug("Remove rejected", zap.Error(ErrNotFound))
		return fmt.Errorf("record %v: %w", obj, ErrNotFound)
	}
	c.removeEntry(found)
	return nil
}

// RemoveBy deletes the record stored under value in the named index.
func (c *Collection[T]) RemoveBy(index string, value any) error {
	idx, ok := c.indexes[index]
	if !ok {
		c.logger.Debug("Remove rejected", zap.String("index", index), zap.Error(ErrUnknownIndex))
		return fmt.Errorf("%w: %q", ErrUnknownIndex, index)
	}
	e, ok := idx.find(value)
	if !ok {
		c.logger.Debug("Remove rejected", zap.String("index", index), zap.Error(ErrNotFound))
		return fmt.Errorf("key %v in index %q: %w", value, index, ErrNotFound)
	}
	c.removeEntry(e)
	return nil
}

func (c *Collection[T]) removeEntry(e *entry[T]) {
	for i, k := range c.keys {
		c.indexes[k.Name].delete(e.values[i])
	}
	c.records.Delete(e)

	c.logger.Debug("Record removed", zap.Uint64("seq", e.seq))
	c.notify(EventRemove, e.record)
}

// Get returns the record stored under value in the named index. Unknown
// indexes and missing values both report false.
func (c *Collection[T]) Get(index string, value any) (T, bool) {
	if idx, ok := c.indexes[index]; ok {
		if e, ok := idx.find(value); ok {
			return e.record, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Has(index string, value any) bool {
	_, ok := c.Get(index, value)
	return ok
}

// All returns a copy of the records in insertion order.
func (c *Collection[T]) All() []T {
	result := make([]T, 0, c.records.Len())
	c.records.Ascend(func(e *entry[T]) bool {
		result = append(result, e.record)
		return true
	})
	return result
}

// Index returns a copy of the named index, or an empty map if it is unknown.
func (c *Collection[T]) Index(name string) map[any]T {
	idx, ok := c.indexes[name]
	if !ok {
		return map[any]T{}
	}
	return idx.snapshot()
}

func (c *Collection[T]) Len() int {
	return c.records.Len()
}

// Keys returns the index names in configuration order.
func (c *Collection[T]) Keys() []string {
	names := make([]string, len(c.keys))
	for i, k := range c.keys {
		names[i] = k.Name
	}
	return names
}

func (c *Collection[T]) ID() uuid.UUID {
	return c.id
}

// RecordType returns the pinned record type, or nil if none is pinned yet.
func (c *Collection[T]) RecordType() reflect.Type {
	return c.recordType
}

func (c *Collection[T]) notify(eventType EventType, obj T) {
	for _, fn := range c.subscribers {
		fn(Event[T]{Type: eventType, Collection: c.id, Obj: obj})
	}
}

// String implements fmt.Stringer
func (c *Collection[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true
	c.records.Ascend(func(e *entry[T]) bool {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v", e.record))
		first = false
		return true
	})
	sb.WriteString("]")
	return sb.String()
}
