// Package indexed_model file: key.go

package indexed_model

import (
	"fmt"
	"reflect"
	"slices"
)

// Key binds an index name to the accessor that extracts the indexed value.
// Values returned by Func must be comparable.
type Key[T any] struct {
	Name string
	Func func(T) any
}

// KeysFromMap converts a name -> accessor mapping into keys, ordered by name.
func KeysFromMap[T any](funcs map[string]func(T) any) []Key[T] {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	slices.Sort(names)

	keys := make([]Key[T], 0, len(names))
	for _, name := range names {
		keys = append(keys, Key[T]{Name: name, Func: funcs[name]})
	}
	return keys
}

// FieldKeys builds one key per struct field name. T must be a struct or a
// pointer to a struct. Fields are resolved here, once; the returned accessors
// only do an indexed field read. A nil pointer record yields a nil value.
func FieldKeys[T any](names ...string) ([]Key[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	isPtr := rt.Kind() == reflect.Pointer
	st := rt
	if isPtr {
		st = rt.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct type", ErrConfiguration, rt)
	}

	keys := make([]Key[T], 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate index name %q", ErrConfiguration, name)
		}
		seen[name] = struct{}{}

		field, ok := st.FieldByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no field %q", ErrConfiguration, st, name)
		}
		if !field.IsExported() {
			return nil, fmt.Errorf("%w: field %s.%s is not exported", ErrConfiguration, st, name)
		}
		if !field.Type.Comparable() {
			return nil, fmt.Errorf("%w: field %s.%s of type %s", ErrInvalidKeyValue, st, name, field.Type)
		}

		keys = append(keys, Key[T]{Name: name, Func: fieldAccessor[T](field.Index, isPtr)})
	}
	return keys, nil
}

func fieldAccessor[T any](index []int, isPtr bool) func(T) any {
	return func(record T) any {
		v := reflect.ValueOf(&record).Elem()
		if isPtr {
			if v.IsNil() {
				return nil
			}
			v = v.Elem()
		}
		f, err := v.FieldByIndexErr(index)
		if err != nil {
			// nil embedded pointer on the path
			return nil
		}
		return f.Interface()
	}
}

func validateKeys[T any](keys []Key[T]) error {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k.Name == "" {
			return fmt.Errorf("%w: empty index name", ErrConfiguration)
		}
		if k.Func == nil {
			return fmt.Errorf("%w: index %q has no accessor", ErrConfiguration, k.Name)
		}
		if _, dup := seen[k.Name]; dup {
			return fmt.Errorf("%w: duplicate index name %q", ErrConfiguration, k.Name)
		}
		seen[k.Name] = struct{}{}
	}
	return nil
}
