package indexed_model

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeCollectionConcurrentAdd(t *testing.T) {
	s, err := NewSafeCollection(nil, userKeys())
	require.NoError(t, err)

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				// every worker races for the same ids; only one insert per id wins
				u := User{ID: i, Username: fmt.Sprintf("u%d", i), Email: fmt.Sprintf("%d@x.com", i)}
				_ = s.Add(u)
				s.Get("id", i)
				s.All()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, perWorker, s.Len())
	for _, name := range s.Keys() {
		assert.Len(t, s.Index(name), perWorker, name)
	}
}

func TestSafeCollectionDelegates(t *testing.T) {
	s, err := NewSafeCollection([]User{alice(), bob()}, userKeys())
	require.NoError(t, err)

	var store Store[User] = s
	assert.True(t, store.Has("email", "b@x.com"))
	require.ErrorIs(t, store.Add(carol("b@x.com")), ErrDuplicateKey)
	require.NoError(t, store.Remove(alice()))
	require.ErrorIs(t, store.RemoveBy("id", 1), ErrNotFound)
	require.NoError(t, store.RemoveBy("id", 2))
	assert.Zero(t, store.Len())
	assert.Equal(t, "[]", s.String())
	assert.NotNil(t, s.RecordType())
}

func TestNewSafeCollectionError(t *testing.T) {
	s, err := NewSafeCollection([]User{alice(), alice()}, userKeys())
	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Nil(t, s)
}
