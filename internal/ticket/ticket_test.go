package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutAndResolve(t *testing.T) {
	store, err := NewStore(0)
	require.NoError(t, err)

	store.Put(1001, 7, 42)

	target, ok := store.Resolve(1001, 7)
	assert.True(t, ok)
	assert.Equal(t, int64(42), target)
}

func TestStore_ResolveMiss(t *testing.T) {
	store, err := NewStore(0)
	require.NoError(t, err)

	store.Put(1001, 7, 42)

	// Same message id for a different responder is a distinct key
	_, ok := store.Resolve(1002, 7)
	assert.False(t, ok)

	// Unknown message id for a known responder
	_, ok = store.Resolve(1001, 8)
	assert.False(t, ok)
}

func TestStore_EvictsOldestPastCapacity(t *testing.T) {
	store, err := NewStore(3)
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		store.Put(1001, i, int64(i*10))
	}

	assert.Equal(t, 3, store.Len(), "store must never exceed its capacity")

	// Oldest entry aged out
	_, ok := store.Resolve(1001, 1)
	assert.False(t, ok)

	// Newer entries still resolve
	for i := 2; i <= 4; i++ {
		target, ok := store.Resolve(1001, i)
		assert.True(t, ok)
		assert.Equal(t, int64(i*10), target)
	}
}
