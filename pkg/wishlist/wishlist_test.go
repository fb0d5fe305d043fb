package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/storage"
)

var sofa = models.WishlistEntry{ID: "x", Name: "Velvet Sofa", Price: 499, Image: "sofa.jpg"}

func newTestSet(t *testing.T) (*Set, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewSet(context.Background(), store, Key("test-session")), store
}

func TestAddIsIdempotent(t *testing.T) {
	set, _ := newTestSet(t)
	ctx := context.Background()

	require.NoError(t, set.Add(ctx, sofa))
	require.NoError(t, set.Add(ctx, sofa))

	assert.Equal(t, 1, set.Count())
	assert.True(t, set.Contains(sofa.ID))
}

func TestAddStampsInsertionTime(t *testing.T) {
	set, _ := newTestSet(t)

	// A caller-supplied timestamp must be overwritten by the manager.
	stale := sofa
	stale.AddedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, set.Add(context.Background(), stale))

	entries := set.Entries()
	require.Len(t, entries, 1)
	assert.WithinDuration(t, time.Now().UTC(), entries[0].AddedAt, time.Minute)
}

func TestRemove(t *testing.T) {
	set, _ := newTestSet(t)
	ctx := context.Background()

	require.NoError(t, set.Add(ctx, sofa))
	require.NoError(t, set.Remove(ctx, sofa.ID))
	assert.False(t, set.Contains(sofa.ID))
	assert.Zero(t, set.Count())

	// Removing an absent id is a no-op.
	require.NoError(t, set.Remove(ctx, "missing"))
}

func TestRemoveKeepsIndexConsistent(t *testing.T) {
	set, _ := newTestSet(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		entry := sofa
		entry.ID = id
		require.NoError(t, set.Add(ctx, entry))
	}

	require.NoError(t, set.Remove(ctx, "a"))
	assert.True(t, set.Contains("b"))
	assert.True(t, set.Contains("c"))

	require.NoError(t, set.Remove(ctx, "c"))
	assert.Equal(t, 1, set.Count())
	assert.True(t, set.Contains("b"))
}

func TestClear(t *testing.T) {
	set, _ := newTestSet(t)
	ctx := context.Background()

	require.NoError(t, set.Add(ctx, sofa))
	require.NoError(t, set.Clear(ctx))
	assert.Zero(t, set.Count())
	assert.False(t, set.Contains(sofa.ID))
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	key := Key("round-trip")

	set := NewSet(ctx, store, key)
	require.NoError(t, set.Add(ctx, sofa))
	lamp := models.WishlistEntry{ID: "y", Name: "Arc Lamp", Price: 89}
	require.NoError(t, set.Add(ctx, lamp))

	restored := NewSet(ctx, store, key)
	assert.Equal(t, set.Entries(), restored.Entries())
	assert.Equal(t, 2, restored.Count())
	assert.True(t, restored.Contains(sofa.ID))
}

func TestMalformedSnapshotResetsToEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	key := Key("corrupt")

	require.NoError(t, store.Set(ctx, key, "]["))
	assert.Zero(t, NewSet(ctx, store, key).Count())
}
