package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/storage"
)

var (
	chair = models.CartProduct{ProductID: "p1", Name: "Oak Chair", Price: 10, Image: "chair.jpg", Slug: "oak-chair"}
	table = models.CartProduct{ProductID: "p2", Name: "Oak Table", Price: 5, Image: "table.jpg", Slug: "oak-table"}
)

func newTestLedger(t *testing.T) (*Ledger, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewLedger(context.Background(), store, Key("test-session")), store
}

func TestAddItemMergesByProductID(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.AddItem(ctx, chair, 1))
	first, ok := ledger.Item(chair.ProductID)
	require.True(t, ok)

	require.NoError(t, ledger.AddItem(ctx, chair, 2))

	items := ledger.Items()
	require.Len(t, items, 1, "repeated adds of one product must keep a single line")
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, first.LineID, items[0].LineID, "merging must not reissue the line id")
}

func TestUpdateQuantityRemovesOnZeroOrNegative(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		ledger, _ := newTestLedger(t)
		ctx := context.Background()

		require.NoError(t, ledger.AddItem(ctx, chair, 2))
		require.NoError(t, ledger.UpdateQuantity(ctx, chair.ProductID, quantity))

		_, ok := ledger.Item(chair.ProductID)
		assert.False(t, ok, "quantity %d must remove the line", quantity)
	}
}

func TestUpdateQuantityReplaces(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.AddItem(ctx, chair, 2))
	require.NoError(t, ledger.UpdateQuantity(ctx, chair.ProductID, 5))

	line, ok := ledger.Item(chair.ProductID)
	require.True(t, ok)
	assert.Equal(t, 5, line.Quantity, "update sets the quantity, it does not increment")

	// Absent product id is a no-op.
	require.NoError(t, ledger.UpdateQuantity(ctx, "missing", 3))
	assert.Len(t, ledger.Items(), 1)
}

func TestTotals(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.AddItem(ctx, chair, 2)) // 10 * 2
	require.NoError(t, ledger.AddItem(ctx, table, 3)) // 5 * 3

	assert.Equal(t, 35.0, ledger.TotalPrice())
	assert.Equal(t, 5, ledger.TotalItems())
}

func TestAddItemClampsNewLineQuantity(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		ledger, _ := newTestLedger(t)
		require.NoError(t, ledger.AddItem(context.Background(), chair, quantity))

		line, ok := ledger.Item(chair.ProductID)
		require.True(t, ok)
		assert.Equal(t, 1, line.Quantity, "new line with quantity %d must clamp to 1", quantity)
	}
}

func TestAddItemIgnoresNonPositiveMerge(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.AddItem(ctx, chair, 2))
	require.NoError(t, ledger.AddItem(ctx, chair, -3))

	line, _ := ledger.Item(chair.ProductID)
	assert.Equal(t, 2, line.Quantity)
}

func TestRemoveItem(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.AddItem(ctx, chair, 1))
	require.NoError(t, ledger.RemoveItem(ctx, chair.ProductID))
	assert.Empty(t, ledger.Items())

	// Removing an absent product is a no-op.
	require.NoError(t, ledger.RemoveItem(ctx, "missing"))
}

func TestClear(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.AddItem(ctx, chair, 1))
	require.NoError(t, ledger.AddItem(ctx, table, 1))
	require.NoError(t, ledger.Clear(ctx))

	assert.Empty(t, ledger.Items())
	assert.Zero(t, ledger.TotalItems())
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	key := Key("round-trip")

	ledger := NewLedger(ctx, store, key)
	require.NoError(t, ledger.AddItem(ctx, chair, 2))
	require.NoError(t, ledger.AddItem(ctx, table, 3))

	// Simulate a reload: a fresh ledger over the same store and key.
	restored := NewLedger(ctx, store, key)
	assert.Equal(t, ledger.Items(), restored.Items())
	assert.Equal(t, ledger.Snapshot(), restored.Snapshot())
}

func TestMalformedSnapshotResetsToEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	key := Key("corrupt")

	require.NoError(t, store.Set(ctx, key, "{not json"))
	assert.Empty(t, NewLedger(ctx, store, key).Items())

	// A future schema version is discarded the same way.
	require.NoError(t, store.Set(ctx, key, `{"version":99,"items":[]}`))
	assert.Empty(t, NewLedger(ctx, store, key).Items())
}

// failingStore rejects every write so degraded persistence can be observed.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) { return "", storage.ErrNotFound }
func (failingStore) Set(context.Context, string, string) error   { return storage.ErrStorageUnavailable }
func (failingStore) Remove(context.Context, string) error        { return storage.ErrStorageUnavailable }

func TestStorageFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(ctx, failingStore{}, Key("degraded"))

	err := ledger.AddItem(ctx, chair, 1)
	require.ErrorIs(t, err, storage.ErrStorageUnavailable)

	// The mutation applied even though the mirrored persist failed.
	line, ok := ledger.Item(chair.ProductID)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
}
