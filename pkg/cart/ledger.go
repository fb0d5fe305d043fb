// Package cart holds the shopping cart ledger: a mutable collection of line
// items keyed by product identity, mirrored to durable storage on every
// mutation so the cart survives a reload.
package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/storage"
)

const keyPrefix = "furniture_mart_cart_v1:"

// Key returns the storage key for a visitor session's cart.
func Key(sessionID string) string {
	return keyPrefix + sessionID
}

// Ledger owns the cart state for one session. At most one line exists per
// product id; insertion order is preserved for stable display. All mutations
// write the full snapshot through the Store; a storage failure is returned to
// the caller but the in-memory mutation always sticks.
type Ledger struct {
	mu    sync.Mutex
	store storage.Store
	key   string
	items []models.CartLine
}

// NewLedger restores a ledger from storage. An absent key yields an empty
// cart; a malformed or version-mismatched snapshot is logged and reset to
// empty rather than crashing.
func NewLedger(ctx context.Context, store storage.Store, key string) *Ledger {
	l := &Ledger{store: store, key: key}

	raw, err := store.Get(ctx, key)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("Warning: failed to restore cart %q: %v", key, err)
		}
		return l
	}

	var snapshot models.CartSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil || snapshot.Version != models.CartSchemaVersion {
		log.Printf("Warning: discarding malformed cart snapshot for %q", key)
		return l
	}

	l.items = snapshot.Items
	return l
}

// AddItem merges quantity into an existing line for the product, or creates a
// new line with a fresh line id. A non-positive quantity on a new line is
// clamped to 1; on an existing line it is ignored.
func (l *Ledger) AddItem(ctx context.Context, product models.CartProduct, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ProductID == product.ProductID {
			if quantity > 0 {
				l.items[i].Quantity += quantity
			}
			return l.persist(ctx)
		}
	}

	if quantity < 1 {
		quantity = 1
	}
	l.items = append(l.items, models.CartLine{
		LineID:    uuid.NewString(),
		ProductID: product.ProductID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Slug:      product.Slug,
		Quantity:  quantity,
	})
	return l.persist(ctx)
}

// RemoveItem deletes the line for the product. Removing an absent product is a
// no-op and still returns the persist status.
func (l *Ledger) RemoveItem(ctx context.Context, productID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	return l.persist(ctx)
}

// UpdateQuantity replaces the line's quantity. A quantity of zero or less
// removes the line entirely; an absent product id is a no-op.
func (l *Ledger) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ProductID == productID {
			if quantity <= 0 {
				l.items = append(l.items[:i], l.items[i+1:]...)
			} else {
				l.items[i].Quantity = quantity
			}
			return l.persist(ctx)
		}
	}
	return nil
}

// Clear empties the ledger.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	return l.persist(ctx)
}

// Item looks up the line for a product id.
func (l *Ledger) Item(productID string) (models.CartLine, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, line := range l.items {
		if line.ProductID == productID {
			return line, true
		}
	}
	return models.CartLine{}, false
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []models.CartLine {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]models.CartLine, len(l.items))
	copy(items, l.items)
	return items
}

// TotalPrice sums price * quantity over all lines.
func (l *Ledger) TotalPrice() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return totalPrice(l.items)
}

// TotalItems sums quantities over all lines.
func (l *Ledger) TotalItems() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return totalItems(l.items)
}

// Snapshot returns the persisted shape: items plus derived totals.
func (l *Ledger) Snapshot() models.CartSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Ledger) snapshotLocked() models.CartSnapshot {
	items := make([]models.CartLine, len(l.items))
	copy(items, l.items)
	return models.CartSnapshot{
		Version:   models.CartSchemaVersion,
		Items:     items,
		Total:     totalPrice(l.items),
		ItemCount: totalItems(l.items),
	}
}

// persist mirrors the full snapshot to storage. The returned error only ever
// reports storage degradation; the in-memory state is already updated.
func (l *Ledger) persist(ctx context.Context) error {
	data, err := json.Marshal(l.snapshotLocked())
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, l.key, string(data)); err != nil {
		log.Printf("Warning: failed to persist cart %q: %v", l.key, err)
		return err
	}
	return nil
}

func totalPrice(items []models.CartLine) float64 {
	var total float64
	for i := range items {
		total += items[i].Subtotal()
	}
	return total
}

func totalItems(items []models.CartLine) int {
	var count int
	for i := range items {
		count += items[i].Quantity
	}
	return count
}
