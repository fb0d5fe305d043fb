// Package wishlist holds the liked-products set: idempotent add, O(1)
// membership, persisted to its own storage namespace on every mutation.
package wishlist

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/storage"
)

const keyPrefix = "furniture_mart_wishlist_v1:"

// Key returns the storage key for a visitor session's wishlist.
func Key(sessionID string) string {
	return keyPrefix + sessionID
}

// Set owns the wishlist state for one session. Entries are keyed by product
// id; re-adding a present id is a no-op, not an update.
type Set struct {
	mu    sync.Mutex
	store storage.Store
	key   string
	items []models.WishlistEntry
	index map[string]int
}

// NewSet restores a wishlist from storage; absent or malformed snapshots
// yield an empty set.
func NewSet(ctx context.Context, store storage.Store, key string) *Set {
	s := &Set{store: store, key: key, index: make(map[string]int)}

	raw, err := store.Get(ctx, key)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("Warning: failed to restore wishlist %q: %v", key, err)
		}
		return s
	}

	var snapshot models.WishlistSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil || snapshot.Version != models.WishlistSchemaVersion {
		log.Printf("Warning: discarding malformed wishlist snapshot for %q", key)
		return s
	}

	for _, entry := range snapshot.Items {
		if _, exists := s.index[entry.ID]; exists {
			continue
		}
		s.index[entry.ID] = len(s.items)
		s.items = append(s.items, entry)
	}
	return s
}

// Add inserts the entry if its id is not already present. The manager stamps
// AddedAt itself so a caller-supplied timestamp cannot skew insertion time.
func (s *Set) Add(ctx context.Context, entry models.WishlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[entry.ID]; exists {
		return nil
	}

	entry.AddedAt = time.Now().UTC()
	s.index[entry.ID] = len(s.items)
	s.items = append(s.items, entry)
	return s.persist(ctx)
}

// Remove deletes the entry if present; a no-op otherwise.
func (s *Set) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, exists := s.index[id]
	if !exists {
		return nil
	}

	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return s.persist(ctx)
}

// Contains reports membership for a product id.
func (s *Set) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.index[id]
	return exists
}

// Clear empties the set.
func (s *Set) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.index = make(map[string]int)
	return s.persist(ctx)
}

// Count returns the cardinality.
func (s *Set) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Entries returns a copy of the entries in insertion order.
func (s *Set) Entries() []models.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.WishlistEntry, len(s.items))
	copy(entries, s.items)
	return entries
}

func (s *Set) persist(ctx context.Context) error {
	items := make([]models.WishlistEntry, len(s.items))
	copy(items, s.items)
	data, err := json.Marshal(models.WishlistSnapshot{
		Version: models.WishlistSchemaVersion,
		Items:   items,
	})
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, s.key, string(data)); err != nil {
		log.Printf("Warning: failed to persist wishlist %q: %v", s.key, err)
		return err
	}
	return nil
}
