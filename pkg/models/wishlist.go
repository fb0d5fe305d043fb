package models

import "time"

// WishlistEntry is one saved-for-later product. ID is the product identity and
// doubles as the set key; entries are immutable after insertion.
type WishlistEntry struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Price   float64   `json:"price" validate:"gte=0"`
	Image   string    `json:"image"`
	AddedAt time.Time `json:"added_at"`
}

// WishlistSnapshot is the persisted wishlist shape, schema version 1.
type WishlistSnapshot struct {
	Version int             `json:"version"`
	Items   []WishlistEntry `json:"items"`
}

const WishlistSchemaVersion = 1

type AddToWishlistRequest struct {
	ID    string  `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
	Image string  `json:"image"`
}

func (req *AddToWishlistRequest) Entry() WishlistEntry {
	return WishlistEntry{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	}
}
