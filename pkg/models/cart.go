package models

// CartLine is one row in the cart ledger: a distinct product and its quantity.
// LineID is generated at insertion time and is distinct from ProductID, which
// is the uniqueness key for merge logic.
type CartLine struct {
	LineID    string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" validate:"gte=0"`
	Image     string  `json:"image"`
	Slug      string  `json:"slug"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
}

func (l *CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartProduct carries the product display fields a new cart line is created from.
type CartProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Slug      string  `json:"slug"`
}

// CartSnapshot is the persisted cart shape, schema version 1. Total and
// ItemCount are derived from Items and rewritten on every mutation.
type CartSnapshot struct {
	Version   int        `json:"version"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

const CartSchemaVersion = 1

type AddToCartRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Image     string  `json:"image"`
	Slug      string  `json:"slug"`
	Quantity  int     `json:"quantity"`
}

func (req *AddToCartRequest) Product() CartProduct {
	return CartProduct{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Slug:      req.Slug,
	}
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
