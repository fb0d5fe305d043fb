package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product represents an item in the furniture catalog.
type Product struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Slug        string        `json:"slug" bson:"slug" validate:"required,min=3,max=100"`
	Name        string        `json:"name" bson:"name" validate:"required,min=2,max=200"`
	Description string        `json:"description" bson:"description" validate:"max=2000"`
	Category    string        `json:"category" bson:"category" validate:"required,min=2,max=100"`
	Price       float64       `json:"price" bson:"price" validate:"required,gt=0"`
	Currency    string        `json:"currency" bson:"currency" validate:"required,len=3"`
	Image       string        `json:"image" bson:"image" validate:"omitempty,url"`
	Gallery     []string      `json:"gallery" bson:"gallery" validate:"dive,url"`
	Stock       int           `json:"stock" bson:"stock" validate:"gte=0"`
	Tags        []string      `json:"tags" bson:"tags" validate:"dive,min=2,max=50"`
	Status      string        `json:"status" bson:"status" validate:"required,oneof=active inactive deleted"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

func (p *Product) IsInStock() bool {
	return p.Stock > 0 && p.Status == "active"
}

func (p *Product) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// CartProduct returns the display fields the cart ledger stores per line.
func (p *Product) CartProduct() CartProduct {
	return CartProduct{
		ProductID: p.ID.Hex(),
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Slug:      p.Slug,
	}
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Category    string   `json:"category" binding:"required" validate:"required,min=2,max=100"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Currency    string   `json:"currency" validate:"omitempty,len=3"`
	Image       string   `json:"image"`
	Gallery     []string `json:"gallery"`
	Stock       int      `json:"stock" binding:"gte=0"`
	Tags        []string `json:"tags"`
}

// GenerateSlug derives a routing slug from the product name plus a timestamp
// suffix to keep slugs unique across same-named products.
func (req *CreateProductRequest) GenerateSlug() string {
	base := strings.ToLower(strings.TrimSpace(req.Name))
	base = strings.Join(strings.Fields(base), "-")
	return fmt.Sprintf("%s-%d", base, time.Now().Unix())
}

func (req *CreateProductRequest) ToProduct() *Product {
	now := time.Now()
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	return &Product{
		ID:          bson.NewObjectID(),
		Slug:        req.GenerateSlug(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Currency:    currency,
		Image:       req.Image,
		Gallery:     req.Gallery,
		Stock:       req.Stock,
		Tags:        req.Tags,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
