package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/global"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
)

// ErrProductNotFound is returned when no catalog document matches the slug.
var ErrProductNotFound = errors.New("catalog: product not found")

const productsCollection = "products"

func GetAllProducts(ctx context.Context) ([]models.Product, error) {
	collection := GetCollection(productsCollection)

	cursor, err := collection.Find(ctx, bson.D{{Key: "status", Value: "active"}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	collection := GetCollection(productsCollection)

	var product models.Product
	err := collection.FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func CreateProducts(ctx context.Context, products []*models.Product) ([]*models.Product, error) {
	collection := GetCollection(productsCollection)

	docs := make([]interface{}, len(products))
	for i, product := range products {
		product.SetTimestamps()
		docs[i] = product
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to insert products: %w", err)
	}
	return products, nil
}

func UpdateProductBySlug(ctx context.Context, slug string, updates map[string]interface{}) (*models.Product, error) {
	collection := GetCollection(productsCollection)

	setFields := bson.D{}
	for field, value := range updates {
		setFields = append(setFields, bson.E{Key: field, Value: value})
	}
	setFields = append(setFields, bson.E{Key: "updated_at", Value: time.Now()})

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	err := collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "slug", Value: slug}},
		bson.D{{Key: "$set", Value: setFields}},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func DeleteProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	collection := GetCollection(productsCollection)

	var deleted models.Product
	err := collection.FindOneAndDelete(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &deleted, nil
}

func GetAllCategories() ([]string, error) {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	collection := GetCollection(productsCollection)

	var categories []string
	if err := collection.Distinct(ctx, "category", bson.D{}).Decode(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}
