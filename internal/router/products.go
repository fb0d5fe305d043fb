package router

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/catalog"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/global"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
)

const productCachePrefix = "product:"

func (api *API) HealthCheck(c *gin.Context) {
	db := catalog.GetDatabase()
	if err := db.Client().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

func (api *API) GetAllProducts(c *gin.Context) {
	products, err := catalog.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get products", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(products))
}

// GetProductBySlug retrieves a product by slug with a storage read-through
// cache in front of MongoDB.
func (api *API) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if len(slug) < 3 || len(slug) > 100 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid slug format", []global.ValidationError{
			{Field: "slug", Message: "Slug must be between 3 and 100 characters", Code: "invalid_format"},
		}))
		return
	}

	ctx := c.Request.Context()

	if raw, err := api.Store.Get(ctx, productCachePrefix+slug); err == nil {
		var product models.Product
		if err := json.Unmarshal([]byte(raw), &product); err == nil {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, global.SuccessResponse(product))
			return
		}
	}

	product, err := catalog.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "slug", Message: "No product exists with this slug", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching product from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	api.cacheProduct(c, product)
	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(product))
}

func (api *API) CreateNewProducts(c *gin.Context) {
	var req []models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}
	if len(req) == 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("No products provided", []global.ValidationError{
			{Field: "products", Message: "At least one product is required", Code: "empty_array"},
		}))
		return
	}

	products := make([]*models.Product, len(req))
	for i, productReq := range req {
		products[i] = productReq.ToProduct()
	}

	created, err := catalog.CreateProducts(c.Request.Context(), products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create products", nil))
		return
	}

	for _, product := range created {
		api.cacheProduct(c, product)
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"products": created,
		"count":    len(created),
	}))
}

func (api *API) EditProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid JSON format", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "json_parse_error"},
		}))
		return
	}

	// Immutable fields are silently dropped instead of erroring.
	for _, field := range []string{"_id", "id", "slug", "created_at"} {
		if _, exists := updates[field]; exists {
			delete(updates, field)
			log.Printf("Warning: Removed immutable field '%s' from update request", field)
		}
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("No valid updates provided", []global.ValidationError{
			{Field: "body", Message: "Request body must contain at least one mutable field", Code: "empty_updates"},
		}))
		return
	}

	updated, err := catalog.UpdateProductBySlug(c.Request.Context(), slug, updates)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "slug", Message: "No product exists with this slug", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error updating product in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update product", nil))
		return
	}

	api.cacheProduct(c, updated)
	c.Header("X-Cache", "REFRESHED")
	c.JSON(http.StatusOK, global.SuccessResponse(updated))
}

func (api *API) DeleteProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	deleted, err := catalog.DeleteProductBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "slug", Message: "No product exists with this slug", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error deleting product from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete product", nil))
		return
	}

	if err := api.Store.Remove(c.Request.Context(), productCachePrefix+slug); err != nil {
		log.Printf("Warning: Failed to remove product from cache: %v", err)
	}

	c.Header("X-Cache", "DELETED")
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"deleted_product": deleted,
		"message":         "Product successfully deleted",
	}))
}

func (api *API) GetAllCategories(c *gin.Context) {
	categories, err := catalog.GetAllCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get categories", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(categories))
}

func (api *API) cacheProduct(c *gin.Context, product *models.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := api.Store.Set(c.Request.Context(), productCachePrefix+product.Slug, string(data)); err != nil {
		log.Printf("Warning: Failed to cache product %s: %v", product.Slug, err)
	}
}
