package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/global"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/wishlist"
)

func wishlistResponse(c *gin.Context, set *wishlist.Set, persistErr error) {
	resp := global.SuccessResponse(map[string]interface{}{
		"items": set.Entries(),
		"count": set.Count(),
	})
	if persistErr != nil {
		resp.Message = "Wishlist storage degraded; changes held in memory"
	}
	c.JSON(http.StatusOK, resp)
}

func (api *API) GetWishlist(c *gin.Context) {
	set := wishlist.NewSet(c.Request.Context(), api.Store, wishlist.Key(c.Param("sessionId")))
	wishlistResponse(c, set, nil)
}

func (api *API) CheckWishlist(c *gin.Context) {
	set := wishlist.NewSet(c.Request.Context(), api.Store, wishlist.Key(c.Param("sessionId")))
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]bool{
		"in_wishlist": set.Contains(c.Param("id")),
	}))
}

func (api *API) AddToWishlist(c *gin.Context) {
	var req models.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()
	set := wishlist.NewSet(ctx, api.Store, wishlist.Key(c.Param("sessionId")))
	err := set.Add(ctx, req.Entry())
	wishlistResponse(c, set, err)
}

func (api *API) RemoveFromWishlist(c *gin.Context) {
	ctx := c.Request.Context()
	set := wishlist.NewSet(ctx, api.Store, wishlist.Key(c.Param("sessionId")))
	err := set.Remove(ctx, c.Param("id"))
	wishlistResponse(c, set, err)
}

func (api *API) ClearWishlist(c *gin.Context) {
	ctx := c.Request.Context()
	set := wishlist.NewSet(ctx, api.Store, wishlist.Key(c.Param("sessionId")))
	err := set.Clear(ctx)
	wishlistResponse(c, set, err)
}
