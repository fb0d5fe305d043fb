package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/ai"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/cart"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/global"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/wishlist"
)

// GetShoppingInsights generates a merchandising report over one visitor
// session's cart and wishlist. Degrades to raw aggregates when the AI service
// is not configured.
func (api *API) GetShoppingInsights(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("sessionId query parameter required", []global.ValidationError{
			{Field: "sessionId", Message: "sessionId query parameter is required", Code: "required"},
		}))
		return
	}

	ctx := c.Request.Context()
	ledger := cart.NewLedger(ctx, api.Store, cart.Key(sessionID))
	set := wishlist.NewSet(ctx, api.Store, wishlist.Key(sessionID))

	report := ai.GenerateShoppingInsights(ctx, ledger.Snapshot(), set.Entries())
	c.JSON(http.StatusOK, global.SuccessResponse(report))
}
