package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/cart"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/global"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
)

// cartResponse wraps the snapshot, flagging storage degradation when the
// mutation applied in memory but the mirrored persist failed.
func cartResponse(c *gin.Context, snapshot models.CartSnapshot, persistErr error) {
	resp := global.SuccessResponse(snapshot)
	if persistErr != nil {
		resp.Message = "Cart storage degraded; changes held in memory"
	}
	c.JSON(http.StatusOK, resp)
}

func (api *API) GetCart(c *gin.Context) {
	ledger := cart.NewLedger(c.Request.Context(), api.Store, cart.Key(c.Param("sessionId")))
	c.JSON(http.StatusOK, global.SuccessResponse(ledger.Snapshot()))
}

func (api *API) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx := c.Request.Context()
	ledger := cart.NewLedger(ctx, api.Store, cart.Key(c.Param("sessionId")))
	err := ledger.AddItem(ctx, req.Product(), req.Quantity)
	cartResponse(c, ledger.Snapshot(), err)
}

func (api *API) UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()
	ledger := cart.NewLedger(ctx, api.Store, cart.Key(c.Param("sessionId")))
	err := ledger.UpdateQuantity(ctx, c.Param("productId"), req.Quantity)
	cartResponse(c, ledger.Snapshot(), err)
}

func (api *API) RemoveFromCart(c *gin.Context) {
	ctx := c.Request.Context()
	ledger := cart.NewLedger(ctx, api.Store, cart.Key(c.Param("sessionId")))
	err := ledger.RemoveItem(ctx, c.Param("productId"))
	cartResponse(c, ledger.Snapshot(), err)
}

func (api *API) ClearCart(c *gin.Context) {
	ctx := c.Request.Context()
	ledger := cart.NewLedger(ctx, api.Store, cart.Key(c.Param("sessionId")))
	err := ledger.Clear(ctx)
	cartResponse(c, ledger.Snapshot(), err)
}
