package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/global"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/session"
)

func (api *API) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	if _, err := api.Sessions.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password", []global.ValidationError{
				{Field: "credentials", Message: "Email or password did not match", Code: "invalid_credentials"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to log in", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(api.Sessions.Snapshot()))
}

func (api *API) Logout(c *gin.Context) {
	api.Sessions.Logout(c.Request.Context())
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Logged out"}))
}

// GetSession returns the current session snapshot. Expiry is lazy: a held
// token that has aged out is cleared here, on the check, not by a timer.
func (api *API) GetSession(c *gin.Context) {
	if api.Sessions.IsAuthenticated() && !api.Sessions.ValidateToken() {
		api.Sessions.Logout(c.Request.Context())
	}
	c.JSON(http.StatusOK, global.SuccessResponse(api.Sessions.Snapshot()))
}
