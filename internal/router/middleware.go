package router

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/global"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/token"
)

// RequireElevatedAccess gates admin-console routes. It accepts a bearer token,
// decodes it and requires an admin or editor role. An expired token is logged
// distinctly from a malformed one but both reject as unauthenticated.
func (api *API) RequireElevatedAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Authentication required", []global.ValidationError{
				{Field: "authorization", Message: "Bearer token is required", Code: "required"},
			}))
			c.Abort()
			return
		}

		claims, err := api.Codec.Validate(raw)
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				log.Printf("Rejected expired session token")
			} else {
				log.Printf("Warning: rejected malformed session token")
			}
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Session is no longer valid", nil))
			c.Abort()
			return
		}

		user := claims.User()
		if !user.HasElevatedAccess() {
			c.JSON(http.StatusForbidden, global.ErrorResponse("Admin access required", nil))
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
