package middleware

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/docstream/docstream-api/pkg/errors"
	"github.com/docstream/docstream-api/pkg/response"
)

// RequireAdmin only lets administrators through. It must run after JWT.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if !claims.IsAdmin {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
