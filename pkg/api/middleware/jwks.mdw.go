package middleware

import (
	"akurat-backend/pkg/jwks"

	"github.com/gin-gonic/gin"
)

// Adds the user pool's JWKS key set to the Gin context for the auth guard.
func JwksMiddleware(keys *jwks.KeySet) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("jwks", keys)
		c.Next()
	}
}
