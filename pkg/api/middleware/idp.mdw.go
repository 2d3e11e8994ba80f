package middleware

import (
	"akurat-backend/pkg/cognito"

	"github.com/gin-gonic/gin"
)

// Adds the identity-provider client to the Gin context.
// The client is constructed once at startup and shared across requests.
func IdpMiddleware(idp cognito.Api) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("idp", idp)
		c.Next()
	}
}
