package auth

import (
	apierrors "akurat-backend/pkg/api/errors"
	"akurat-backend/pkg/cognito"
	"akurat-backend/pkg/enum"
	"akurat-backend/pkg/jwks"

	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthGuard verifies the bearer access token against the user pool's JWKS.
// Protected handlers behind it perform no authorization checks of their own.
func AuthGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKeys, ok := c.Get("jwks")
		if !ok {
			c.JSON(http.StatusInternalServerError, apierrors.ApiError{
				Code:    http.StatusInternalServerError,
				Error:   enum.ApiError,
				Details: "JWKS key set not found in context",
			})
			c.Abort()
			return
		}
		keys, ok := rawKeys.(*jwks.KeySet)
		if !ok {
			c.JSON(http.StatusInternalServerError, apierrors.ApiError{
				Code:    http.StatusInternalServerError,
				Error:   enum.ApiError,
				Details: "JWKS key set is not of type *jwks.KeySet",
			})
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || tokenString == "" {
			unauthorized(c)
			return
		}

		token, err := jwt.Parse(
			tokenString,
			keys.KeyfuncWithContext(c.Request.Context()),
			jwt.WithValidMethods([]string{"RS256"}),
			jwt.WithIssuer(keys.Issuer()),
			jwt.WithExpirationRequired(),
		)
		if err != nil {
			if errors.Is(err, jwks.ErrKeyUnavailable) {
				verifyWithProvider(c, tokenString)
				return
			}
			unauthorized(c)
			return
		}
		if !token.Valid {
			unauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["token_use"] != "access" {
			unauthorized(c)
			return
		}

		c.Set("username", claims["username"])
		c.Set("sub", claims["sub"])
		c.Next()
	}
}

// verifyWithProvider asks the provider to validate the access token when the
// signing keys cannot be fetched. A token the provider accepts identifies the
// caller just as a locally verified one would.
func verifyWithProvider(c *gin.Context, tokenString string) {
	rawIdp, ok := c.Get("idp")
	if !ok {
		unauthorized(c)
		return
	}
	idp, ok := rawIdp.(cognito.Api)
	if !ok {
		unauthorized(c)
		return
	}

	record, err := idp.GetUser(c.Request.Context(), tokenString)
	if err != nil || record == nil {
		unauthorized(c)
		return
	}

	c.Set("username", record.Username)
	c.Set("sub", record.Sub)
	c.Next()
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, apierrors.MessageError{
		Code:    http.StatusUnauthorized,
		Message: "Unauthorized",
	})
	c.Abort()
}
