package middleware

import (
	"akurat-backend/pkg/api/errors"
	"akurat-backend/pkg/config"
	"akurat-backend/pkg/logger"

	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func LoggerMiddleware(moduleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, ok := c.Get("config")
		if !ok {
			c.JSON(http.StatusInternalServerError, errors.ApiError{
				Code:    http.StatusInternalServerError,
				Error:   "ConfigError",
				Details: "Config not found in context",
			})
			c.Abort()
			return
		}

		config, ok := cfg.(*config.Config)
		if !ok {
			c.JSON(http.StatusInternalServerError, errors.ApiError{
				Code:    http.StatusInternalServerError,
				Error:   "ConfigError",
				Details: "Config is not of type *config.Config",
			})
			c.Abort()
			return
		}

		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)
		c.Set("logger", logger.NewLogger(os.Stdout, moduleName, config.LogLevel, requestID))
		c.Next()
	}
}
