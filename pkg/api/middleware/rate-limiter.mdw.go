package middleware

import (
	"akurat-backend/pkg/api/errors"
	"akurat-backend/pkg/enum"

	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiterMiddleware limits each client to the given number of requests
// per timeframe. State is in-process only; idle client entries expire with
// the timeframe. Load shedding beyond this is left to the hosting platform.
func RateLimiterMiddleware(requests int, timeframe time.Duration) gin.HandlerFunc {
	limiters := cache.New(2*timeframe, timeframe)

	return func(c *gin.Context) {
		key := c.ClientIP()

		var limiter *rate.Limiter
		if cached, found := limiters.Get(key); found {
			limiter = cached.(*rate.Limiter)
		} else {
			limiter = rate.NewLimiter(rate.Every(timeframe/time.Duration(requests)), requests)
			limiters.Set(key, limiter, cache.DefaultExpiration)
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, errors.ApiError{
				Code:  http.StatusTooManyRequests,
				Error: enum.TooManyRequests,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
