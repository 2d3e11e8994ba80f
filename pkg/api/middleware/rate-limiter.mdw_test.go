package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(requests int, timeframe time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/limited", RateLimiterMiddleware(requests, timeframe), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	router := newLimitedRouter(3, time.Hour)

	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/limited", nil))
		require.Equal(t, http.StatusOK, recorder.Code, "request %d within the burst must pass", i+1)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/limited", nil))
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	router := newLimitedRouter(1, time.Hour)

	first := httptest.NewRequest(http.MethodGet, "/limited", nil)
	first.Header.Set("X-Forwarded-For", "203.0.113.10")
	second := httptest.NewRequest(http.MethodGet, "/limited", nil)
	second.Header.Set("X-Forwarded-For", "203.0.113.20")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, first)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, second)
	require.Equal(t, http.StatusOK, recorder.Code)
}
