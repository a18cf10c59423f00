package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/culinaryco/menucraft/backend/internal/middleware"
)

func TestRateLimitMiddleware(t *testing.T) {
	limitConfig := middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     5,
		KeyPrefix: "ratelimit:test",
	}

	t.Run("unauthenticated request is rejected", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(redis.NewClient(&redis.Options{Addr: "localhost:1"}), limitConfig)
		router := gin.New()
		router.Use(limiter.RateLimitMiddleware())
		router.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("redis failure lets the request through", func(t *testing.T) {
		// Port 1 is never a redis server; the limiter must fail open.
		limiter := middleware.NewRateLimiter(redis.NewClient(&redis.Options{Addr: "localhost:1"}), limitConfig)
		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			c.Next()
		})
		router.Use(limiter.RateLimitMiddleware())
		router.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
	})
}
