package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CRT1223/tech13-garage/internal/infrastructure/cache"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"go.uber.org/zap/zaptest"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func (failingLimiter) Limit() int { return 1 }

func rateLimitedRouter(t *testing.T, limiter cache.RateLimiter) *gin.Engine {
	router := gin.New()
	router.POST("/login", RateLimit(limiter, zaptest.NewLogger(t)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func postLogin(router http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	router := rateLimitedRouter(t, cache.NewInMemoryRateLimiter(2, time.Minute))

	assert.Equal(t, http.StatusOK, postLogin(router, "10.0.0.1").Code)
	rec := postLogin(router, "10.0.0.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))

	rec = postLogin(router, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "ERR_RATE_LIMITED", gjson.Get(rec.Body.String(), "error.code").String())

	// other clients have their own budget
	assert.Equal(t, http.StatusOK, postLogin(router, "10.0.0.2").Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	router := rateLimitedRouter(t, failingLimiter{})
	assert.Equal(t, http.StatusOK, postLogin(router, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, postLogin(router, "10.0.0.1").Code)
}
