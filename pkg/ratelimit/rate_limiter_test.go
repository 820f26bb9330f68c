package ratelimit_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catering/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// windowEvaler emulates the sliding window script with an in-memory counter
// per key. err, when set, is returned for every call.
type windowEvaler struct {
	counts map[string]int64
	keys   []string
	err    error
}

func (e *windowEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	if e.err != nil {
		return redis.NewCmdResult(nil, e.err)
	}
	if e.counts == nil {
		e.counts = map[string]int64{}
	}

	key := keys[0]
	e.keys = append(e.keys, key)
	limit := int64(args[2].(int))

	if e.counts[key] >= limit {
		return redis.NewCmdResult([]interface{}{int64(0), int64(0)}, nil)
	}
	e.counts[key]++
	return redis.NewCmdResult([]interface{}{int64(1), limit - e.counts[key]}, nil)
}

func newLimiter(evaler ratelimit.Evaler, enabled bool) *ratelimit.RateLimiter {
	return ratelimit.NewRateLimiter(evaler, &ratelimit.Config{
		Enabled:        enabled,
		WindowDuration: time.Minute,
		Requests:       2,
	})
}

func TestIsAllowedCountsDownThenBlocks(t *testing.T) {
	evaler := &windowEvaler{}
	limiter := newLimiter(evaler, true)
	ctx := context.Background()

	first, err := limiter.IsAllowed(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)

	second, err := limiter.IsAllowed(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, 0, second.Remaining)

	third, err := limiter.IsAllowed(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Equal(t, 2, third.Limit)

	other, err := limiter.IsAllowed(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	assert.Equal(t, "catering:ratelimit:10.0.0.1", evaler.keys[0])
}

func TestIsAllowedDisabledSkipsRedis(t *testing.T) {
	evaler := &windowEvaler{err: errors.New("should not be called")}
	limiter := newLimiter(evaler, false)

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Empty(t, evaler.keys)
}

func TestIsAllowedRedisError(t *testing.T) {
	limiter := newLimiter(&windowEvaler{err: errors.New("connection refused")}, true)

	_, err := limiter.IsAllowed(context.Background(), "10.0.0.1")
	assert.ErrorContains(t, err, "connection refused")
}

func newRouter(limiter *ratelimit.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/book-event", ratelimit.Middleware(limiter), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func book(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/book-event", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMiddlewareReturns429(t *testing.T) {
	router := newRouter(newLimiter(&windowEvaler{}, true))

	assert.Equal(t, http.StatusOK, book(router).Code)

	w := book(router)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = book(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"message":"Too many booking requests","error":"rate limit exceeded"}`, w.Body.String())
}

func TestMiddlewareFailsOpen(t *testing.T) {
	router := newRouter(newLimiter(&windowEvaler{err: errors.New("redis down")}, true))

	w := book(router)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}
