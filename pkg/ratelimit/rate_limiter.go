package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Config holds the sliding window settings
type Config struct {
	Enabled        bool          `json:"enabled"`
	WindowDuration time.Duration `json:"window_duration"`
	Requests       int           `json:"requests"`
	KeyPrefix      string        `json:"key_prefix"`
}

// Result represents rate limit check result
type Result struct {
	Allowed   bool  `json:"allowed"`
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetTime int64 `json:"reset_time"`
}

// Evaler is the subset of the Redis client used by the limiter.
// *redis.Client satisfies it.
type Evaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	client Evaler
	config *Config
	now    func() time.Time
}

func NewRateLimiter(client Evaler, config *Config) *RateLimiter {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "catering:ratelimit"
	}
	return &RateLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

// Atomic sliding window. Returns {allowed, remaining}.
const slidingWindowScript = `
	local key = KEYS[1]
	local window_start = tonumber(ARGV[1])
	local now = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_ms = tonumber(ARGV[4])
	local member = ARGV[5]

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)

	local current_count = redis.call('ZCARD', key)
	if current_count >= limit then
		redis.call('PEXPIRE', key, window_ms)
		return {0, 0}
	end

	redis.call('ZADD', key, now, member)
	redis.call('PEXPIRE', key, window_ms)

	return {1, limit - current_count - 1}
`

// IsAllowed checks whether clientIP may make another request in the current window
func (r *RateLimiter) IsAllowed(ctx context.Context, clientIP string) (*Result, error) {
	now := r.now()
	limit := r.config.Requests
	resetTime := now.Add(r.config.WindowDuration).Unix()

	if !r.config.Enabled {
		return &Result{Allowed: true, Limit: limit, Remaining: limit, ResetTime: resetTime}, nil
	}

	key := fmt.Sprintf("%s:%s", r.config.KeyPrefix, clientIP)
	windowStart := now.Add(-r.config.WindowDuration)

	result, err := r.client.Eval(ctx, slidingWindowScript, []string{key},
		windowStart.UnixMilli(),
		now.UnixMilli(),
		limit,
		r.config.WindowDuration.Milliseconds(),
		uuid.NewString(),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("redis eval failed: %w", err)
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 2 {
		return nil, fmt.Errorf("unexpected redis response: %v", result)
	}

	allowed, ok1 := values[0].(int64)
	remaining, ok2 := values[1].(int64)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("unexpected redis response: %v", values)
	}

	return &Result{
		Allowed:   allowed == 1,
		Limit:     limit,
		Remaining: int(remaining),
		ResetTime: resetTime,
	}, nil
}
