// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/walletive/backend/internal/domain/error"
	"github.com/walletive/backend/internal/integration/entrypoint/dto"
)

// window tracks the attempts of one client inside the current window.
type window struct {
	attempts int
	resetAt  time.Time
}

// RateLimiter limits survey writes per client IP using fixed windows.
// A limiter built with maxAttempts <= 0 lets every request through.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*window
	maxAttempts int
	length      time.Duration
	now         func() time.Time
}

// NewRateLimiter creates a rate limiter allowing maxAttempts requests per client in each window.
func NewRateLimiter(maxAttempts int, length time.Duration) *RateLimiter {
	return &RateLimiter{
		windows:     make(map[string]*window),
		maxAttempts: maxAttempts,
		length:      length,
		now:         time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.maxAttempts <= 0 {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if wait, ok := rl.allow(clientIP); !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// allow records an attempt for key. When the limit is exceeded it returns
// false and the time left until the window resets.
func (rl *RateLimiter) allow(key string) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	w, exists := rl.windows[key]
	if !exists || !now.Before(w.resetAt) {
		rl.windows[key] = &window{attempts: 1, resetAt: now.Add(rl.length)}
		return 0, true
	}

	if w.attempts < rl.maxAttempts {
		w.attempts++
		return 0, true
	}

	return w.resetAt.Sub(now), false
}

// Reset clears the limiter state.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*window)
}

// Cleanup drops windows that have already expired.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.windows {
		if !now.Before(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}
