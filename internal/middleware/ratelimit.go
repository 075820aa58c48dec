// SPDX-License-Identifier: MIT
package middleware

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	maxClients  = 10000
	idleTimeout = 10 * time.Minute
)

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientEntry
	capacity int
	interval time.Duration
}

// NewRateLimiter allows capacity requests per interval for each client,
// refilling continuously.
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		clients:  make(map[string]*clientEntry),
		capacity: capacity,
		interval: interval,
	}
}

// Allow consumes a token for ip and reports what is left
func (rl *RateLimiter) Allow(ip string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	e, ok := rl.clients[ip]
	if !ok {
		if len(rl.clients) >= maxClients {
			rl.cleanup(time.Now())
		}
		every := rate.Every(rl.interval / time.Duration(max(rl.capacity, 1)))
		e = &clientEntry{limiter: rate.NewLimiter(every, rl.capacity)}
		rl.clients[ip] = e
	}
	e.lastSeen = time.Now()

	if !e.limiter.Allow() {
		return false, 0
	}
	return true, int(e.limiter.Tokens())
}

// cleanup drops clients idle for longer than idleTimeout. Caller holds rl.mu.
func (rl *RateLimiter) cleanup(now time.Time) {
	cutoff := now.Add(-idleTimeout)
	for ip, e := range rl.clients {
		if e.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

// RateLimitMiddleware limits POST requests whose path starts with one of
// prefixes. Reads are never limited.
func RateLimitMiddleware(limiter *RateLimiter, prefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" || !hasPrefix(c.Request.URL.Path, prefixes) {
			c.Next()
			return
		}

		allowed, remaining := limiter.Allow(getClientIP(c))

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.capacity))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			retryAfter := int((limiter.interval / time.Duration(max(limiter.capacity, 1))).Seconds())
			c.Header("Retry-After", fmt.Sprintf("%d", max(retryAfter, 1)))
			c.AbortWithStatusJSON(429, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// getClientIP returns the client address. Forwarding headers are only
// honoured when the peer is one of the engine's trusted proxies.
func getClientIP(c *gin.Context) string {
	return c.ClientIP()
}
