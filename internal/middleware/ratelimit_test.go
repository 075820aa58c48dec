// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func rateLimitedRequest(mw gin.HandlerFunc, method, path, remote string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	c.Request.RemoteAddr = remote
	mw(c)
	return w
}

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(5, time.Minute)
	w := rateLimitedRequest(RateLimitMiddleware(limiter, "/theme/"), "POST", "/theme/preset", "10.0.0.1:1234")

	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
	if w.Header().Get("X-RateLimit-Limit") != "5" {
		t.Errorf("Expected X-RateLimit-Limit: 5, got %s", w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(2, time.Minute)
	middleware := RateLimitMiddleware(limiter, "/theme/")

	for i := 0; i < 2; i++ {
		if w := rateLimitedRequest(middleware, "POST", "/theme/mode", "10.0.0.1:1234"); w.Code == 429 {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	w := rateLimitedRequest(middleware, "POST", "/theme/mode", "10.0.0.1:1234")
	if w.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
	if w.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("Expected X-RateLimit-Remaining: 0, got %s", w.Header().Get("X-RateLimit-Remaining"))
	}

	// other clients keep their own bucket
	if w := rateLimitedRequest(middleware, "POST", "/theme/mode", "10.0.0.2:1234"); w.Code == 429 {
		t.Error("Different client should not be rate limited")
	}
}

func TestRateLimitSkipsReadsAndOtherPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	middleware := RateLimitMiddleware(limiter, "/theme/")

	for i := 0; i < 3; i++ {
		if w := rateLimitedRequest(middleware, "GET", "/theme/state", "10.0.0.1:1234"); w.Code == 429 {
			t.Fatal("GET requests should not be rate limited")
		}
		if w := rateLimitedRequest(middleware, "POST", "/health", "10.0.0.1:1234"); w.Code == 429 {
			t.Fatal("Paths outside the prefix should not be rate limited")
		}
	}
}

func forwardedContext(t *testing.T, trusted []string, remote, forwarded string) *gin.Context {
	t.Helper()
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	if err := engine.SetTrustedProxies(trusted); err != nil {
		t.Fatalf("SetTrustedProxies: %v", err)
	}
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remote
	c.Request.Header.Set("X-Forwarded-For", forwarded)
	return c
}

func TestGetClientIPForwardedByTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := forwardedContext(t, []string{"10.0.0.0/8"}, "10.0.0.1:1234", "203.0.113.7, 10.0.0.2")
	if ip := getClientIP(c); ip != "203.0.113.7" {
		t.Errorf("expected forwarded ip, got %s", ip)
	}
}

func TestGetClientIPIgnoresUntrustedForwarding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := forwardedContext(t, nil, "203.0.113.5:1234", "10.0.0.1")
	if ip := getClientIP(c); ip != "203.0.113.5" {
		t.Errorf("expected peer address, got %s", ip)
	}
}

func TestRateLimitForgedForwardingSharesBucket(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := RateLimitMiddleware(NewRateLimiter(1, time.Minute), "/theme/")
	for i, forged := range []string{"198.51.100.1", "198.51.100.2"} {
		w := httptest.NewRecorder()
		c, engine := gin.CreateTestContext(w)
		_ = engine.SetTrustedProxies(nil)
		c.Request = httptest.NewRequest("POST", "/theme/preset", nil)
		c.Request.RemoteAddr = "203.0.113.5:1234"
		c.Request.Header.Set("X-Forwarded-For", forged)
		mw(c)

		if i == 1 && w.Code != 429 {
			t.Errorf("expected 429 for a forged address from the same peer, got %d", w.Code)
		}
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	limiter.Allow("10.0.0.1")
	limiter.clients["10.0.0.1"].lastSeen = time.Now().Add(-time.Hour)
	limiter.Allow("10.0.0.2")

	limiter.mu.Lock()
	limiter.cleanup(time.Now())
	limiter.mu.Unlock()

	if _, ok := limiter.clients["10.0.0.1"]; ok {
		t.Error("idle client should be removed")
	}
	if _, ok := limiter.clients["10.0.0.2"]; !ok {
		t.Error("active client should be kept")
	}
}
