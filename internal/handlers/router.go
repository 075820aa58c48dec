// SPDX-License-Identifier: MIT
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thatcatcamp/themekit/internal/middleware"
	"github.com/thatcatcamp/themekit/internal/state"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// RouterConfig carries everything NewRouter wires together
type RouterConfig struct {
	Catalog  *themes.Catalog
	Store    SessionStore
	Defaults state.Defaults
	Logger   *zap.Logger

	// preference writes per client per minute; zero disables the limit
	RateLimit         int
	CSRF              bool
	HSTS              bool
	BlockedIPs        []string
	MetricsAllowedIPs []string
	// proxies whose X-Forwarded-For is believed; empty trusts none
	TrustedProxies []string
	Ping              func() error
}

// NewRouter builds the themekit HTTP surface
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = themes.Default()
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		cfg.Logger.Warn("ignoring invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.Logging(cfg.Logger, "/health", "/metrics"))
	r.Use(middleware.SecurityHeadersMiddleware(cfg.HSTS))
	r.Use(middleware.IPFilterMiddleware(cfg.BlockedIPs))

	// System routes (no theme context needed)
	r.GET("/health", HealthHandler(cfg.Ping))
	r.GET("/metrics", middleware.AllowOnly(cfg.MetricsAllowedIPs), MetricsHandler())

	themeGroup := r.Group("/")
	if cfg.RateLimit > 0 {
		themeGroup.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimit, time.Minute), "/theme/"))
	}
	if cfg.CSRF {
		themeGroup.Use(middleware.CSRFMiddleware("/theme/"))
	}
	themeGroup.Use(middleware.ThemeMiddleware(cfg.Store, cfg.Catalog, cfg.Defaults, cfg.Logger))

	NewThemeHandler(cfg.Catalog, cfg.Store, cfg.Logger).Routes(themeGroup)
	return r
}
