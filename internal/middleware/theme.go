// SPDX-License-Identifier: MIT
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thatcatcamp/themekit/internal/sessions"
	"github.com/thatcatcamp/themekit/internal/state"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// gin context keys set by ThemeMiddleware
const (
	StateKey     = "themeState"
	SessionKey   = "themeSession"
	SessionIDKey = "sessionID"
	ContextKey   = "themeContext"
)

// CookieMaxAge is the lifetime in seconds of every cookie themekit sets
var CookieMaxAge = 365 * 24 * 60 * 60

// SessionLoader is the read side of the session store
type SessionLoader interface {
	Load(id string) (state.SessionData, error)
}

// ThemeMiddleware resolves the theme state of each request from its cookies
// and stored session. A request without a usable session cookie is issued
// a new session id.
func ThemeMiddleware(store SessionLoader, cat *themes.Catalog, defaults state.Defaults, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		id, err := c.Cookie(sessions.CookieName)
		if err != nil || !sessions.ValidID(id) {
			id = sessions.NewID()
			setSessionCookie(c, id)
		}

		data, err := store.Load(id)
		if err != nil && !errors.Is(err, sessions.ErrNotFound) {
			logger.Warn("failed to load theme session", zap.String("session", id), zap.Error(err))
		}

		ctx := state.Context{
			CookieTheme:  cookie(c, state.CookieTheme),
			CookiePreset: cookie(c, state.CookiePreset),
			CookiePack:   cookie(c, state.CookiePack),
			Session:      data,
			Defaults:     defaults,
		}

		c.Set(SessionIDKey, id)
		c.Set(SessionKey, data)
		c.Set(ContextKey, ctx)
		c.Set(StateKey, state.Resolve(ctx, cat))
		c.Next()
	}
}

func cookie(c *gin.Context, name string) string {
	v, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return v
}

// SetCookie writes a site-wide theme preference cookie. The in-page theme
// switcher rewrites these from script, so they are not HttpOnly.
// An empty value clears the cookie.
func SetCookie(c *gin.Context, name, value string) {
	writeCookie(c, name, value, false)
}

func setSessionCookie(c *gin.Context, id string) {
	writeCookie(c, sessions.CookieName, id, true)
}

func writeCookie(c *gin.Context, name, value string, httpOnly bool) {
	maxAge := CookieMaxAge
	if value == "" {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", c.Request.TLS != nil, httpOnly)
}

// GetThemeState returns the state resolved for this request
func GetThemeState(c *gin.Context) (state.ThemeState, bool) {
	v, ok := c.Get(StateKey)
	if !ok {
		return state.ThemeState{}, false
	}
	st, ok := v.(state.ThemeState)
	return st, ok
}

// GetThemeContext returns the resolution inputs of this request
func GetThemeContext(c *gin.Context) (state.Context, bool) {
	v, ok := c.Get(ContextKey)
	if !ok {
		return state.Context{}, false
	}
	ctx, ok := v.(state.Context)
	return ctx, ok
}
