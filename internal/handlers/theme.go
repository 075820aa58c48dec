// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thatcatcamp/themekit/internal/a11y"
	"github.com/thatcatcamp/themekit/internal/css"
	"github.com/thatcatcamp/themekit/internal/middleware"
	"github.com/thatcatcamp/themekit/internal/state"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// SessionStore is what the theme handlers need from sessions.Store
type SessionStore interface {
	middleware.SessionLoader
	Save(id string, data state.SessionData) error
}

// ThemeHandler serves the stylesheet and the theme preference endpoints
type ThemeHandler struct {
	Catalog   *themes.Catalog
	Store     SessionStore
	Validator *a11y.Validator
	Logger    *zap.Logger

	// composed stylesheets by ETag; the catalog never changes at runtime
	cache sync.Map
}

func NewThemeHandler(cat *themes.Catalog, store SessionStore, logger *zap.Logger) *ThemeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ThemeHandler{
		Catalog:   cat,
		Store:     store,
		Validator: a11y.NewValidator(cat, logger),
		Logger:    logger,
	}
}

// Routes registers the theme endpoints. They expect ThemeMiddleware upstream.
func (h *ThemeHandler) Routes(r gin.IRoutes) {
	r.GET("/theme.css", h.StylesheetHandler)
	r.GET("/theme/state", h.StateHandler)
	r.GET("/theme/presets", h.PresetsHandler)
	r.GET("/theme/designs", h.DesignsHandler)
	r.GET("/theme/packs", h.PacksHandler)
	r.GET("/theme/validate", h.ValidateHandler)
	r.POST("/theme/design", h.SetDesignHandler)
	r.POST("/theme/preset", h.SetPresetHandler)
	r.POST("/theme/mode", h.SetModeHandler)
	r.POST("/theme/pack", h.SetPackHandler)
	r.POST("/theme/toggle", h.ToggleModeHandler)
}

// StylesheetHandler serves the composed CSS for the request's theme state
func (h *ThemeHandler) StylesheetHandler(c *gin.Context) {
	st, ok := middleware.GetThemeState(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	minify := isTrue(c.Query("minify"))
	etag := st.ETag()
	if minify {
		etag = strings.TrimSuffix(etag, `"`) + `-min"`
	}

	c.Header("ETag", etag)
	c.Header("Cache-Control", "private, max-age=3600")
	c.Header("Vary", "Cookie")

	if etagMatches(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)
		return
	}

	out, err := h.stylesheet(st, etag, minify)
	if err != nil {
		h.Logger.Error("failed to compose stylesheet", zap.String("etag", etag), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(out))
}

func (h *ThemeHandler) stylesheet(st state.ThemeState, etag string, minify bool) (string, error) {
	if cached, ok := h.cache.Load(etag); ok {
		cssCacheHits.Inc()
		return cached.(string), nil
	}

	start := time.Now()
	var out string
	var err error
	if st.Pack != "" {
		out, err = css.ComposePack(h.Catalog, st.Pack, css.DefaultOptions())
	} else {
		out, err = css.ComposeNamed(h.Catalog, st.Theme, st.Preset, css.DefaultOptions())
	}
	if err != nil {
		return "", err
	}
	if minify {
		out = css.Minify(out)
	}
	cssComposeDuration.Observe(time.Since(start).Seconds())

	h.cache.Store(etag, out)
	return out, nil
}

// etagMatches implements If-None-Match weak comparison
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

type stateResponse struct {
	state.ThemeState
	CSRFToken string `json:"csrf_token,omitempty"`
}

// StateHandler returns the resolved theme state
func (h *ThemeHandler) StateHandler(c *gin.Context) {
	st, ok := middleware.GetThemeState(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, stateResponse{ThemeState: st, CSRFToken: middleware.GetCSRFToken(c)})
}

// PresetsHandler lists color presets with the active one marked
func (h *ThemeHandler) PresetsHandler(c *gin.Context) {
	m, ok := h.manager(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"presets": m.AvailablePresets()})
}

type listEntry struct {
	themes.Info
	Active bool `json:"is_active"`
}

func markActive(infos []themes.Info, active string) []listEntry {
	out := make([]listEntry, 0, len(infos))
	for _, i := range infos {
		out = append(out, listEntry{Info: i, Active: i.Name == active})
	}
	return out
}

// DesignsHandler lists design systems with the active one marked
func (h *ThemeHandler) DesignsHandler(c *gin.Context) {
	st, _ := middleware.GetThemeState(c)
	c.JSON(http.StatusOK, gin.H{"designs": markActive(h.Catalog.Designs.List(), st.Theme)})
}

// PacksHandler lists theme packs with the active one marked
func (h *ThemeHandler) PacksHandler(c *gin.Context) {
	st, _ := middleware.GetThemeState(c)
	c.JSON(http.StatusOK, gin.H{"packs": markActive(h.Catalog.Packs.List(), st.Pack)})
}

// ValidateHandler returns the accessibility report for the current
// selection. ?design= and ?preset= override it; ?light_only=1 skips dark mode.
func (h *ThemeHandler) ValidateHandler(c *gin.Context) {
	st, _ := middleware.GetThemeState(c)
	design := c.DefaultQuery("design", st.Theme)
	preset := c.DefaultQuery("preset", st.Preset)

	report, err := h.Validator.ValidateNamed(design, preset, a11y.Options{LightOnly: isTrue(c.Query("light_only"))})
	if errors.Is(err, themes.ErrUnknownDesignSystem) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ThemeHandler) SetDesignHandler(c *gin.Context) {
	h.update(c, "design", state.CookieTheme, (*state.Manager).SetTheme)
}

func (h *ThemeHandler) SetPresetHandler(c *gin.Context) {
	h.update(c, "preset", state.CookiePreset, (*state.Manager).SetPreset)
}

func (h *ThemeHandler) SetPackHandler(c *gin.Context) {
	h.update(c, "pack", state.CookiePack, (*state.Manager).SetPack)
}

// SetModeHandler stores the mode in the session only; mode has no cookie
func (h *ThemeHandler) SetModeHandler(c *gin.Context) {
	h.update(c, "mode", "", (*state.Manager).SetMode)
}

// ToggleModeHandler flips between light and dark
func (h *ThemeHandler) ToggleModeHandler(c *gin.Context) {
	h.update(c, "toggle", "", func(m *state.Manager, _ string) error {
		m.ToggleMode()
		return nil
	})
}

// update applies one preference change, persists the session and answers
// with the new state. cookieName is empty for changes kept in the session only.
func (h *ThemeHandler) update(c *gin.Context, field, cookieName string, apply func(*state.Manager, string) error) {
	m, ok := h.manager(c)
	if !ok {
		return
	}

	value := strings.TrimSpace(c.PostForm("value"))
	if err := apply(m, value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.GetString(middleware.SessionIDKey)
	if err := h.Store.Save(id, m.Session()); err != nil {
		h.Logger.Error("failed to save theme session", zap.String("session", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save preference"})
		return
	}
	if cookieName != "" {
		middleware.SetCookie(c, cookieName, value)
	}

	themeChanges.WithLabelValues(field).Inc()

	st := m.State()
	c.Set(middleware.StateKey, st)

	// plain form posts from a page on this host go back to it
	if ref, ok := sameHostReferer(c); ok && strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusSeeOther, ref)
		return
	}
	c.JSON(http.StatusOK, stateResponse{ThemeState: st, CSRFToken: middleware.GetCSRFToken(c)})
}

func (h *ThemeHandler) manager(c *gin.Context) (*state.Manager, bool) {
	ctx, ok := middleware.GetThemeContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil, false
	}
	return state.NewManager(h.Catalog, ctx), true
}

func sameHostReferer(c *gin.Context) (string, bool) {
	ref := c.GetHeader("Referer")
	if ref == "" {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" || !strings.EqualFold(u.Host, c.Request.Host) {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return ref, true
}

func isTrue(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
