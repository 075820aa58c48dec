// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thatcatcamp/themekit/internal/db"
	"github.com/thatcatcamp/themekit/internal/sessions"
	"github.com/thatcatcamp/themekit/internal/state"
	"github.com/thatcatcamp/themekit/internal/themes"
)

func setupHandlerTestStore(t *testing.T) *sessions.Store {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	sqlDB, err := database.DB()
	require.NoError(t, err)
	// every pooled connection to :memory: would be a separate database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database))
	return sessions.NewStore(database)
}

func newTestRouter(t *testing.T, mutate ...func(*RouterConfig)) (*gin.Engine, *sessions.Store) {
	gin.SetMode(gin.TestMode)
	store := setupHandlerTestStore(t)
	cfg := RouterConfig{
		Catalog:  themes.Default(),
		Store:    store,
		Defaults: state.DefaultDefaults(),
	}
	for _, m := range mutate {
		m(&cfg)
	}
	return NewRouter(cfg), store
}

type client struct {
	t       *testing.T
	r       *gin.Engine
	cookies map[string]*http.Cookie
	headers map[string]string
}

func newClient(t *testing.T, r *gin.Engine) *client {
	return &client{t: t, r: r, cookies: map[string]*http.Cookie{}, headers: map[string]string{}}
}

// do sends a request carrying the cookies collected so far
func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.RemoteAddr = "192.0.2.10:5555"
	for k, v := range cl.headers {
		req.Header.Set(k, v)
	}
	for _, ck := range cl.cookies {
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	}

	w := httptest.NewRecorder()
	cl.r.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(cl.cookies, ck.Name)
			continue
		}
		cl.cookies[ck.Name] = ck
	}
	return w
}

func (cl *client) state(w *httptest.ResponseRecorder) stateResponse {
	cl.t.Helper()
	require.Equal(cl.t, http.StatusOK, w.Code, w.Body.String())
	var st stateResponse
	require.NoError(cl.t, json.Unmarshal(w.Body.Bytes(), &st))
	return st
}

func TestStylesheetDefaults(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)

	w := cl.do("GET", "/theme.css", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `"material-default-system-none"`, w.Header().Get("ETag"))
	assert.Equal(t, "private, max-age=3600", w.Header().Get("Cache-Control"))
	assert.Equal(t, "Cookie", w.Header().Get("Vary"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Body.String(), ":root {")
	assert.Contains(t, w.Body.String(), "/* Design System: material */")
	assert.Contains(t, cl.cookies, sessions.CookieName)
}

func TestStylesheetNotModified(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)

	cl.headers["If-None-Match"] = `W/"other", "material-default-system-none"`
	w := cl.do("GET", "/theme.css", nil)
	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, `"material-default-system-none"`, w.Header().Get("ETag"))
}

func TestStylesheetMinified(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)

	w := cl.do("GET", "/theme.css?minify=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"material-default-system-none-min"`, w.Header().Get("ETag"))
	assert.NotContains(t, w.Body.String(), "\n")
	assert.NotContains(t, w.Body.String(), "/*")

	// second request comes from the cache and is identical
	again := cl.do("GET", "/theme.css?minify=1", nil)
	assert.Equal(t, w.Body.String(), again.Body.String())
}

func TestSetPresetPersistsAndSetsCookie(t *testing.T) {
	r, store := newTestRouter(t)
	cl := newClient(t, r)

	st := cl.state(cl.do("POST", "/theme/preset", url.Values{"value": {"rose"}}))
	assert.Equal(t, "rose", st.Preset)
	require.Contains(t, cl.cookies, state.CookiePreset)
	assert.Equal(t, "rose", cl.cookies[state.CookiePreset].Value)
	assert.False(t, cl.cookies[state.CookiePreset].HttpOnly)
	assert.True(t, cl.cookies[sessions.CookieName].HttpOnly)

	data, err := store.Load(cl.cookies[sessions.CookieName].Value)
	require.NoError(t, err)
	assert.Equal(t, "rose", data.Preset)

	w := cl.do("GET", "/theme.css", nil)
	assert.Equal(t, `"material-rose-system-none"`, w.Header().Get("ETag"))
}

func TestSetRejectsUnknownValues(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)

	tests := []struct {
		path  string
		value string
	}{
		{"/theme/design", "bootstrap"},
		{"/theme/preset", "chartreuse"},
		{"/theme/mode", "sepia"},
		{"/theme/pack", "vaporwave"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := cl.do("POST", tt.path, url.Values{"value": {tt.value}})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.value)
		})
	}
	assert.NotContains(t, cl.cookies, state.CookieTheme)
}

func TestModeIsSessionOnly(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)

	st := cl.state(cl.do("POST", "/theme/mode", url.Values{"value": {"dark"}}))
	assert.Equal(t, state.ModeDark, st.Mode)
	assert.Equal(t, state.ModeDark, st.ResolvedMode)
	assert.Len(t, cl.cookies, 1, "only the session cookie")

	st = cl.state(cl.do("GET", "/theme/state", nil))
	assert.Equal(t, state.ModeDark, st.Mode)

	// a fresh browser does not see it
	other := newClient(t, r)
	st = other.state(other.do("GET", "/theme/state", nil))
	assert.Equal(t, state.ModeSystem, st.Mode)
}

func TestToggleMode(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)

	st := cl.state(cl.do("POST", "/theme/toggle", nil))
	assert.Equal(t, state.ModeDark, st.Mode, "system resolves to light, so it toggles to dark")

	st = cl.state(cl.do("POST", "/theme/toggle", nil))
	assert.Equal(t, state.ModeLight, st.Mode)
}

func TestPackOverridesAndClears(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)

	st := cl.state(cl.do("POST", "/theme/pack", url.Values{"value": {"corporate"}}))
	assert.Equal(t, "corporate", st.Pack)
	assert.Equal(t, "corporate", st.Theme)
	assert.Equal(t, "blue", st.Preset)

	w := cl.do("GET", "/theme.css", nil)
	assert.Equal(t, `"corporate-blue-system-corporate"`, w.Header().Get("ETag"))
	assert.Contains(t, w.Body.String(), "/* Theme Pack: Corporate Professional */")

	st = cl.state(cl.do("POST", "/theme/pack", url.Values{"value": {""}}))
	assert.Empty(t, st.Pack)
	assert.Equal(t, "material", st.Theme)
	assert.NotContains(t, cl.cookies, state.CookiePack)
}

func TestFormPostRedirectsBack(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)
	cl.headers["Accept"] = "text/html,application/xhtml+xml"
	// httptest requests are addressed to example.com
	cl.headers["Referer"] = "http://example.com/settings"

	w := cl.do("POST", "/theme/design", url.Values{"value": {"ios"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "http://example.com/settings", w.Header().Get("Location"))
}

func TestFormPostIgnoresForeignReferer(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)
	cl.headers["Accept"] = "text/html,application/xhtml+xml"

	for _, ref := range []string{"https://evil.test/phish", "javascript:alert(1)", "//evil.test/x"} {
		cl.headers["Referer"] = ref
		w := cl.do("POST", "/theme/preset", url.Values{"value": {"blue"}})
		assert.Empty(t, w.Header().Get("Location"), ref)
		assert.Equal(t, "blue", cl.state(w).Preset, ref)
	}
}

func TestListings(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)

	var presets struct {
		Presets []struct {
			Name   string `json:"name"`
			Active bool   `json:"is_active"`
			Light  string `json:"primary_hsl_light"`
		} `json:"presets"`
	}
	w := cl.do("GET", "/theme/presets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &presets))
	require.Len(t, presets.Presets, themes.Default().Presets.Len())
	for _, p := range presets.Presets {
		assert.Equal(t, p.Name == "default", p.Active, p.Name)
		assert.NotEmpty(t, p.Light)
	}

	var designs struct {
		Designs []listEntry `json:"designs"`
	}
	w = cl.do("GET", "/theme/designs", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &designs))
	assert.Len(t, designs.Designs, themes.Default().Designs.Len())

	var packs struct {
		Packs []listEntry `json:"packs"`
	}
	w = cl.do("GET", "/theme/packs", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packs))
	for _, p := range packs.Packs {
		assert.False(t, p.Active)
	}
}

func TestValidateEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)

	var report struct {
		DesignSystem string  `json:"design_system"`
		ColorPreset  string  `json:"color_preset"`
		Score        float64 `json:"score"`
		Total        int     `json:"total"`
	}
	w := cl.do("GET", "/theme/validate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "material", report.DesignSystem)
	assert.Equal(t, 20, report.Total)
	assert.True(t, report.Score >= 0 && report.Score <= 100)

	w = cl.do("GET", "/theme/validate?design=ios&preset=blue&light_only=true", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "ios", report.DesignSystem)
	assert.Equal(t, 10, report.Total)

	w = cl.do("GET", "/theme/validate?design=nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	r, _ := newTestRouter(t)
	cl := newClient(t, r)

	w := cl.do("GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotContains(t, cl.cookies, sessions.CookieName, "system routes skip theme resolution")

	cl.do("GET", "/theme.css", nil)
	w = cl.do("GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "themekit_http_requests_total")
	assert.Contains(t, w.Body.String(), "themekit_css_compose_seconds")
}

func TestHealthReportsDatabaseFailure(t *testing.T) {
	r, _ := newTestRouter(t, func(cfg *RouterConfig) {
		cfg.Ping = func() error { return errors.New("database is locked") }
	})
	w := newClient(t, r).do("GET", "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsAllowlist(t *testing.T) {
	r, _ := newTestRouter(t, func(cfg *RouterConfig) {
		cfg.MetricsAllowedIPs = []string{"127.0.0.1"}
	})
	cl := newClient(t, r)
	w := cl.do("GET", "/metrics", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	cl.headers["X-Forwarded-For"] = "127.0.0.1"
	w = cl.do("GET", "/metrics", nil)
	assert.Equal(t, http.StatusForbidden, w.Code, "forwarding headers from untrusted peers are ignored")
}

func TestMetricsAllowlistBehindTrustedProxy(t *testing.T) {
	r, _ := newTestRouter(t, func(cfg *RouterConfig) {
		cfg.MetricsAllowedIPs = []string{"127.0.0.1"}
		cfg.TrustedProxies = []string{"192.0.2.0/24"}
	})
	cl := newClient(t, r)
	cl.headers["X-Forwarded-For"] = "127.0.0.1"
	w := cl.do("GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFProtectedWrites(t *testing.T) {
	r, _ := newTestRouter(t, func(cfg *RouterConfig) { cfg.CSRF = true })
	cl := newClient(t, r)

	w := cl.do("POST", "/theme/mode", url.Values{"value": {"dark"}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	st := cl.state(cl.do("GET", "/theme/state", nil))
	require.NotEmpty(t, st.CSRFToken)

	cl.headers["X-CSRF-Token"] = st.CSRFToken
	st = cl.state(cl.do("POST", "/theme/mode", url.Values{"value": {"dark"}}))
	assert.Equal(t, state.ModeDark, st.Mode)
}

func TestRateLimitedWrites(t *testing.T) {
	r, _ := newTestRouter(t, func(cfg *RouterConfig) { cfg.RateLimit = 2 })
	cl := newClient(t, r)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, cl.do("POST", "/theme/toggle", nil).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, cl.do("POST", "/theme/toggle", nil).Code)
	assert.Equal(t, http.StatusOK, cl.do("GET", "/theme/state", nil).Code, "reads are not limited")
}

func TestEtagMatches(t *testing.T) {
	assert.True(t, etagMatches(`"a"`, `"a"`))
	assert.True(t, etagMatches(`W/"a"`, `"a"`))
	assert.True(t, etagMatches(`*`, `"a"`))
	assert.True(t, etagMatches(`"b", "a"`, `"a"`))
	assert.False(t, etagMatches(``, `"a"`))
	assert.False(t, etagMatches(`"b"`, `"a"`))
}
