// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRFMiddleware("/theme/"))
	r.GET("/theme/state", func(c *gin.Context) { c.String(http.StatusOK, GetCSRFToken(c)) })
	r.POST("/theme/mode", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.POST("/other", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestCSRFIssuesToken(t *testing.T) {
	r := csrfRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/theme/state", nil))

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, csrfCookieName, cookies[0].Name)
	assert.Equal(t, cookies[0].Value, w.Body.String())
	assert.False(t, cookies[0].HttpOnly)
}

func TestCSRFRejectsMissingToken(t *testing.T) {
	r := csrfRouter()
	req := httptest.NewRequest("POST", "/theme/mode", nil)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "abc"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFAcceptsHeaderAndForm(t *testing.T) {
	r := csrfRouter()

	req := httptest.NewRequest("POST", "/theme/mode", nil)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "abc"})
	req.Header.Set(csrfHeaderName, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	form := url.Values{csrfFormField: {"abc"}, "value": {"dark"}}
	req = httptest.NewRequest("POST", "/theme/mode", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "abc"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCSRFIgnoresOtherPaths(t *testing.T) {
	r := csrfRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/other", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
