package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsite-backend/pkg/jwt"
)

const testCookie = "session_token"

func init() {
	gin.SetMode(gin.TestMode)
}

func newGatedEngine(m *jwt.Manager) *gin.Engine {
	r := gin.New()
	r.Use(AdminGate(m, testCookie))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/admin", ok)
	r.GET("/admin/settings", ok)
	r.GET("/admin/login", ok)
	r.POST("/admin/login", ok)
	r.GET("/administrators", ok)
	r.GET("/api/v1/blog", ok)
	return r
}

func validToken(t *testing.T, m *jwt.Manager) string {
	t.Helper()
	token, _, err := m.GenerateSessionToken("u-1", "admin@example.org")
	require.NoError(t, err)
	return token
}

func TestAdminGate_RedirectsWithoutSession(t *testing.T) {
	m := jwt.NewManager("secret", time.Hour)
	r := newGatedEngine(m)

	for _, path := range []string{"/admin", "/admin/settings", "/admin/unknown/page"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, AdminLoginPath, w.Header().Get("Location"))
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}

func TestAdminGate_RedirectsWithInvalidSession(t *testing.T) {
	m := jwt.NewManager("secret", time.Hour)
	forged := validToken(t, jwt.NewManager("other", time.Hour))
	r := newGatedEngine(m)

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: forged})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAdminGate_PassesWithSession(t *testing.T) {
	m := jwt.NewManager("secret", time.Hour)
	token := validToken(t, m)
	r := newGatedEngine(m)

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAdminGate_LoginAlwaysReachable(t *testing.T) {
	m := jwt.NewManager("secret", time.Hour)
	r := newGatedEngine(m)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, AdminLoginPath, nil))
		assert.Equal(t, http.StatusOK, w.Code, method)
	}

	req := httptest.NewRequest(http.MethodGet, AdminLoginPath, nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: validToken(t, m)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGate_IgnoresOtherPaths(t *testing.T) {
	r := newGatedEngine(jwt.NewManager("secret", time.Hour))

	for _, path := range []string{"/api/v1/blog", "/administrators"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, w.Header().Get("Cache-Control"), path)
	}
}

func TestRequireSession(t *testing.T) {
	m := jwt.NewManager("secret", time.Hour)
	r := gin.New()
	r.POST("/api/v1/projects", RequireSession(m, testCookie), func(c *gin.Context) {
		claims, ok := SessionClaims(c)
		require.True(t, ok)
		c.String(http.StatusCreated, claims.UserID)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: validToken(t, m)})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "u-1", w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextKeyRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/v1/team/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/team/42", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/v1/team/:id", http.MethodGet, "404")))
}
