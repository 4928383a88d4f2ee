package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsite-backend/internal/domains/auth"
	"orgsite-backend/pkg/jwt"
)

type stubService struct {
	tokens *jwt.Manager
}

func (s *stubService) Login(ctx context.Context, req *auth.LoginRequest, ip string) (*auth.LoginResponse, error) {
	if req.Password != "pw" {
		return nil, auth.ErrInvalidCredentials
	}
	u := &auth.AdminUser{ID: uuid.New(), Email: req.Email, Role: auth.RoleAdmin, IsActive: true}
	token, exp, err := s.tokens.GenerateSessionToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, err
	}
	return &auth.LoginResponse{User: u, ExpiresAt: exp, Token: token}, nil
}

func (s *stubService) ValidateSessionToken(token string) (*jwt.Claims, error) {
	return s.tokens.ValidateSessionToken(token)
}

func (s *stubService) CreateAdmin(ctx context.Context, req *auth.CreateAdminRequest) (*auth.AdminUser, error) {
	return nil, nil
}

func router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(&stubService{tokens: jwt.NewManager("s", time.Hour)}, CookieOptions{Name: "session_token"})
	r := gin.New()
	r.POST("/admin/login", h.Login)
	r.GET("/admin/login", h.Status)
	r.POST("/admin/logout", h.Logout)
	return r
}

func login(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_SetsHttpOnlyCookie(t *testing.T) {
	r := router()
	w := login(r, `{"email":"a@org.example","password":"pw"}`)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)
	assert.NotContains(t, w.Body.String(), cookies[0].Value)
	assert.Contains(t, w.Body.String(), `"expiresAt"`)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	sw := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.AddCookie(cookies[0])
	r.ServeHTTP(sw, req)
	assert.Contains(t, sw.Body.String(), `"authenticated":true`)
}

func TestLogin_WrongPasswordIs401(t *testing.T) {
	w := login(router(), `{"email":"a@org.example","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestStatus_Anonymous(t *testing.T) {
	w := httptest.NewRecorder()
	router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestLogout_ClearsCookie(t *testing.T) {
	w := httptest.NewRecorder()
	router().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/logout", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0)
}
