package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"orgsite-backend/internal/domains/auth"
	"orgsite-backend/internal/shared/middleware"
	"orgsite-backend/internal/shared/response"
)

// CookieOptions controls the session cookie written on login.
type CookieOptions struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	service auth.Service
	cookie  CookieOptions
}

func NewAuthHandler(service auth.Service, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{service: service, cookie: cookie}
}

// Login handles POST /admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	res, err := h.service.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, res.Token, maxAge, "/", "", h.cookie.Secure, true)

	response.OK(c, res)
}

// Status handles GET /admin/login
func (h *AuthHandler) Status(c *gin.Context) {
	claims, err := h.service.ValidateSessionToken(middleware.SessionToken(c, h.cookie.Name))
	if err != nil {
		response.OK(c, auth.SessionStatus{Authenticated: false})
		return
	}
	response.OK(c, auth.SessionStatus{Authenticated: true, Email: claims.Email})
}

// Logout handles POST /admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	response.OK(c, gin.H{"loggedOut": true})
}
