package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"orgsite-backend/internal/shared/response"
	"orgsite-backend/pkg/jwt"
)

const ContextKeySession = "session_claims"

// SessionValidator is satisfied by *jwt.Manager.
type SessionValidator interface {
	ValidateSessionToken(token string) (*jwt.Claims, error)
}

// SessionToken reads the token from the session cookie, falling back to a
// Bearer Authorization header.
func SessionToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// Authenticate validates the request's session and stores the claims in the context.
func Authenticate(c *gin.Context, validator SessionValidator, cookieName string) bool {
	claims, err := validator.ValidateSessionToken(SessionToken(c, cookieName))
	if err != nil {
		return false
	}
	c.Set(ContextKeySession, claims)
	return true
}

// RequireSession guards JSON API routes: 401 when no valid session.
func RequireSession(validator SessionValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Authenticate(c, validator, cookieName) {
			response.Unauthorized(c, "Authentication required")
			return
		}
		c.Next()
	}
}

// SessionClaims returns the claims set by RequireSession or AdminGate.
func SessionClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(ContextKeySession)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
