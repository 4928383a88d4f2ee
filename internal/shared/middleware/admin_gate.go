package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	AdminPrefix    = "/admin"
	AdminLoginPath = "/admin/login"
)

func isAdminPath(path string) bool {
	return path == AdminPrefix || strings.HasPrefix(path, AdminPrefix+"/")
}

// AdminGate runs on the engine so it also sees unmatched /admin paths.
// Every /admin request except the login page needs a valid session,
// otherwise it is redirected to the login page. Nothing is cached: the
// token is re-validated on each request.
func AdminGate(validator SessionValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !isAdminPath(path) {
			c.Next()
			return
		}

		c.Header("Cache-Control", "no-store")

		if path == AdminLoginPath {
			c.Next()
			return
		}

		if !Authenticate(c, validator, cookieName) {
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
