package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasanthsingh/QuickPass/internal/api/middleware"
	"github.com/vasanthsingh/QuickPass/internal/model"
	"github.com/vasanthsingh/QuickPass/pkg/response"
)

// MustGetPrincipalID extracts the authenticated principal's id from the gin
// context. On a missing or malformed value it writes a 401 and returns
// ok=false; the caller should return immediately.
func MustGetPrincipalID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxPrincipalID)
	if !exists {
		response.Unauthorized(c, "No token provided. Access denied.")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "No token provided. Access denied.")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the authenticated principal's role.
func MustGetRole(c *gin.Context) (model.Role, bool) {
	v, exists := c.Get(middleware.CtxRole)
	if !exists {
		response.Unauthorized(c, "No token provided. Access denied.")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "No token provided. Access denied.")
		return "", false
	}
	return model.Role(s), true
}

// tokenJTI returns the jti and expiry set by the auth middleware.
func tokenJTI(c *gin.Context) (string, time.Time) {
	jti := c.GetString(middleware.CtxTokenJTI)
	exp, _ := c.Get(middleware.CtxTokenExpiry)
	t, _ := exp.(time.Time)
	return jti, t
}
