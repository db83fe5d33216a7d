package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vasanthsingh/QuickPass/internal/service"
	"github.com/vasanthsingh/QuickPass/pkg/response"
)

// AuthHandler serves the cross-principal auth endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Logout blacklists the presented token until it would have expired.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, ok := MustGetPrincipalID(c); !ok {
		return
	}
	jti, exp := tokenJTI(c)
	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Logged out successfully", nil)
}
