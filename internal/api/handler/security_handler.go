package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vasanthsingh/QuickPass/internal/dto"
	"github.com/vasanthsingh/QuickPass/internal/service"
	"github.com/vasanthsingh/QuickPass/pkg/response"
)

// SecurityHandler serves the security guard account endpoints.
type SecurityHandler struct {
	securitySvc service.SecurityService
	authSvc     service.AuthService
}

// NewSecurityHandler creates the SecurityHandler.
func NewSecurityHandler(securitySvc service.SecurityService, authSvc service.AuthService) *SecurityHandler {
	return &SecurityHandler{securitySvc: securitySvc, authSvc: authSvc}
}

// Login authenticates a guard by guard id.
// POST /api/security/login
func (h *SecurityHandler) Login(c *gin.Context) {
	var req dto.SecurityLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "guardId and password are required")
		return
	}

	token, guard, err := h.authSvc.LoginSecurity(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid guardId or password")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, "Security login successful", response.Payload{"token": token, "guard": guard})
}

// Create registers a new security guard.
// POST /api/security
func (h *SecurityHandler) Create(c *gin.Context) {
	var req dto.CreateSecurityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "fullName, guardId, password, phoneNumber, assignedGate and dateJoined are required")
		return
	}

	guard, err := h.securitySvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, "Security guard created successfully", response.Payload{"guard": guard})
}

// List returns every security guard.
// GET /api/security
func (h *SecurityHandler) List(c *gin.Context) {
	guards, err := h.securitySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Security guards retrieved successfully", response.Payload{
		"count":  len(guards),
		"guards": guards,
	})
}

// Get returns one security guard by id.
// GET /api/security/:id
func (h *SecurityHandler) Get(c *gin.Context) {
	guard, err := h.securitySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Security guard retrieved successfully", response.Payload{"guard": guard})
}

// Update applies a partial update to a security guard.
// PUT /api/security/:id
func (h *SecurityHandler) Update(c *gin.Context) {
	var req dto.UpdateSecurityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guard, err := h.securitySvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Security guard updated successfully", response.Payload{"guard": guard})
}

// Delete removes a security guard.
// DELETE /api/security/:id
func (h *SecurityHandler) Delete(c *gin.Context) {
	if err := h.securitySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Security guard deleted successfully", nil)
}

// UpdatePassword changes the acting guard's own password.
// PUT /api/security/update-password
func (h *SecurityHandler) UpdatePassword(c *gin.Context) {
	id, ok := MustGetPrincipalID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "currentPassword and newPassword are required")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), role, id, &req); err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Password updated successfully", nil)
}
