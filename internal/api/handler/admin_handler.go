package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vasanthsingh/QuickPass/internal/dto"
	"github.com/vasanthsingh/QuickPass/internal/service"
	"github.com/vasanthsingh/QuickPass/pkg/response"
)

// AdminHandler serves the admin account endpoints.
type AdminHandler struct {
	adminSvc service.AdminService
	authSvc  service.AuthService
}

// NewAdminHandler creates the AdminHandler.
func NewAdminHandler(adminSvc service.AdminService, authSvc service.AuthService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, authSvc: authSvc}
}

// Login authenticates an admin by username.
// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	token, admin, err := h.authSvc.LoginAdmin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid username or password")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, "Login successful", response.Payload{"token": token, "admin": admin})
}

// Create registers a new admin.
// POST /api/admin/create
func (h *AdminHandler) Create(c *gin.Context) {
	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	admin, err := h.adminSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, "Admin created successfully", response.Payload{"admin": admin})
}

// List returns every admin.
// GET /api/admin
func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.adminSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Admins retrieved successfully", response.Payload{
		"count":  len(admins),
		"admins": admins,
	})
}

// Get returns one admin by id.
// GET /api/admin/:id
func (h *AdminHandler) Get(c *gin.Context) {
	admin, err := h.adminSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Admin retrieved successfully", response.Payload{"admin": admin})
}

// Update applies a partial update to an admin.
// PUT /api/admin/:id
func (h *AdminHandler) Update(c *gin.Context) {
	var req dto.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	admin, err := h.adminSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Admin updated successfully", response.Payload{"admin": admin})
}

// Delete removes an admin.
// DELETE /api/admin/:id
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.adminSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Admin deleted successfully", nil)
}

// UpdatePassword changes the acting admin's own password.
// PUT /api/admin/update-password
func (h *AdminHandler) UpdatePassword(c *gin.Context) {
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

// Dashboard returns the principal-count headline numbers.
// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminSvc.DashboardStats(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Dashboard stats retrieved", response.Payload{"stats": stats})
}
