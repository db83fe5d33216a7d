package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vasanthsingh/QuickPass/internal/dto"
	"github.com/vasanthsingh/QuickPass/internal/service"
	"github.com/vasanthsingh/QuickPass/pkg/response"
)

// WardenHandler serves warden account management and the warden
// self-service endpoints.
type WardenHandler struct {
	wardenSvc service.WardenService
	authSvc   service.AuthService
}

// NewWardenHandler creates the WardenHandler.
func NewWardenHandler(wardenSvc service.WardenService, authSvc service.AuthService) *WardenHandler {
	return &WardenHandler{wardenSvc: wardenSvc, authSvc: authSvc}
}

// Login authenticates a warden by warden id.
// POST /api/wardens/login
func (h *WardenHandler) Login(c *gin.Context) {
	var req dto.WardenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "wardenId and password are required")
		return
	}

	token, warden, err := h.authSvc.LoginWarden(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid wardenId or password")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, "Warden login successful", response.Payload{"token": token, "warden": warden})
}

// Create registers a new warden.
// POST /api/wardens
func (h *WardenHandler) Create(c *gin.Context) {
	var req dto.CreateWardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "fullName, wardenId, email, password, phoneNumber and assignedHostel are required")
		return
	}

	warden, err := h.wardenSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, "Warden created successfully", response.Payload{"warden": warden})
}

// List returns every warden.
// GET /api/wardens
func (h *WardenHandler) List(c *gin.Context) {
	wardens, err := h.wardenSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Wardens retrieved successfully", response.Payload{
		"count":   len(wardens),
		"wardens": wardens,
	})
}

// Get returns one warden by id.
// GET /api/wardens/:id
func (h *WardenHandler) Get(c *gin.Context) {
	warden, err := h.wardenSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Warden retrieved successfully", response.Payload{"warden": warden})
}

// Update applies a partial update to a warden.
// PUT /api/wardens/:id
func (h *WardenHandler) Update(c *gin.Context) {
	var req dto.UpdateWardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	warden, err := h.wardenSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Warden updated successfully", response.Payload{"warden": warden})
}

// Delete removes a warden.
// DELETE /api/wardens/:id
func (h *WardenHandler) Delete(c *gin.Context) {
	if err := h.wardenSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Warden deleted successfully", nil)
}

// Profile returns the acting warden's own record.
// GET /api/wardens/profile
func (h *WardenHandler) Profile(c *gin.Context) {
	id, ok := MustGetPrincipalID(c)
	if !ok {
		return
	}
	warden, err := h.wardenSvc.Profile(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Warden profile retrieved successfully", response.Payload{"warden": warden})
}

// UpdateProfile updates the acting warden's own record.
// PUT /api/wardens/profile
func (h *WardenHandler) UpdateProfile(c *gin.Context) {
	id, ok := MustGetPrincipalID(c)
	if !ok {
		return
	}

	var req dto.UpdateWardenProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	warden, err := h.wardenSvc.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, "Warden profile updated successfully", response.Payload{"warden": warden})
}

// UpdatePassword changes the acting warden's own password.
// PUT /api/wardens/update-password
func (h *WardenHandler) UpdatePassword(c *gin.Context) {
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
