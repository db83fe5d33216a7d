package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vasanthsingh/QuickPass/internal/repository"
	"github.com/vasanthsingh/QuickPass/internal/service"
	"github.com/vasanthsingh/QuickPass/pkg/response"
)

// writeServiceError maps a service failure onto the HTTP error taxonomy.
// Login-specific 401s are handled at the call sites; everything generic
// funnels through here.
func writeServiceError(c *gin.Context, err error) {
	if ve, ok := service.AsValidation(err); ok {
		response.BadRequest(c, ve.Message)
		return
	}
	if ce, ok := repository.AsConflict(err); ok {
		response.BadRequest(c, ce.Error())
		return
	}
	switch {
	case errors.Is(err, service.ErrAdminNotFound):
		response.NotFound(c, "Admin not found")
	case errors.Is(err, service.ErrWardenNotFound):
		response.NotFound(c, "Warden not found")
	case errors.Is(err, service.ErrGuardNotFound):
		response.NotFound(c, "Security guard not found")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, "Student not found")
	case errors.Is(err, service.ErrCurrentPasswordWrong):
		response.Unauthorized(c, "Current password is incorrect")
	default:
		response.InternalError(c, err)
	}
}
