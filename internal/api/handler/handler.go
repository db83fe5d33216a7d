package handler

import "github.com/vasanthsingh/QuickPass/internal/service"

// Handler aggregates the HTTP handlers for every module.
type Handler struct {
	Auth     *AuthHandler
	Admin    *AdminHandler
	Warden   *WardenHandler
	Security *SecurityHandler
	Student  *StudentHandler
}

// NewHandler wires the handlers onto the service layer.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		Admin:    NewAdminHandler(svc.Admin, svc.Auth),
		Warden:   NewWardenHandler(svc.Warden, svc.Auth),
		Security: NewSecurityHandler(svc.Security, svc.Auth),
		Student:  NewStudentHandler(svc.Student, svc.Auth),
	}
}
