package service

import (
	"go.uber.org/zap"

	"github.com/vasanthsingh/QuickPass/internal/repository"
	"github.com/vasanthsingh/QuickPass/pkg/jwt"
	"github.com/vasanthsingh/QuickPass/pkg/redis"
)

// Service aggregates all business-logic services.
type Service struct {
	Auth     AuthService
	Admin    AdminService
	Warden   WardenService
	Security SecurityService
	Student  StudentService
}

// NewService wires the service implementations.
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, jwtMgr, rdb, logger),
		Admin:    NewAdminService(repo, logger),
		Warden:   NewWardenService(repo, logger),
		Security: NewSecurityService(repo, logger),
		Student:  NewStudentService(repo, logger),
	}
}
