package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vasanthsingh/QuickPass/internal/dto"
	"github.com/vasanthsingh/QuickPass/internal/model"
	"github.com/vasanthsingh/QuickPass/internal/repository"
	"github.com/vasanthsingh/QuickPass/pkg/password"
)

// AdminService manages admin accounts and the dashboard counters.
type AdminService interface {
	Create(ctx context.Context, req *dto.CreateAdminRequest) (*model.Admin, error)
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	Update(ctx context.Context, id string, req *dto.UpdateAdminRequest) (*model.Admin, error)
	Delete(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
}

type adminService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdminService creates the AdminService.
func NewAdminService(repo *repository.Repository, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, logger: logger}
}

func (s *adminService) Create(ctx context.Context, req *dto.CreateAdminRequest) (*model.Admin, error) {
	if _, err := s.repo.Admin.GetByUsername(ctx, req.Username); err == nil {
		return nil, &repository.ConflictError{Field: "username"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Name:         req.Name,
		Role:         model.RoleAdmin.String(),
	}
	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		return nil, err
	}
	s.logger.Info("admin created", zap.String("username", admin.Username))
	return admin, nil
}

func (s *adminService) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	admin, err := s.repo.Admin.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	return admin, err
}

func (s *adminService) List(ctx context.Context) ([]model.Admin, error) {
	return s.repo.Admin.List(ctx)
}

func (s *adminService) Update(ctx context.Context, id string, req *dto.UpdateAdminRequest) (*model.Admin, error) {
	admin, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		admin.Email = *req.Email
	}
	if req.Name != nil {
		admin.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if err := s.repo.Admin.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Admin.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrAdminNotFound
	}
	return nil
}

// DashboardStats counts every principal kind for the admin landing page.
func (s *adminService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}
	var err error
	if stats.TotalAdmins, err = s.repo.Admin.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalWardens, err = s.repo.Warden.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalSecurity, err = s.repo.Guard.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalStudents, err = s.repo.Student.Count(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
