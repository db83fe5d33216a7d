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

// WardenService manages warden accounts and the warden self-profile.
type WardenService interface {
	Create(ctx context.Context, req *dto.CreateWardenRequest) (*model.Warden, error)
	GetByID(ctx context.Context, id string) (*model.Warden, error)
	List(ctx context.Context) ([]model.Warden, error)
	Update(ctx context.Context, id string, req *dto.UpdateWardenRequest) (*model.Warden, error)
	Delete(ctx context.Context, id string) error
	Profile(ctx context.Context, id string) (*model.Warden, error)
	UpdateProfile(ctx context.Context, id string, req *dto.UpdateWardenProfileRequest) (*model.Warden, error)
}

type wardenService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWardenService creates the WardenService.
func NewWardenService(repo *repository.Repository, logger *zap.Logger) WardenService {
	return &wardenService{repo: repo, logger: logger}
}

func (s *wardenService) Create(ctx context.Context, req *dto.CreateWardenRequest) (*model.Warden, error) {
	if !model.ValidHostel(req.AssignedHostel) {
		return nil, Validationf("assignedHostel must be one of BH1, BH2, GH1, GH2")
	}

	if _, err := s.repo.Warden.GetByWardenID(ctx, req.WardenID); err == nil {
		return nil, &repository.ConflictError{Field: "wardenId"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.repo.Warden.GetByEmail(ctx, req.Email); err == nil {
		return nil, &repository.ConflictError{Field: "email"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	warden := &model.Warden{
		FullName:       req.FullName,
		WardenID:       req.WardenID,
		Email:          req.Email,
		PasswordHash:   hash,
		PhoneNumber:    req.PhoneNumber,
		AssignedHostel: req.AssignedHostel,
		OfficeLocation: req.OfficeLocation,
		IsActive:       true,
	}
	if req.IsActive != nil {
		warden.IsActive = *req.IsActive
	}
	if err := s.repo.Warden.Create(ctx, warden); err != nil {
		return nil, err
	}
	s.logger.Info("warden created",
		zap.String("wardenId", warden.WardenID),
		zap.String("hostel", warden.AssignedHostel))
	return warden, nil
}

func (s *wardenService) GetByID(ctx context.Context, id string) (*model.Warden, error) {
	warden, err := s.repo.Warden.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWardenNotFound
	}
	return warden, err
}

func (s *wardenService) List(ctx context.Context) ([]model.Warden, error) {
	return s.repo.Warden.List(ctx)
}

func (s *wardenService) Update(ctx context.Context, id string, req *dto.UpdateWardenRequest) (*model.Warden, error) {
	warden, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != warden.Email {
		if _, err := s.repo.Warden.GetByEmail(ctx, *req.Email); err == nil {
			return nil, &repository.ConflictError{Field: "email"}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		warden.Email = *req.Email
	}
	if req.FullName != nil {
		warden.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		warden.PhoneNumber = *req.PhoneNumber
	}
	if req.AssignedHostel != nil {
		if !model.ValidHostel(*req.AssignedHostel) {
			return nil, Validationf("assignedHostel must be one of BH1, BH2, GH1, GH2")
		}
		warden.AssignedHostel = *req.AssignedHostel
	}
	if req.OfficeLocation != nil {
		warden.OfficeLocation = *req.OfficeLocation
	}
	if req.IsActive != nil {
		warden.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		warden.PasswordHash = hash
	}

	if err := s.repo.Warden.Update(ctx, warden); err != nil {
		return nil, err
	}
	return warden, nil
}

func (s *wardenService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Warden.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrWardenNotFound
	}
	return nil
}

// Profile returns the acting warden's own record.
func (s *wardenService) Profile(ctx context.Context, id string) (*model.Warden, error) {
	return s.GetByID(ctx, id)
}

// UpdateProfile applies the self-service subset. IsActive and the password
// are not reachable from here.
func (s *wardenService) UpdateProfile(ctx context.Context, id string, req *dto.UpdateWardenProfileRequest) (*model.Warden, error) {
	full := &dto.UpdateWardenRequest{
		FullName:       req.FullName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		AssignedHostel: req.AssignedHostel,
		OfficeLocation: req.OfficeLocation,
	}
	return s.Update(ctx, id, full)
}
