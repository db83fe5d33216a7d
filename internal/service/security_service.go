package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vasanthsingh/QuickPass/internal/dto"
	"github.com/vasanthsingh/QuickPass/internal/model"
	"github.com/vasanthsingh/QuickPass/internal/repository"
	"github.com/vasanthsingh/QuickPass/pkg/password"
)

const dateJoinedLayout = "2006-01-02"

// SecurityService manages security guard accounts.
type SecurityService interface {
	Create(ctx context.Context, req *dto.CreateSecurityRequest) (*model.Guard, error)
	GetByID(ctx context.Context, id string) (*model.Guard, error)
	List(ctx context.Context) ([]model.Guard, error)
	Update(ctx context.Context, id string, req *dto.UpdateSecurityRequest) (*model.Guard, error)
	Delete(ctx context.Context, id string) error
}

type securityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSecurityService creates the SecurityService.
func NewSecurityService(repo *repository.Repository, logger *zap.Logger) SecurityService {
	return &securityService{repo: repo, logger: logger}
}

func (s *securityService) Create(ctx context.Context, req *dto.CreateSecurityRequest) (*model.Guard, error) {
	if !model.ValidGate(req.AssignedGate) {
		return nil, Validationf("assignedGate is not a recognized gate")
	}
	if !model.ValidShift(req.ShiftTime) {
		return nil, Validationf("shiftTime is not a recognized shift")
	}
	status := req.Status
	if status == "" {
		status = model.GuardActive
	}
	if !model.ValidGuardStatus(status) {
		return nil, Validationf("status must be Active or On Leave")
	}
	dateJoined, err := time.Parse(dateJoinedLayout, req.DateJoined)
	if err != nil {
		return nil, Validationf("dateJoined must be in YYYY-MM-DD format")
	}

	if _, err := s.repo.Guard.GetByGuardID(ctx, req.GuardID); err == nil {
		return nil, &repository.ConflictError{Field: "guardId"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	guard := &model.Guard{
		FullName:     req.FullName,
		GuardID:      req.GuardID,
		PasswordHash: hash,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		AssignedGate: req.AssignedGate,
		ShiftTime:    req.ShiftTime,
		Status:       status,
		DateJoined:   dateJoined,
	}
	if err := s.repo.Guard.Create(ctx, guard); err != nil {
		return nil, err
	}
	s.logger.Info("security guard created",
		zap.String("guardId", guard.GuardID),
		zap.String("gate", guard.AssignedGate))
	return guard, nil
}

func (s *securityService) GetByID(ctx context.Context, id string) (*model.Guard, error) {
	guard, err := s.repo.Guard.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGuardNotFound
	}
	return guard, err
}

func (s *securityService) List(ctx context.Context) ([]model.Guard, error) {
	return s.repo.Guard.List(ctx)
}

func (s *securityService) Update(ctx context.Context, id string, req *dto.UpdateSecurityRequest) (*model.Guard, error) {
	guard, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		guard.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		guard.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		guard.Email = *req.Email
	}
	if req.AssignedGate != nil {
		if !model.ValidGate(*req.AssignedGate) {
			return nil, Validationf("assignedGate is not a recognized gate")
		}
		guard.AssignedGate = *req.AssignedGate
	}
	if req.ShiftTime != nil {
		if !model.ValidShift(*req.ShiftTime) {
			return nil, Validationf("shiftTime is not a recognized shift")
		}
		guard.ShiftTime = *req.ShiftTime
	}
	if req.Status != nil {
		if !model.ValidGuardStatus(*req.Status) {
			return nil, Validationf("status must be Active or On Leave")
		}
		guard.Status = *req.Status
	}
	if req.DateJoined != nil {
		dateJoined, err := time.Parse(dateJoinedLayout, *req.DateJoined)
		if err != nil {
			return nil, Validationf("dateJoined must be in YYYY-MM-DD format")
		}
		guard.DateJoined = dateJoined
	}
	if req.Password != nil {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		guard.PasswordHash = hash
	}

	if err := s.repo.Guard.Update(ctx, guard); err != nil {
		return nil, err
	}
	return guard, nil
}

func (s *securityService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Guard.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrGuardNotFound
	}
	return nil
}
