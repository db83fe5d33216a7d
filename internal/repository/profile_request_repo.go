package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vasanthsingh/QuickPass/internal/model"
)

// ProfileRequestRepository is the profile-change-request data-access
// interface. Requests are created and listed; status transitions are
// handled by the (future) warden approval flow.
type ProfileRequestRepository interface {
	Create(ctx context.Context, request *model.ProfileRequest) error
	ListByStudent(ctx context.Context, studentID string) ([]model.ProfileRequest, error)
}

type profileRequestRepo struct {
	db *gorm.DB
}

// NewProfileRequestRepo creates the GORM-backed ProfileRequestRepository.
func NewProfileRequestRepo(db *gorm.DB) ProfileRequestRepository {
	return &profileRequestRepo{db: db}
}

func (r *profileRequestRepo) Create(ctx context.Context, request *model.ProfileRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *profileRequestRepo) ListByStudent(ctx context.Context, studentID string) ([]model.ProfileRequest, error) {
	var requests []model.ProfileRequest
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("request_date DESC").
		Find(&requests).Error
	return requests, err
}
