package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vasanthsingh/QuickPass/internal/model"
)

// WardenRepository is the warden data-access interface.
type WardenRepository interface {
	Create(ctx context.Context, warden *model.Warden) error
	GetByID(ctx context.Context, id string) (*model.Warden, error)
	GetByWardenID(ctx context.Context, wardenID string) (*model.Warden, error)
	GetByEmail(ctx context.Context, email string) (*model.Warden, error)
	List(ctx context.Context) ([]model.Warden, error)
	Update(ctx context.Context, warden *model.Warden) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type wardenRepo struct {
	crudRepo[model.Warden]
}

// NewWardenRepo creates the GORM-backed WardenRepository.
func NewWardenRepo(db *gorm.DB) WardenRepository {
	return &wardenRepo{newCRUDRepo[model.Warden](db, "id")}
}

func (r *wardenRepo) GetByWardenID(ctx context.Context, wardenID string) (*model.Warden, error) {
	return r.getByColumn(ctx, "warden_id", wardenID)
}

func (r *wardenRepo) GetByEmail(ctx context.Context, email string) (*model.Warden, error) {
	return r.getByColumn(ctx, "email", email)
}
