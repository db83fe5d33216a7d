package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vasanthsingh/QuickPass/internal/model"
)

// GuardRepository is the security-guard data-access interface.
type GuardRepository interface {
	Create(ctx context.Context, guard *model.Guard) error
	GetByID(ctx context.Context, id string) (*model.Guard, error)
	GetByGuardID(ctx context.Context, guardID string) (*model.Guard, error)
	List(ctx context.Context) ([]model.Guard, error)
	Update(ctx context.Context, guard *model.Guard) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type guardRepo struct {
	crudRepo[model.Guard]
}

// NewGuardRepo creates the GORM-backed GuardRepository.
func NewGuardRepo(db *gorm.DB) GuardRepository {
	return &guardRepo{newCRUDRepo[model.Guard](db, "id")}
}

func (r *guardRepo) GetByGuardID(ctx context.Context, guardID string) (*model.Guard, error) {
	return r.getByColumn(ctx, "guard_id", guardID)
}
