package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vasanthsingh/QuickPass/internal/model"
)

// AdminRepository is the admin data-access interface.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	Update(ctx context.Context, admin *model.Admin) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type adminRepo struct {
	crudRepo[model.Admin]
}

// NewAdminRepo creates the GORM-backed AdminRepository.
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{newCRUDRepo[model.Admin](db, "admin_id")}
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return r.getByColumn(ctx, "username", username)
}
