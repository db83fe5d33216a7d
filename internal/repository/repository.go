package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates all entity repositories.
type Repository struct {
	Admin          AdminRepository
	Warden         WardenRepository
	Guard          GuardRepository
	Student        StudentRepository
	ProfileRequest ProfileRequestRepository

	db *gorm.DB
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Admin:          NewAdminRepo(db),
		Warden:         NewWardenRepo(db),
		Guard:          NewGuardRepo(db),
		Student:        NewStudentRepo(db),
		ProfileRequest: NewProfileRequestRepo(db),
		db:             db,
	}
}

// BeginTx opens a transaction for multi-row writes (bulk import). A
// Repository assembled from fakes has no db handle and returns a nil tx;
// callers guard on that.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx returns a Repository bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
