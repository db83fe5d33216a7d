package repository

import (
	"context"

	"gorm.io/gorm"
)

// crudRepo is the generic GORM base shared by all principal repositories.
// The CRUD surface is identical across the four principal kinds, so it is
// modeled once here; per-entity repositories embed it and add their
// key-lookup and search methods.
type crudRepo[T any] struct {
	db *gorm.DB
	pk string // primary-key column name
}

func newCRUDRepo[T any](db *gorm.DB, pk string) crudRepo[T] {
	return crudRepo[T]{db: db, pk: pk}
}

func (r *crudRepo[T]) Create(ctx context.Context, record *T) error {
	return DuplicateKey(r.db.WithContext(ctx).Create(record).Error)
}

func (r *crudRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).Where(r.pk+" = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *crudRepo[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error
	return records, err
}

// Update writes the full record back; concurrent writers are
// last-writer-wins, there is no version check.
func (r *crudRepo[T]) Update(ctx context.Context, record *T) error {
	return DuplicateKey(r.db.WithContext(ctx).Save(record).Error)
}

// Delete hard-deletes by id. found is false when no row matched.
func (r *crudRepo[T]) Delete(ctx context.Context, id string) (found bool, err error) {
	var record T
	res := r.db.WithContext(ctx).Where(r.pk+" = ?", id).Delete(&record)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *crudRepo[T]) Count(ctx context.Context) (int64, error) {
	var record T
	var count int64
	err := r.db.WithContext(ctx).Model(&record).Count(&count).Error
	return count, err
}

// getByColumn is the shared single-column lookup behind the per-entity
// GetByUsername / GetByWardenID / ... methods.
func (r *crudRepo[T]) getByColumn(ctx context.Context, column, value string) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
