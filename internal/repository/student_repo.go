package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vasanthsingh/QuickPass/internal/model"
)

// StudentRepository is the student data-access interface.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	Search(ctx context.Context, term string) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type studentRepo struct {
	crudRepo[model.Student]
}

// NewStudentRepo creates the GORM-backed StudentRepository.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{newCRUDRepo[model.Student](db, "id")}
}

func (r *studentRepo) GetByRollNumber(ctx context.Context, rollNumber string) (*model.Student, error) {
	return r.getByColumn(ctx, "roll_number", rollNumber)
}

// Search does a case-insensitive substring match across the warden panel's
// searchable columns. An empty term returns everything.
func (r *studentRepo) Search(ctx context.Context, term string) ([]model.Student, error) {
	db := r.db.WithContext(ctx).Model(&model.Student{})

	if term != "" {
		pattern := "%" + term + "%"
		db = db.Where(
			"full_name ILIKE ? OR roll_number ILIKE ? OR student_phone ILIKE ? OR student_email ILIKE ? OR room_number ILIKE ? OR hostel_block ILIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern,
		)
	}

	var students []model.Student
	err := db.Order("created_at DESC").Find(&students).Error
	return students, err
}
