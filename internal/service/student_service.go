package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vasanthsingh/QuickPass/internal/dto"
	"github.com/vasanthsingh/QuickPass/internal/model"
	"github.com/vasanthsingh/QuickPass/internal/repository"
	"github.com/vasanthsingh/QuickPass/pkg/password"
)

// StudentService manages student records, the student self-profile, profile
// change requests, the warden database view and the Excel bulk import.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*model.Student, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*model.Student, error)
	Delete(ctx context.Context, id string) error

	Profile(ctx context.Context, id string) (*model.Student, error)
	UpdateProfile(ctx context.Context, id string, req *dto.UpdateStudentProfileRequest) (*model.Student, error)

	CreateProfileRequest(ctx context.Context, studentID string, req *dto.CreateProfileRequestRequest) (*model.ProfileRequest, error)
	ListProfileRequests(ctx context.Context, studentID string) ([]model.ProfileRequest, error)

	DatabaseView(ctx context.Context, search string) (*dto.StudentDatabaseView, error)
	ImportStudents(ctx context.Context, sheet io.Reader) (*dto.ImportStudentsResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService creates the StudentService.
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*model.Student, error) {
	if _, err := s.repo.Student.GetByRollNumber(ctx, req.RollNumber); err == nil {
		return nil, &repository.ConflictError{Field: "rollNumber"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	plain := req.Password
	if plain == "" {
		plain = model.DefaultStudentPassword
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		FullName:     req.FullName,
		RollNumber:   req.RollNumber,
		StudentPhone: req.StudentPhone,
		ParentPhone:  req.ParentPhone,
		StudentEmail: req.StudentEmail,
		ParentEmail:  req.ParentEmail,
		HostelBlock:  req.HostelBlock,
		RoomNumber:   req.RoomNumber,
		Year:         req.Year,
		Branch:       req.Branch,
		PasswordHash: hash,
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		return nil, err
	}
	s.logger.Info("student created", zap.String("rollNumber", student.RollNumber))
	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStudentNotFound
	}
	return student, err
}

func (s *studentService) List(ctx context.Context) ([]model.Student, error) {
	return s.repo.Student.List(ctx)
}

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.StudentPhone != nil {
		student.StudentPhone = *req.StudentPhone
	}
	if req.ParentPhone != nil {
		student.ParentPhone = *req.ParentPhone
	}
	if req.StudentEmail != nil {
		student.StudentEmail = *req.StudentEmail
	}
	if req.ParentEmail != nil {
		student.ParentEmail = *req.ParentEmail
	}
	if req.HostelBlock != nil {
		student.HostelBlock = *req.HostelBlock
	}
	if req.RoomNumber != nil {
		student.RoomNumber = *req.RoomNumber
	}
	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.Branch != nil {
		student.Branch = *req.Branch
	}
	if req.IsDefaulter != nil {
		student.IsDefaulter = *req.IsDefaulter
	}
	if req.Password != nil {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		student.PasswordHash = hash
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes the student row. Pending profile requests are left behind
// deliberately; they reference the student by id without a constraint.
func (s *studentService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Student.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrStudentNotFound
	}
	return nil
}

// Profile returns the acting student's own record.
func (s *studentService) Profile(ctx context.Context, id string) (*model.Student, error) {
	return s.GetByID(ctx, id)
}

// UpdateProfile applies the student self-service subset directly. Room
// assignment, the defaulter flag and the password are out of reach here.
func (s *studentService) UpdateProfile(ctx context.Context, id string, req *dto.UpdateStudentProfileRequest) (*model.Student, error) {
	if req.FullName == nil && req.StudentPhone == nil && req.ParentPhone == nil &&
		req.StudentEmail == nil && req.ParentEmail == nil && req.Year == nil && req.Branch == nil {
		return nil, Validationf("No fields to update")
	}
	full := &dto.UpdateStudentRequest{
		FullName:     req.FullName,
		StudentPhone: req.StudentPhone,
		ParentPhone:  req.ParentPhone,
		StudentEmail: req.StudentEmail,
		ParentEmail:  req.ParentEmail,
		Year:         req.Year,
		Branch:       req.Branch,
	}
	return s.Update(ctx, id, full)
}

// CreateProfileRequest records a student's proposed edits for later review.
// Entries are filtered against the editable allow-list, old values are
// backfilled from the stored record and blank proposals are dropped. The
// Student row itself is never touched.
func (s *studentService) CreateProfileRequest(ctx context.Context, studentID string, req *dto.CreateProfileRequestRequest) (*model.ProfileRequest, error) {
	student, err := s.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	entries := req.Changes
	if len(entries) == 0 {
		for field, newValue := range req.Updates {
			entries = append(entries, dto.ProfileChangeEntry{Field: field, NewValue: newValue})
		}
	}

	var changes model.ChangeList
	for _, entry := range entries {
		label, allowed := model.EditableProfileFields[entry.Field]
		if !allowed {
			continue
		}
		newValue := strings.TrimSpace(entry.NewValue)
		if newValue == "" {
			continue
		}
		oldValue := entry.OldValue
		if oldValue == "" {
			oldValue, _ = student.ProfileField(entry.Field)
		}
		changes = append(changes, model.ProfileChange{
			Field:    entry.Field,
			Label:    label,
			OldValue: oldValue,
			NewValue: newValue,
		})
	}
	if len(changes) == 0 {
		return nil, Validationf("No valid changes provided")
	}

	request := &model.ProfileRequest{
		StudentID: studentID,
		Changes:   changes,
		Status:    model.RequestPending,
	}
	if err := s.repo.ProfileRequest.Create(ctx, request); err != nil {
		return nil, err
	}
	s.logger.Info("profile change request created",
		zap.String("studentId", studentID),
		zap.Int("changes", len(changes)))
	return request, nil
}

func (s *studentService) ListProfileRequests(ctx context.Context, studentID string) ([]model.ProfileRequest, error) {
	return s.repo.ProfileRequest.ListByStudent(ctx, studentID)
}

// DatabaseView builds the warden panel's student table: matching rows plus
// headline counters. Counters are computed over the matched set.
func (s *studentService) DatabaseView(ctx context.Context, search string) (*dto.StudentDatabaseView, error) {
	students, err := s.repo.Student.Search(ctx, search)
	if err != nil {
		return nil, err
	}

	view := &dto.StudentDatabaseView{
		TotalStudents: len(students),
		Search:        search,
		Students:      make([]dto.StudentDatabaseRow, 0, len(students)),
	}
	for _, st := range students {
		status := "Active"
		if st.IsDefaulter {
			status = "Defaulter"
			view.DefaulterCount++
		} else {
			view.ActiveCount++
		}
		var email *string
		if st.StudentEmail != "" {
			e := st.StudentEmail
			email = &e
		}
		view.Students = append(view.Students, dto.StudentDatabaseRow{
			ID: st.ID,
			StudentInfo: dto.StudentInfoCell{
				FullName:   st.FullName,
				RollNumber: st.RollNumber,
			},
			Room: dto.RoomCell{
				RoomNumber:  st.RoomNumber,
				HostelBlock: st.HostelBlock,
				Display:     fmt.Sprintf("%s-%s", st.HostelBlock, st.RoomNumber),
			},
			Contact: dto.ContactCell{
				Phone: st.StudentPhone,
				Email: email,
			},
			Status:      status,
			IsDefaulter: st.IsDefaulter,
		})
	}
	return view, nil
}

// ── Excel bulk import ──

// importColumns maps normalized sheet headers to student fields.
var importColumns = map[string]string{
	"fullname":      "fullName",
	"name":          "fullName",
	"rollnumber":    "rollNumber",
	"rollno":        "rollNumber",
	"studentphone":  "studentPhone",
	"phone":         "studentPhone",
	"parentphone":   "parentPhone",
	"guardianphone": "parentPhone",
	"studentemail":  "studentEmail",
	"email":         "studentEmail",
	"parentemail":   "parentEmail",
	"guardianemail": "parentEmail",
	"hostelblock":   "hostelBlock",
	"block":         "hostelBlock",
	"roomnumber":    "roomNumber",
	"room":          "roomNumber",
	"year":          "year",
	"branch":        "branch",
	"password":      "password",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "")
	h = strings.ReplaceAll(h, "_", "")
	return h
}

// ImportStudents reads an .xlsx sheet of students and inserts the valid
// rows in a single transaction. Rows that fail validation are reported per
// row; a storage failure rolls the whole batch back.
func (s *studentService) ImportStudents(ctx context.Context, sheet io.Reader) (*dto.ImportStudentsResponse, error) {
	f, err := excelize.OpenReader(sheet)
	if err != nil {
		return nil, Validationf("Could not read the uploaded file as an Excel workbook")
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, Validationf("Could not read rows from the first sheet")
	}
	if len(rows) < 2 {
		return nil, Validationf("The sheet has no data rows")
	}

	// Header row decides which columns carry which fields.
	fieldAt := make(map[int]string)
	for i, h := range rows[0] {
		if field, ok := importColumns[normalizeHeader(h)]; ok {
			fieldAt[i] = field
		}
	}
	if len(fieldAt) == 0 {
		return nil, Validationf("No recognized columns in the header row")
	}

	resp := &dto.ImportStudentsResponse{Total: len(rows) - 1}
	seen := make(map[string]bool)
	var pending []*model.Student

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		fields := make(map[string]string)
		for col, field := range fieldAt {
			if col < len(row) {
				fields[field] = strings.TrimSpace(row[col])
			}
		}

		reason := ""
		switch {
		case fields["fullName"] == "":
			reason = "missing full name"
		case fields["rollNumber"] == "":
			reason = "missing roll number"
		case fields["studentPhone"] == "":
			reason = "missing student phone"
		case fields["parentPhone"] == "":
			reason = "missing parent phone"
		case fields["hostelBlock"] == "":
			reason = "missing hostel block"
		case fields["roomNumber"] == "":
			reason = "missing room number"
		case seen[fields["rollNumber"]]:
			reason = "duplicate roll number in sheet"
		}
		if reason == "" {
			if _, err := s.repo.Student.GetByRollNumber(ctx, fields["rollNumber"]); err == nil {
				reason = "roll number already exists"
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		if reason != "" {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.ImportStudentError{Row: rowNum, Reason: reason})
			continue
		}

		plain := fields["password"]
		if plain == "" {
			plain = model.DefaultStudentPassword
		}
		hash, err := password.Hash(plain)
		if err != nil {
			return nil, err
		}
		seen[fields["rollNumber"]] = true
		pending = append(pending, &model.Student{
			FullName:     fields["fullName"],
			RollNumber:   fields["rollNumber"],
			StudentPhone: fields["studentPhone"],
			ParentPhone:  fields["parentPhone"],
			StudentEmail: fields["studentEmail"],
			ParentEmail:  fields["parentEmail"],
			HostelBlock:  fields["hostelBlock"],
			RoomNumber:   fields["roomNumber"],
			Year:         fields["year"],
			Branch:       fields["branch"],
			PasswordHash: hash,
		})
	}

	if len(pending) > 0 {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return nil, err
		}
		txRepo := s.repo.WithTx(tx)
		for _, st := range pending {
			if err := txRepo.Student.Create(ctx, st); err != nil {
				if tx != nil {
					tx.Rollback()
				}
				return nil, err
			}
		}
		if tx != nil {
			if err := tx.Commit().Error; err != nil {
				return nil, err
			}
		}
		resp.Success = len(pending)
	}

	s.logger.Info("student import finished",
		zap.Int("total", resp.Total),
		zap.Int("success", resp.Success),
		zap.Int("failed", resp.Failed))
	return resp, nil
}
