package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/vasanthsingh/QuickPass/internal/model"
	"github.com/vasanthsingh/QuickPass/internal/repository"
)

// ── mock repositories, map-backed ──

type mockAdminRepo struct {
	admins map[string]*model.Admin // keyed by id and by username
	nextID int
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*model.Admin)}
}

func (m *mockAdminRepo) Create(_ context.Context, admin *model.Admin) error {
	if a, ok := m.admins["username:"+admin.Username]; ok && a != nil {
		return &repository.ConflictError{Field: "username"}
	}
	if admin.AdminID == "" {
		m.nextID++
		admin.AdminID = fmt.Sprintf("admin-%d", m.nextID)
	}
	m.admins[admin.AdminID] = admin
	m.admins["username:"+admin.Username] = admin
	return nil
}

func (m *mockAdminRepo) GetByID(_ context.Context, id string) (*model.Admin, error) {
	if a, ok := m.admins[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	if a, ok := m.admins["username:"+username]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) List(_ context.Context) ([]model.Admin, error) {
	var all []model.Admin
	for key, a := range m.admins {
		if !strings.Contains(key, ":") {
			all = append(all, *a)
		}
	}
	return all, nil
}

func (m *mockAdminRepo) Update(_ context.Context, admin *model.Admin) error {
	m.admins[admin.AdminID] = admin
	m.admins["username:"+admin.Username] = admin
	return nil
}

func (m *mockAdminRepo) Delete(_ context.Context, id string) (bool, error) {
	a, ok := m.admins[id]
	if !ok {
		return false, nil
	}
	delete(m.admins, id)
	delete(m.admins, "username:"+a.Username)
	return true, nil
}

func (m *mockAdminRepo) Count(_ context.Context) (int64, error) {
	var n int64
	for key := range m.admins {
		if !strings.Contains(key, ":") {
			n++
		}
	}
	return n, nil
}

type mockWardenRepo struct {
	wardens map[string]*model.Warden
	nextID  int
}

func newMockWardenRepo() *mockWardenRepo {
	return &mockWardenRepo{wardens: make(map[string]*model.Warden)}
}

func (m *mockWardenRepo) Create(_ context.Context, warden *model.Warden) error {
	if _, ok := m.wardens["wid:"+warden.WardenID]; ok {
		return &repository.ConflictError{Field: "wardenId"}
	}
	if _, ok := m.wardens["email:"+warden.Email]; ok {
		return &repository.ConflictError{Field: "email"}
	}
	if warden.ID == "" {
		m.nextID++
		warden.ID = fmt.Sprintf("warden-%d", m.nextID)
	}
	m.wardens[warden.ID] = warden
	m.wardens["wid:"+warden.WardenID] = warden
	m.wardens["email:"+warden.Email] = warden
	return nil
}

func (m *mockWardenRepo) GetByID(_ context.Context, id string) (*model.Warden, error) {
	if w, ok := m.wardens[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWardenRepo) GetByWardenID(_ context.Context, wardenID string) (*model.Warden, error) {
	if w, ok := m.wardens["wid:"+wardenID]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWardenRepo) GetByEmail(_ context.Context, email string) (*model.Warden, error) {
	if w, ok := m.wardens["email:"+email]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWardenRepo) List(_ context.Context) ([]model.Warden, error) {
	var all []model.Warden
	for key, w := range m.wardens {
		if !strings.Contains(key, ":") {
			all = append(all, *w)
		}
	}
	return all, nil
}

func (m *mockWardenRepo) Update(_ context.Context, warden *model.Warden) error {
	m.wardens[warden.ID] = warden
	m.wardens["wid:"+warden.WardenID] = warden
	m.wardens["email:"+warden.Email] = warden
	return nil
}

func (m *mockWardenRepo) Delete(_ context.Context, id string) (bool, error) {
	w, ok := m.wardens[id]
	if !ok {
		return false, nil
	}
	delete(m.wardens, id)
	delete(m.wardens, "wid:"+w.WardenID)
	delete(m.wardens, "email:"+w.Email)
	return true, nil
}

func (m *mockWardenRepo) Count(_ context.Context) (int64, error) {
	var n int64
	for key := range m.wardens {
		if !strings.Contains(key, ":") {
			n++
		}
	}
	return n, nil
}

type mockGuardRepo struct {
	guards map[string]*model.Guard
	nextID int
}

func newMockGuardRepo() *mockGuardRepo {
	return &mockGuardRepo{guards: make(map[string]*model.Guard)}
}

func (m *mockGuardRepo) Create(_ context.Context, guard *model.Guard) error {
	if _, ok := m.guards["gid:"+guard.GuardID]; ok {
		return &repository.ConflictError{Field: "guardId"}
	}
	if guard.ID == "" {
		m.nextID++
		guard.ID = fmt.Sprintf("guard-%d", m.nextID)
	}
	m.guards[guard.ID] = guard
	m.guards["gid:"+guard.GuardID] = guard
	return nil
}

func (m *mockGuardRepo) GetByID(_ context.Context, id string) (*model.Guard, error) {
	if g, ok := m.guards[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGuardRepo) GetByGuardID(_ context.Context, guardID string) (*model.Guard, error) {
	if g, ok := m.guards["gid:"+guardID]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGuardRepo) List(_ context.Context) ([]model.Guard, error) {
	var all []model.Guard
	for key, g := range m.guards {
		if !strings.Contains(key, ":") {
			all = append(all, *g)
		}
	}
	return all, nil
}

func (m *mockGuardRepo) Update(_ context.Context, guard *model.Guard) error {
	m.guards[guard.ID] = guard
	m.guards["gid:"+guard.GuardID] = guard
	return nil
}

func (m *mockGuardRepo) Delete(_ context.Context, id string) (bool, error) {
	g, ok := m.guards[id]
	if !ok {
		return false, nil
	}
	delete(m.guards, id)
	delete(m.guards, "gid:"+g.GuardID)
	return true, nil
}

func (m *mockGuardRepo) Count(_ context.Context) (int64, error) {
	var n int64
	for key := range m.guards {
		if !strings.Contains(key, ":") {
			n++
		}
	}
	return n, nil
}

type mockStudentRepo struct {
	students map[string]*model.Student
	nextID   int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if _, ok := m.students["roll:"+student.RollNumber]; ok {
		return &repository.ConflictError{Field: "rollNumber"}
	}
	if student.ID == "" {
		m.nextID++
		student.ID = fmt.Sprintf("student-%d", m.nextID)
	}
	m.students[student.ID] = student
	m.students["roll:"+student.RollNumber] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByRollNumber(_ context.Context, rollNumber string) (*model.Student, error) {
	if s, ok := m.students["roll:"+rollNumber]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	var all []model.Student
	for key, s := range m.students {
		if !strings.Contains(key, ":") {
			all = append(all, *s)
		}
	}
	return all, nil
}

func (m *mockStudentRepo) Search(_ context.Context, term string) ([]model.Student, error) {
	lower := strings.ToLower(term)
	var matched []model.Student
	for key, s := range m.students {
		if strings.Contains(key, ":") {
			continue
		}
		if term == "" ||
			strings.Contains(strings.ToLower(s.FullName), lower) ||
			strings.Contains(strings.ToLower(s.RollNumber), lower) ||
			strings.Contains(strings.ToLower(s.StudentPhone), lower) ||
			strings.Contains(strings.ToLower(s.StudentEmail), lower) ||
			strings.Contains(strings.ToLower(s.RoomNumber), lower) ||
			strings.Contains(strings.ToLower(s.HostelBlock), lower) {
			matched = append(matched, *s)
		}
	}
	return matched, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.ID] = student
	m.students["roll:"+student.RollNumber] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) (bool, error) {
	s, ok := m.students[id]
	if !ok {
		return false, nil
	}
	delete(m.students, id)
	delete(m.students, "roll:"+s.RollNumber)
	return true, nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	var n int64
	for key := range m.students {
		if !strings.Contains(key, ":") {
			n++
		}
	}
	return n, nil
}

type mockProfileRequestRepo struct {
	requests []*model.ProfileRequest
	nextID   int
}

func newMockProfileRequestRepo() *mockProfileRequestRepo {
	return &mockProfileRequestRepo{}
}

func (m *mockProfileRequestRepo) Create(_ context.Context, request *model.ProfileRequest) error {
	m.nextID++
	request.ID = fmt.Sprintf("request-%d", m.nextID)
	m.requests = append(m.requests, request)
	return nil
}

func (m *mockProfileRequestRepo) ListByStudent(_ context.Context, studentID string) ([]model.ProfileRequest, error) {
	var result []model.ProfileRequest
	// newest first
	for i := len(m.requests) - 1; i >= 0; i-- {
		if m.requests[i].StudentID == studentID {
			result = append(result, *m.requests[i])
		}
	}
	return result, nil
}

// newTestRepository assembles a Repository over the map-backed mocks.
func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Admin:          newMockAdminRepo(),
		Warden:         newMockWardenRepo(),
		Guard:          newMockGuardRepo(),
		Student:        newMockStudentRepo(),
		ProfileRequest: newMockProfileRequestRepo(),
	}
}
