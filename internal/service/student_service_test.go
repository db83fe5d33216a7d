package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/vasanthsingh/QuickPass/internal/dto"
	"github.com/vasanthsingh/QuickPass/internal/model"
	"github.com/vasanthsingh/QuickPass/internal/repository"
	pw "github.com/vasanthsingh/QuickPass/pkg/password"
)

func TestCreateStudentDefaultPassword(t *testing.T) {
	repo := newTestRepository()
	svc := NewStudentService(repo, zap.NewNop())
	authSvc := NewAuthService(repo, newTestJWTManager(), nil, zap.NewNop())
	ctx := context.Background()

	student, err := svc.Create(ctx, &dto.CreateStudentRequest{
		FullName: "A", RollNumber: "R100", StudentPhone: "1", ParentPhone: "2",
		HostelBlock: "B1", RoomNumber: "101",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !pw.Verify(model.DefaultStudentPassword, student.PasswordHash) {
		t.Error("stored hash should verify against the default password")
	}

	// Login with the default password issues a student token.
	token, _, err := authSvc.LoginStudent(ctx, &dto.StudentLoginRequest{
		RollNumber: "R100", Password: "123456",
	})
	if err != nil {
		t.Fatalf("login with default password failed: %v", err)
	}
	claims, err := newTestJWTManager().Parse(token)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.Role != "Student" || claims.RollNumber != "R100" {
		t.Errorf("claims = {%q, %q}, want {Student, R100}", claims.Role, claims.RollNumber)
	}
}

func TestCreateStudentDuplicateRollNumber(t *testing.T) {
	repo := newTestRepository()
	svc := NewStudentService(repo, zap.NewNop())
	ctx := context.Background()

	req := &dto.CreateStudentRequest{
		FullName: "A", RollNumber: "R100", StudentPhone: "1", ParentPhone: "2",
		HostelBlock: "B1", RoomNumber: "101",
	}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(ctx, req)
	ce, ok := repository.AsConflict(err)
	if !ok {
		t.Fatalf("got %v, want ConflictError", err)
	}
	if ce.Field != "rollNumber" {
		t.Errorf("conflict field = %q, want rollNumber", ce.Field)
	}
	if ce.Error() != "rollNumber already exists" {
		t.Errorf("conflict message = %q", ce.Error())
	}
}

func TestUpdateStudentPartial(t *testing.T) {
	repo := newTestRepository()
	svc := NewStudentService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateStudentRequest{
		FullName: "A", RollNumber: "R100", StudentPhone: "111", ParentPhone: "222",
		HostelBlock: "B1", RoomNumber: "101", Year: "2", Branch: "CSE",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	phone := "999"
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateStudentRequest{StudentPhone: &phone})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.StudentPhone != "999" {
		t.Errorf("StudentPhone = %q, want 999", updated.StudentPhone)
	}
	// Everything not supplied is untouched.
	if updated.FullName != "A" || updated.ParentPhone != "222" || updated.Year != "2" || updated.Branch != "CSE" {
		t.Error("unsupplied fields must not change on partial update")
	}
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc := NewStudentService(newTestRepository(), zap.NewNop())
	name := "B"
	_, err := svc.Update(context.Background(), "missing", &dto.UpdateStudentRequest{FullName: &name})
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("got %v, want ErrStudentNotFound", err)
	}
}

func TestDeleteStudentLeavesProfileRequests(t *testing.T) {
	repo := newTestRepository()
	svc := NewStudentService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateStudentRequest{
		FullName: "A", RollNumber: "R100", StudentPhone: "1", ParentPhone: "2",
		HostelBlock: "B1", RoomNumber: "101",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.CreateProfileRequest(ctx, created.ID, &dto.CreateProfileRequestRequest{
		Updates: map[string]string{"year": "3"},
	}); err != nil {
		t.Fatalf("CreateProfileRequest returned error: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("second delete: got %v, want ErrStudentNotFound", err)
	}

	// The request survives the hard delete.
	requests, err := svc.ListProfileRequests(ctx, created.ID)
	if err != nil {
		t.Fatalf("ListProfileRequests returned error: %v", err)
	}
	if len(requests) != 1 {
		t.Errorf("requests after delete = %d, want 1", len(requests))
	}
}

func TestCreateProfileRequestNormalization(t *testing.T) {
	repo := newTestRepository()
	svc := NewStudentService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateStudentRequest{
		FullName: "A", RollNumber: "R100", StudentPhone: "111", ParentPhone: "222",
		HostelBlock: "B1", RoomNumber: "101",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	request, err := svc.CreateProfileRequest(ctx, created.ID, &dto.CreateProfileRequestRequest{
		Changes: []dto.ProfileChangeEntry{
			{Field: "studentPhone", NewValue: "999"},
			{Field: "roomNumber", NewValue: "505"}, // not editable, dropped
			{Field: "year", NewValue: "   "},      // blank after trim, dropped
		},
	})
	if err != nil {
		t.Fatalf("CreateProfileRequest returned error: %v", err)
	}

	if len(request.Changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(request.Changes))
	}
	change := request.Changes[0]
	if change.Field != "studentPhone" || change.NewValue != "999" {
		t.Errorf("change = %+v", change)
	}
	if change.OldValue != "111" {
		t.Errorf("OldValue = %q, want backfilled 111", change.OldValue)
	}
	if change.Label != "Phone Number" {
		t.Errorf("Label = %q, want Phone Number", change.Label)
	}
	if request.Status != model.RequestPending {
		t.Errorf("Status = %q, want Pending", request.Status)
	}

	// The student record itself is untouched.
	stored, err := repo.Student.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("reading back student: %v", err)
	}
	if stored.StudentPhone != "111" {
		t.Errorf("StudentPhone = %q, request creation must not mutate the record", stored.StudentPhone)
	}
}

func TestCreateProfileRequestAllFiltered(t *testing.T) {
	repo := newTestRepository()
	svc := NewStudentService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateStudentRequest{
		FullName: "A", RollNumber: "R100", StudentPhone: "1", ParentPhone: "2",
		HostelBlock: "B1", RoomNumber: "101",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.CreateProfileRequest(ctx, created.ID, &dto.CreateProfileRequestRequest{
		Updates: map[string]string{"roomNumber": "505", "isDefaulter": "true"},
	})
	if _, ok := AsValidation(err); !ok {
		t.Errorf("got %v, want ValidationError when nothing survives the allow-list", err)
	}
}

func TestDatabaseView(t *testing.T) {
	repo := newTestRepository()
	svc := NewStudentService(repo, zap.NewNop())
	ctx := context.Background()

	seed := []dto.CreateStudentRequest{
		{FullName: "Asha Rao", RollNumber: "R100", StudentPhone: "1", ParentPhone: "2", HostelBlock: "GH1", RoomNumber: "101", StudentEmail: "asha@x.test"},
		{FullName: "Bharat Kumar", RollNumber: "R200", StudentPhone: "3", ParentPhone: "4", HostelBlock: "BH1", RoomNumber: "202"},
		{FullName: "Chitra Devi", RollNumber: "R300", StudentPhone: "5", ParentPhone: "6", HostelBlock: "GH1", RoomNumber: "303"},
	}
	for i := range seed {
		created, err := svc.Create(ctx, &seed[i])
		if err != nil {
			t.Fatalf("seeding %s: %v", seed[i].RollNumber, err)
		}
		if seed[i].RollNumber == "R300" {
			flag := true
			if _, err := svc.Update(ctx, created.ID, &dto.UpdateStudentRequest{IsDefaulter: &flag}); err != nil {
				t.Fatalf("flagging defaulter: %v", err)
			}
		}
	}

	view, err := svc.DatabaseView(ctx, "gh1")
	if err != nil {
		t.Fatalf("DatabaseView returned error: %v", err)
	}

	if view.TotalStudents != 2 {
		t.Errorf("TotalStudents = %d, want 2", view.TotalStudents)
	}
	if view.ActiveCount != 1 || view.DefaulterCount != 1 {
		t.Errorf("counts = active %d / defaulter %d, want 1/1", view.ActiveCount, view.DefaulterCount)
	}
	if view.Search != "gh1" {
		t.Errorf("Search = %q, want gh1", view.Search)
	}

	for _, row := range view.Students {
		switch row.StudentInfo.RollNumber {
		case "R100":
			if row.Room.Display != "GH1-101" {
				t.Errorf("R100 display = %q, want GH1-101", row.Room.Display)
			}
			if row.Status != "Active" {
				t.Errorf("R100 status = %q, want Active", row.Status)
			}
			if row.Contact.Email == nil || *row.Contact.Email != "asha@x.test" {
				t.Error("R100 email should be present")
			}
		case "R300":
			if row.Status != "Defaulter" || !row.IsDefaulter {
				t.Errorf("R300 status = %q, want Defaulter", row.Status)
			}
			if row.Contact.Email != nil {
				t.Error("R300 email should be nil when unset")
			}
		default:
			t.Errorf("unexpected row %q in filtered view", row.StudentInfo.RollNumber)
		}
	}
}
