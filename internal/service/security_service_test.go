package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/vasanthsingh/QuickPass/internal/dto"
	"github.com/vasanthsingh/QuickPass/internal/model"
	"github.com/vasanthsingh/QuickPass/internal/repository"
)

func validSecurityRequest() *dto.CreateSecurityRequest {
	return &dto.CreateSecurityRequest{
		FullName: "G One", GuardID: "SEC-001", Password: "guardpw",
		PhoneNumber: "123", AssignedGate: model.GateMain, DateJoined: "2024-06-15",
	}
}

func TestCreateSecurityGuard(t *testing.T) {
	repo := newTestRepository()
	svc := NewSecurityService(repo, zap.NewNop())

	guard, err := svc.Create(context.Background(), validSecurityRequest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if guard.Status != model.GuardActive {
		t.Errorf("Status = %q, want default Active", guard.Status)
	}
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !guard.DateJoined.Equal(want) {
		t.Errorf("DateJoined = %v, want %v", guard.DateJoined, want)
	}
}

func TestCreateSecurityValidation(t *testing.T) {
	svc := NewSecurityService(newTestRepository(), zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*dto.CreateSecurityRequest)
	}{
		{"unknown gate", func(r *dto.CreateSecurityRequest) { r.AssignedGate = "Gate 9" }},
		{"unknown shift", func(r *dto.CreateSecurityRequest) { r.ShiftTime = "Afternoon" }},
		{"unknown status", func(r *dto.CreateSecurityRequest) { r.Status = "Retired" }},
		{"bad date", func(r *dto.CreateSecurityRequest) { r.DateJoined = "15/06/2024" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSecurityRequest()
			tc.mutate(req)
			_, err := svc.Create(ctx, req)
			if _, ok := AsValidation(err); !ok {
				t.Errorf("got %v, want ValidationError", err)
			}
		})
	}
}

func TestCreateSecurityDuplicateGuardID(t *testing.T) {
	repo := newTestRepository()
	svc := NewSecurityService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, validSecurityRequest()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, validSecurityRequest())
	if ce, ok := repository.AsConflict(err); !ok || ce.Field != "guardId" {
		t.Errorf("got %v, want guardId conflict", err)
	}
}

func TestUpdateSecurityPartial(t *testing.T) {
	repo := newTestRepository()
	svc := NewSecurityService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validSecurityRequest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	status := model.GuardOnLeave
	shift := model.ShiftNight
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateSecurityRequest{
		Status: &status, ShiftTime: &shift,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != model.GuardOnLeave || updated.ShiftTime != model.ShiftNight {
		t.Errorf("updated = {%q, %q}", updated.Status, updated.ShiftTime)
	}
	if updated.AssignedGate != model.GateMain {
		t.Error("unsupplied gate must not change")
	}
}
