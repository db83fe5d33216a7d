package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vasanthsingh/QuickPass/internal/dto"
	"github.com/vasanthsingh/QuickPass/internal/model"
	"github.com/vasanthsingh/QuickPass/internal/repository"
	"github.com/vasanthsingh/QuickPass/pkg/jwt"
	"github.com/vasanthsingh/QuickPass/pkg/password"
	"github.com/vasanthsingh/QuickPass/pkg/redis"
)

// minPasswordLen applies to self-service password changes.
const minPasswordLen = 6

// AuthService handles login for every principal kind, self-service
// password changes and logout. Login failures are indistinguishable
// between unknown key and wrong password.
type AuthService interface {
	LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (string, *model.Admin, error)
	LoginWarden(ctx context.Context, req *dto.WardenLoginRequest) (string, *model.Warden, error)
	LoginSecurity(ctx context.Context, req *dto.SecurityLoginRequest) (string, *model.Guard, error)
	LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (string, *model.Student, error)
	ChangePassword(ctx context.Context, role model.Role, id string, req *dto.UpdatePasswordRequest) error
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService.
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (string, *model.Admin, error) {
	admin, err := s.repo.Admin.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", nil, s.loginLookupErr(err)
	}
	if !password.Verify(req.Password, admin.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	// Admin is the only kind with a last-activity marker.
	now := time.Now()
	admin.LastLogin = &now
	if err := s.repo.Admin.Update(ctx, admin); err != nil {
		s.logger.Error("updating admin last login", zap.Error(err))
		return "", nil, err
	}

	token, err := s.jwtMgr.Generate(admin.AdminID, model.RoleAdmin.String(), admin.Username)
	if err != nil {
		s.logger.Error("signing admin token", zap.Error(err))
		return "", nil, err
	}
	return token, admin, nil
}

func (s *authService) LoginWarden(ctx context.Context, req *dto.WardenLoginRequest) (string, *model.Warden, error) {
	warden, err := s.repo.Warden.GetByWardenID(ctx, req.WardenID)
	if err != nil {
		return "", nil, s.loginLookupErr(err)
	}
	if !password.Verify(req.Password, warden.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	// IsActive is informational: an inactive warden still logs in.

	token, err := s.jwtMgr.Generate(warden.ID, model.RoleWarden.String(), warden.WardenID)
	if err != nil {
		s.logger.Error("signing warden token", zap.Error(err))
		return "", nil, err
	}
	return token, warden, nil
}

func (s *authService) LoginSecurity(ctx context.Context, req *dto.SecurityLoginRequest) (string, *model.Guard, error) {
	guard, err := s.repo.Guard.GetByGuardID(ctx, req.GuardID)
	if err != nil {
		return "", nil, s.loginLookupErr(err)
	}
	if !password.Verify(req.Password, guard.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.Generate(guard.ID, model.RoleSecurity.String(), guard.GuardID)
	if err != nil {
		s.logger.Error("signing security token", zap.Error(err))
		return "", nil, err
	}
	return token, guard, nil
}

func (s *authService) LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (string, *model.Student, error) {
	student, err := s.repo.Student.GetByRollNumber(ctx, req.RollNumber)
	if err != nil {
		return "", nil, s.loginLookupErr(err)
	}
	if !password.Verify(req.Password, student.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.Generate(student.ID, model.RoleStudent.String(), student.RollNumber)
	if err != nil {
		s.logger.Error("signing student token", zap.Error(err))
		return "", nil, err
	}
	return token, student, nil
}

// ChangePassword verifies the current secret and stores a new hash for the
// acting principal. The role is taken from the verified token, so a
// principal can only ever change its own record.
func (s *authService) ChangePassword(ctx context.Context, role model.Role, id string, req *dto.UpdatePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLen {
		return Validationf("New password must be at least 6 characters long")
	}
	if req.ConfirmPassword != nil && req.NewPassword != *req.ConfirmPassword {
		return Validationf("newPassword and confirmPassword do not match")
	}

	newHash, err := password.Hash(req.NewPassword)
	if err != nil {
		s.logger.Error("hashing new password", zap.Error(err))
		return err
	}

	switch role {
	case model.RoleAdmin:
		admin, err := s.repo.Admin.GetByID(ctx, id)
		if err != nil {
			return s.notFound(err, ErrAdminNotFound)
		}
		if !password.Verify(req.CurrentPassword, admin.PasswordHash) {
			return ErrCurrentPasswordWrong
		}
		admin.PasswordHash = newHash
		return s.repo.Admin.Update(ctx, admin)

	case model.RoleWarden:
		warden, err := s.repo.Warden.GetByID(ctx, id)
		if err != nil {
			return s.notFound(err, ErrWardenNotFound)
		}
		if !password.Verify(req.CurrentPassword, warden.PasswordHash) {
			return ErrCurrentPasswordWrong
		}
		warden.PasswordHash = newHash
		return s.repo.Warden.Update(ctx, warden)

	case model.RoleSecurity:
		guard, err := s.repo.Guard.GetByID(ctx, id)
		if err != nil {
			return s.notFound(err, ErrGuardNotFound)
		}
		if !password.Verify(req.CurrentPassword, guard.PasswordHash) {
			return ErrCurrentPasswordWrong
		}
		guard.PasswordHash = newHash
		return s.repo.Guard.Update(ctx, guard)

	case model.RoleStudent:
		student, err := s.repo.Student.GetByID(ctx, id)
		if err != nil {
			return s.notFound(err, ErrStudentNotFound)
		}
		if !password.Verify(req.CurrentPassword, student.PasswordHash) {
			return ErrCurrentPasswordWrong
		}
		student.PasswordHash = newHash
		return s.repo.Student.Update(ctx, student)
	}

	return Validationf("unknown principal role")
}

// Logout blacklists the presented token until its natural expiry. Without
// Redis the token simply ages out.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

// loginLookupErr collapses a missing record into ErrInvalidCredentials and
// logs anything else.
func (s *authService) loginLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidCredentials
	}
	s.logger.Error("login lookup failed", zap.Error(err))
	return err
}

func (s *authService) notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
