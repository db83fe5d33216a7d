package dto

// ── login requests, one per principal kind ──

// AdminLoginRequest authenticates by username.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// WardenLoginRequest authenticates by warden id.
type WardenLoginRequest struct {
	WardenID string `json:"wardenId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SecurityLoginRequest authenticates by guard id.
type SecurityLoginRequest struct {
	GuardID string `json:"guardId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StudentLoginRequest authenticates by roll number.
type StudentLoginRequest struct {
	RollNumber string `json:"rollNumber" binding:"required"`
	Password   string `json:"password"   binding:"required"`
}

// UpdatePasswordRequest is the self-service password change shared by all
// principal kinds. ConfirmPassword is optional; when present it must match.
type UpdatePasswordRequest struct {
	CurrentPassword string  `json:"currentPassword" binding:"required"`
	NewPassword     string  `json:"newPassword"     binding:"required"`
	ConfirmPassword *string `json:"confirmPassword"`
}
