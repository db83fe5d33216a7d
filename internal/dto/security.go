package dto

// CreateSecurityRequest registers a new security guard account.
type CreateSecurityRequest struct {
	FullName     string `json:"fullName"     binding:"required"`
	GuardID      string `json:"guardId"      binding:"required"`
	Password     string `json:"password"     binding:"required"`
	PhoneNumber  string `json:"phoneNumber"  binding:"required"`
	Email        string `json:"email"        binding:"omitempty,email"`
	AssignedGate string `json:"assignedGate" binding:"required"`
	ShiftTime    string `json:"shiftTime"`
	Status       string `json:"status"`
	DateJoined   string `json:"dateJoined"   binding:"required"` // YYYY-MM-DD
}

// UpdateSecurityRequest applies a partial update; nil fields are untouched.
type UpdateSecurityRequest struct {
	FullName     *string `json:"fullName"`
	Password     *string `json:"password"`
	PhoneNumber  *string `json:"phoneNumber"`
	Email        *string `json:"email" binding:"omitempty,email"`
	AssignedGate *string `json:"assignedGate"`
	ShiftTime    *string `json:"shiftTime"`
	Status       *string `json:"status"`
	DateJoined   *string `json:"dateJoined"` // YYYY-MM-DD
}
