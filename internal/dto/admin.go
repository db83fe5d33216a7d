package dto

// CreateAdminRequest registers a new admin account.
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"    binding:"omitempty,email"`
	Name     string `json:"name"`
}

// UpdateAdminRequest applies a partial update; nil fields are untouched.
type UpdateAdminRequest struct {
	Email    *string `json:"email"    binding:"omitempty,email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// DashboardStats are the admin dashboard headline numbers.
type DashboardStats struct {
	TotalAdmins   int64 `json:"totalAdmins"`
	TotalWardens  int64 `json:"totalWardens"`
	TotalSecurity int64 `json:"totalSecurity"`
	TotalStudents int64 `json:"totalStudents"`
}
