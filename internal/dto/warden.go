package dto

// CreateWardenRequest registers a new warden account.
type CreateWardenRequest struct {
	FullName       string `json:"fullName"       binding:"required"`
	WardenID       string `json:"wardenId"       binding:"required"`
	Email          string `json:"email"          binding:"required,email"`
	Password       string `json:"password"       binding:"required"`
	PhoneNumber    string `json:"phoneNumber"    binding:"required"`
	AssignedHostel string `json:"assignedHostel" binding:"required"`
	OfficeLocation string `json:"officeLocation"`
	IsActive       *bool  `json:"isActive"`
}

// UpdateWardenRequest applies a partial update; nil fields are untouched.
type UpdateWardenRequest struct {
	FullName       *string `json:"fullName"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Password       *string `json:"password"`
	PhoneNumber    *string `json:"phoneNumber"`
	AssignedHostel *string `json:"assignedHostel"`
	OfficeLocation *string `json:"officeLocation"`
	IsActive       *bool   `json:"isActive"`
}

// UpdateWardenProfileRequest is the warden self-service subset: a warden
// may not flip their own IsActive flag or change their password here.
type UpdateWardenProfileRequest struct {
	FullName       *string `json:"fullName"`
	Email          *string `json:"email" binding:"omitempty,email"`
	PhoneNumber    *string `json:"phoneNumber"`
	AssignedHostel *string `json:"assignedHostel"`
	OfficeLocation *string `json:"officeLocation"`
}
