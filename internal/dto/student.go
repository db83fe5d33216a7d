package dto

// CreateStudentRequest registers a new student. Password is optional: an
// absent password stores the hashed default.
type CreateStudentRequest struct {
	FullName     string `json:"fullName"     binding:"required"`
	RollNumber   string `json:"rollNumber"   binding:"required"`
	StudentPhone string `json:"studentPhone" binding:"required"`
	ParentPhone  string `json:"parentPhone"  binding:"required"`
	StudentEmail string `json:"studentEmail" binding:"omitempty,email"`
	ParentEmail  string `json:"parentEmail"  binding:"omitempty,email"`
	HostelBlock  string `json:"hostelBlock"  binding:"required"`
	RoomNumber   string `json:"roomNumber"   binding:"required"`
	Year         string `json:"year"`
	Branch       string `json:"branch"`
	Password     string `json:"password"`
}

// UpdateStudentRequest applies a partial update; nil fields are untouched.
// IsDefaulter is settable only through this admin/warden-facing update.
type UpdateStudentRequest struct {
	FullName     *string `json:"fullName"`
	StudentPhone *string `json:"studentPhone"`
	ParentPhone  *string `json:"parentPhone"`
	StudentEmail *string `json:"studentEmail" binding:"omitempty,email"`
	ParentEmail  *string `json:"parentEmail"  binding:"omitempty,email"`
	HostelBlock  *string `json:"hostelBlock"`
	RoomNumber   *string `json:"roomNumber"`
	Year         *string `json:"year"`
	Branch       *string `json:"branch"`
	Password     *string `json:"password"`
	IsDefaulter  *bool   `json:"isDefaulter"`
}

// UpdateStudentProfileRequest is the student self-service subset: room,
// block, defaulter flag and password are off limits here.
type UpdateStudentProfileRequest struct {
	FullName     *string `json:"fullName"`
	StudentPhone *string `json:"studentPhone"`
	ParentPhone  *string `json:"parentPhone"`
	StudentEmail *string `json:"studentEmail" binding:"omitempty,email"`
	ParentEmail  *string `json:"parentEmail"  binding:"omitempty,email"`
	Year         *string `json:"year"`
	Branch       *string `json:"branch"`
}

// ── profile change requests ──

// ProfileChangeEntry is one proposed field change. OldValue is optional;
// when absent it is backfilled from the stored record.
type ProfileChangeEntry struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// CreateProfileRequestRequest accepts either an explicit changes list or a
// field→newValue updates map; at least one valid entry must survive
// normalization.
type CreateProfileRequestRequest struct {
	Changes []ProfileChangeEntry `json:"changes"`
	Updates map[string]string    `json:"updates"`
}

// ── warden database view ──

// StudentDatabaseRow is one row of the warden panel's student table.
type StudentDatabaseRow struct {
	ID          string          `json:"id"`
	StudentInfo StudentInfoCell `json:"studentInfo"`
	Room        RoomCell        `json:"room"`
	Contact     ContactCell     `json:"contact"`
	Status      string          `json:"status"`
	IsDefaulter bool            `json:"isDefaulter"`
}

// StudentInfoCell holds name and roll number.
type StudentInfoCell struct {
	FullName   string `json:"fullName"`
	RollNumber string `json:"rollNumber"`
}

// RoomCell holds room assignment with a pre-formatted display string.
type RoomCell struct {
	RoomNumber  string `json:"roomNumber"`
	HostelBlock string `json:"hostelBlock"`
	Display     string `json:"display"`
}

// ContactCell holds phone and optional email.
type ContactCell struct {
	Phone string  `json:"phone"`
	Email *string `json:"email"`
}

// StudentDatabaseView is the full warden panel payload.
type StudentDatabaseView struct {
	TotalStudents  int                  `json:"totalStudents"`
	ActiveCount    int                  `json:"activeCount"`
	DefaulterCount int                  `json:"defaulterCount"`
	Search         string               `json:"search"`
	Students       []StudentDatabaseRow `json:"students"`
}

// ── bulk import ──

// ImportStudentsResponse summarizes an Excel bulk import.
type ImportStudentsResponse struct {
	Total   int                  `json:"total"`
	Success int                  `json:"success"`
	Failed  int                  `json:"failed"`
	Errors  []ImportStudentError `json:"errors,omitempty"`
}

// ImportStudentError is one rejected sheet row.
type ImportStudentError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
