package model

import "time"

// DefaultStudentPassword is hashed and stored when a student is created
// without an explicit password.
const DefaultStudentPassword = "123456"

// Student maps to the students table. RollNumber is the unique key.
// IsDefaulter is informational; it does not gate login.
type Student struct {
	ID           string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                 json:"id"`
	FullName     string    `gorm:"type:varchar(100);not null"                                     json:"fullName"`
	RollNumber   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_students_roll_number" json:"rollNumber"`
	StudentPhone string    `gorm:"type:varchar(20);not null"                                      json:"studentPhone"`
	ParentPhone  string    `gorm:"type:varchar(20);not null"                                      json:"parentPhone"`
	StudentEmail string    `gorm:"type:varchar(255)"                                              json:"studentEmail,omitempty"`
	ParentEmail  string    `gorm:"type:varchar(255)"                                              json:"parentEmail,omitempty"`
	HostelBlock  string    `gorm:"type:varchar(20);not null"                                      json:"hostelBlock"`
	RoomNumber   string    `gorm:"type:varchar(20);not null"                                      json:"roomNumber"`
	Year         string    `gorm:"type:varchar(20)"                                               json:"year,omitempty"`
	Branch       string    `gorm:"type:varchar(50)"                                               json:"branch,omitempty"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                                     json:"-"`
	IsDefaulter  bool      `gorm:"not null;default:false"                                         json:"isDefaulter"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                             json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                             json:"updatedAt"`
}

// TableName sets the table name.
func (Student) TableName() string { return "students" }

// ProfileField returns the current value of an editable profile field by
// its wire name; ok is false for fields outside the editable set.
func (s *Student) ProfileField(field string) (value string, ok bool) {
	switch field {
	case "fullName":
		return s.FullName, true
	case "studentPhone":
		return s.StudentPhone, true
	case "studentEmail":
		return s.StudentEmail, true
	case "parentPhone":
		return s.ParentPhone, true
	case "parentEmail":
		return s.ParentEmail, true
	case "year":
		return s.Year, true
	case "branch":
		return s.Branch, true
	}
	return "", false
}
