package model

import "time"

// Hostels a warden can be assigned to.
const (
	HostelBH1 = "BH1"
	HostelBH2 = "BH2"
	HostelGH1 = "GH1"
	HostelGH2 = "GH2"
)

// ValidHostel reports whether h is a known hostel code.
func ValidHostel(h string) bool {
	switch h {
	case HostelBH1, HostelBH2, HostelGH1, HostelGH2:
		return true
	}
	return false
}

// Warden maps to the wardens table. WardenID is the human-facing key
// (e.g. WRD-001); both it and the email are unique.
type Warden struct {
	ID             string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"            json:"id"`
	FullName       string    `gorm:"type:varchar(100);not null"                                json:"fullName"`
	WardenID       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_wardens_warden_id" json:"wardenId"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_wardens_email"  json:"email"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"                                json:"-"`
	PhoneNumber    string    `gorm:"type:varchar(20);not null"                                 json:"phoneNumber"`
	AssignedHostel string    `gorm:"type:varchar(10);not null"                                 json:"assignedHostel"`
	OfficeLocation string    `gorm:"type:varchar(100)"                                         json:"officeLocation,omitempty"`
	IsActive       bool      `gorm:"not null;default:true"                                     json:"isActive"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                        json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                        json:"updatedAt"`
}

// TableName sets the table name.
func (Warden) TableName() string { return "wardens" }
