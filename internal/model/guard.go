package model

import "time"

// Gates and shifts a guard can be assigned to.
const (
	GateMain   = "Gate 1 (Main)"
	GateBack   = "Gate 2 (Back)"
	GateBlockA = "Hostel Block A"

	ShiftDay   = "Day (8AM - 8PM)"
	ShiftNight = "Night (8PM - 8AM)"

	GuardActive  = "Active"
	GuardOnLeave = "On Leave"
)

// ValidGate reports whether g is a known gate.
func ValidGate(g string) bool {
	switch g {
	case GateMain, GateBack, GateBlockA:
		return true
	}
	return false
}

// ValidShift reports whether s is a known shift. Empty is allowed.
func ValidShift(s string) bool {
	switch s {
	case "", ShiftDay, ShiftNight:
		return true
	}
	return false
}

// ValidGuardStatus reports whether s is a known guard status.
func ValidGuardStatus(s string) bool {
	return s == GuardActive || s == GuardOnLeave
}

// Guard maps to the guards table. GuardID is the human-facing key
// (e.g. SEC-001). Status is informational; it does not gate login.
type Guard struct {
	ID           string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"             json:"id"`
	FullName     string    `gorm:"type:varchar(100);not null"                                 json:"fullName"`
	GuardID      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_guards_guard_id"  json:"guardId"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                                 json:"-"`
	PhoneNumber  string    `gorm:"type:varchar(20);not null"                                  json:"phoneNumber"`
	Email        string    `gorm:"type:varchar(255)"                                          json:"email,omitempty"`
	AssignedGate string    `gorm:"type:varchar(50);not null"                                  json:"assignedGate"`
	ShiftTime    string    `gorm:"type:varchar(50)"                                           json:"shiftTime,omitempty"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Active'"                 json:"status"`
	DateJoined   time.Time `gorm:"type:date;not null"                                         json:"dateJoined"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                         json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                         json:"updatedAt"`
}

// TableName sets the table name.
func (Guard) TableName() string { return "guards" }
