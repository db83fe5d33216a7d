package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Profile request statuses.
const (
	RequestPending  = "Pending"
	RequestApproved = "Approved"
	RequestRejected = "Rejected"
)

// ProfileChange is a single field-level change proposal.
type ProfileChange struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// ChangeList stores an ordered list of change proposals as a JSONB column.
type ChangeList []ProfileChange

// Scan decodes the JSONB column value.
func (l *ChangeList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("ChangeList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(raw, l)
}

// Value encodes the list for storage.
func (l ChangeList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// ProfileRequest maps to the profile_requests table. It records a student's
// proposed profile edits; creating one never mutates the Student row.
type ProfileRequest struct {
	ID          string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID   string     `gorm:"type:uuid;not null"                             json:"studentId"`
	Changes     ChangeList `gorm:"type:jsonb;not null"                            json:"changes"`
	Status      string     `gorm:"type:varchar(20);not null;default:'Pending'"    json:"status"`
	RequestDate time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"requestDate"`
}

// TableName sets the table name.
func (ProfileRequest) TableName() string { return "profile_requests" }

// EditableProfileFields is the allow-list for profile change requests,
// mapping wire field names to human-readable labels.
var EditableProfileFields = map[string]string{
	"fullName":     "Full Name",
	"studentPhone": "Phone Number",
	"studentEmail": "Student Email",
	"parentPhone":  "Guardian Phone",
	"parentEmail":  "Guardian Email",
	"year":         "Year",
	"branch":       "Branch",
}
