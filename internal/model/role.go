package model

// Role is the closed set of principal kinds. Middleware and services
// compare against these constants, never against string literals.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleWarden   Role = "Warden"
	RoleSecurity Role = "Security"
	RoleStudent  Role = "Student"
)

// String returns the wire form of the role.
func (r Role) String() string { return string(r) }
