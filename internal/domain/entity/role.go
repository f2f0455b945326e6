package entity

import "slices"

// Role represents the role a user holds in a company.
type Role string

const (
	// RoleAdmin manages the company and receives GPS alerts.
	RoleAdmin Role = "Admin"
	// RoleBeekeeper works on the hives.
	RoleBeekeeper Role = "Apiculteur"
	// RoleReader has read-only access.
	RoleReader Role = "Lecteur"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBeekeeper, RoleReader:
		return true
	default:
		return false
	}
}

// ParseRole converts a stored tag into a Role.
func ParseRole(s string) (Role, error) {
	return parseEnum[Role](s, "role")
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
