package models

// RoleType defines a role carried in a caller's token
type RoleType string

const (
	RoleUser  RoleType = "USER"
	RoleAdmin RoleType = "ADMIN"
)

// Roles is the set of roles carried by one caller
type Roles []RoleType

// HasRole reports whether role is among r
func (r Roles) HasRole(role RoleType) bool {
	for _, held := range r {
		if held == role {
			return true
		}
	}
	return false
}
