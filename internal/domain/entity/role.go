// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of account acting on the system.
type Role string

const (
	// RoleUser indicates a regular storefront customer.
	RoleUser Role = "user"
	// RoleCompany indicates a publishing company account.
	RoleCompany Role = "company"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleCompany:
		return true
	default:
		return false
	}
}
