package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is a publisher account that owns catalog entries. Only the owning
// company may mutate or delete its games.
type Company struct {
	ID           uuid.UUID
	Email        string // Unique login identifier.
	CompanyName  string
	PasswordHash string
	Country      string
	City         string
	Street       string
	Address      string
	PhoneNumber  string

	// Games lists the IDs of the catalog entries owned by this company.
	Games []uuid.UUID

	ResetToken  string
	ResetExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role returns the fixed role tag for company accounts.
func (c *Company) Role() Role {
	return RoleCompany
}
