package repository

import (
	"context"
	"errors"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCompanyNotFound is a domain-specific error returned when a company is not found.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines the standard operations for company persistence.
type CompanyRepository interface {
	// FindByID retrieves a single company, including its game references.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// FindByEmail retrieves a single company by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Company, error)

	// FindByResetToken retrieves the company holding the given outstanding
	// password-reset token.
	FindByResetToken(ctx context.Context, token string) (*entity.Company, error)

	// Create persists a new company entity to the storage.
	Create(ctx context.Context, company *entity.Company) error

	// Update modifies an existing company's scalar fields in the storage.
	Update(ctx context.Context, company *entity.Company) error

	// List returns all companies.
	List(ctx context.Context) ([]*entity.Company, error)
}
