// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user, including wishlist, library and
	// comment references, by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByResetToken retrieves the user holding the given outstanding
	// password-reset token.
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user's scalar fields in the storage.
	// Wishlist and library membership are managed by the dedicated methods
	// below so they can map to atomic set operations.
	Update(ctx context.Context, user *entity.User) error

	// List returns all users.
	List(ctx context.Context) ([]*entity.User, error)

	// AddWishlistGame inserts the game into the user's wishlist set.
	AddWishlistGame(ctx context.Context, userID, gameID uuid.UUID) error

	// RemoveWishlistGame removes the game from the user's wishlist set.
	// Removing an absent member is not an error.
	RemoveWishlistGame(ctx context.Context, userID, gameID uuid.UUID) error

	// AddLibraryGame inserts the game into the user's purchased set.
	AddLibraryGame(ctx context.Context, userID, gameID uuid.UUID) error
}
