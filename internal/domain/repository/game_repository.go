package repository

import (
	"context"
	"errors"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGameNotFound is a domain-specific error returned when a game is not found.
var ErrGameNotFound = errors.New("game not found")

// GameRepository defines the standard operations for catalog persistence.
// The counter methods issue single atomic statements so concurrent requests
// touching the same game cannot lose updates.
type GameRepository interface {
	// FindByID retrieves a single game, including its comment references.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error)

	// FindByName retrieves a game by its normalized (trimmed, lowercased) name.
	FindByName(ctx context.Context, normalizedName string) (*entity.Game, error)

	// Create persists a new game entity to the storage.
	Create(ctx context.Context, game *entity.Game) error

	// Update modifies an existing game's scalar fields in the storage.
	Update(ctx context.Context, game *entity.Game) error

	// Delete removes the game together with its comments and any
	// wishlist/library references to it.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all games.
	List(ctx context.Context) ([]*entity.Game, error)

	// IncrementViews bumps the view counter by one.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// AdjustWishlistCount adds delta to the wishlist counter, flooring at 0.
	AdjustWishlistCount(ctx context.Context, id uuid.UUID, delta int64) error

	// IncrementPurchases bumps the purchase counter by one.
	IncrementPurchases(ctx context.Context, id uuid.UUID) error

	// SetAverageRating stores the recomputed aggregate rating.
	SetAverageRating(ctx context.Context, id uuid.UUID, average float64) error
}
