package repository

import (
	"context"
	"errors"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is a domain-specific error returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// FindByUserAndGame retrieves the comment a user left on a game, if any.
	FindByUserAndGame(ctx context.Context, userID, gameID uuid.UUID) (*entity.Comment, error)

	// ListByGame returns all comments attached to a game.
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]*entity.Comment, error)

	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
