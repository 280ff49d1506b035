package usecase

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCommentInput defines the data required to comment on and rate a game.
type AddCommentInput struct {
	Text   string `json:"comment" validate:"required"`
	Rating int    `json:"rating" validate:"required"`
}

// RatingUsecase defines the comment and rating operations.
type RatingUsecase interface {
	// AddComment attaches a comment to a game and recomputes the game's
	// average rating. A user may hold at most one comment per game.
	AddComment(ctx context.Context, userID, gameID uuid.UUID, input *AddCommentInput) (*entity.Comment, error)

	// RemoveComment deletes the caller's comment and recomputes the game's
	// average rating over the remaining comments.
	RemoveComment(ctx context.Context, userID, commentID uuid.UUID) (*entity.Comment, error)
}
