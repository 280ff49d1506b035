package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinRating and MaxRating bound the rating a comment may carry.
	MinRating = 1
	MaxRating = 5
)

// Comment belongs to exactly one user and one game. It is immutable except
// for deletion; a user may hold at most one comment per game.
type Comment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	GameID    uuid.UUID
	Text      string
	Rating    int
	CreatedAt time.Time
}

// ValidRating reports whether the rating lies in [MinRating, MaxRating].
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
