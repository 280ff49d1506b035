package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table. The composite unique index
// enforces one comment per user per game.
type CommentModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_comments_user_game"`
	GameID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_comments_user_game;index"`
	Text   string    `gorm:"type:text;not null"`
	Rating int       `gorm:"not null"`

	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
