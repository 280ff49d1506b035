package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Game is a catalog entry owned by exactly one company.
type Game struct {
	ID          uuid.UUID
	Name        string // Normalized (trimmed, lowercased); unique across the catalog.
	DisplayName string // Name as entered by the publisher.
	Category    string
	Description string

	MinimumRequirements     Requirements
	RecommendedRequirements Requirements

	Price       float64
	CompanyID   uuid.UUID
	IsPublished bool

	Views int64

	// AverageRating is the arithmetic mean over all comments for this game,
	// 0 when there are none. Recomputed on every comment create/delete.
	AverageRating float64

	// Purchases and WishlistCount move in lockstep with the corresponding
	// user-side set membership changes.
	Purchases     int64
	WishlistCount int64

	// Comments lists the IDs of the comments attached to this game.
	Comments []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Requirements is a hardware requirement profile for running a game.
type Requirements struct {
	System    string
	Processor string
	Memory    string
	Graphics  string
	DirectX   string
	Storage   string
}

// NormalizeGameName canonicalizes a game name for uniqueness checks:
// surrounding whitespace removed, lowercased.
func NormalizeGameName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
