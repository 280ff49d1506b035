package model

import (
	"time"

	"github.com/google/uuid"
)

// GameModel mirrors the 'games' table. The normalized name carries the
// catalog-wide uniqueness constraint; the display name keeps the publisher's
// original casing.
type GameModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);unique;not null"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`

	MinimumRequirements     RequirementsColumns `gorm:"embedded;embeddedPrefix:min_"`
	RecommendedRequirements RequirementsColumns `gorm:"embedded;embeddedPrefix:rec_"`

	Price       float64   `gorm:"not null"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	IsPublished bool

	Views         int64   `gorm:"not null;default:0"`
	AverageRating float64 `gorm:"not null;default:0"`
	Purchases     int64   `gorm:"not null;default:0"`
	WishlistCount int64   `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Comments []CommentModel `gorm:"foreignKey:GameID"`
}

// TableName explicitly sets the table name for GORM.
func (GameModel) TableName() string {
	return "games"
}

// RequirementsColumns holds one hardware requirement profile, embedded twice
// into the games table under the min_/rec_ prefixes.
type RequirementsColumns struct {
	System    string `gorm:"type:varchar(100)"`
	Processor string `gorm:"type:varchar(100)"`
	Memory    string `gorm:"type:varchar(100)"`
	Graphics  string `gorm:"type:varchar(100)"`
	DirectX   string `gorm:"type:varchar(100)"`
	Storage   string `gorm:"type:varchar(100)"`
}
