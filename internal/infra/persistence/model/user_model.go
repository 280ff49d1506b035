package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	DateOfBirth  *time.Time
	PhoneNumber  string `gorm:"type:varchar(32)"`

	// Stored payment card columns. All empty when the user never saved one.
	CardName       string `gorm:"type:varchar(100)"`
	CardNumber     string `gorm:"type:varchar(19)"`
	CardExpiration string `gorm:"type:varchar(5)"`
	CardCVV        string `gorm:"column:card_cvv;type:varchar(4)"`

	ResetToken  string `gorm:"type:varchar(512);index"`
	ResetExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	WishlistEntries []UserWishlistModel `gorm:"foreignKey:UserID"`
	LibraryEntries  []UserLibraryModel  `gorm:"foreignKey:UserID"`
	Comments        []CommentModel      `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserWishlistModel mirrors the 'user_wishlist' join table. Membership is a
// set: the composite primary key rejects duplicate rows.
type UserWishlistModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	GameID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserWishlistModel) TableName() string {
	return "user_wishlist"
}

// UserLibraryModel mirrors the 'user_library' join table holding purchased games.
type UserLibraryModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	GameID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserLibraryModel) TableName() string {
	return "user_library"
}
