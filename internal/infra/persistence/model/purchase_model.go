package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel mirrors the 'purchases' table. Rows are append-only.
type PurchaseModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	GameID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"not null"`
	PurchaseDate  time.Time `gorm:"not null"`
	PaymentStatus string    `gorm:"type:varchar(16);not null"`
	PaymentMethod string    `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
