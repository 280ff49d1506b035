package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel mirrors the 'companies' table.
type CompanyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	CompanyName  string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Country      string    `gorm:"type:varchar(100)"`
	City         string    `gorm:"type:varchar(100)"`
	Street       string    `gorm:"type:varchar(255)"`
	Address      string    `gorm:"type:varchar(255)"`
	PhoneNumber  string    `gorm:"type:varchar(32)"`

	ResetToken  string `gorm:"type:varchar(512);index"`
	ResetExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Games []GameModel `gorm:"foreignKey:CompanyID"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
