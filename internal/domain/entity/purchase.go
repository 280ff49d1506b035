package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the settlement state of a purchase.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentMethod records which card source settled a purchase.
type PaymentMethod string

const (
	// PaymentMethodStoredCard means the card saved on the user's profile was charged.
	PaymentMethodStoredCard PaymentMethod = "stored_card"
	// PaymentMethodNewCard means card details were supplied with the request.
	PaymentMethodNewCard PaymentMethod = "new_card"
)

// Purchase records a completed transaction linking a user and a game.
// Purchases are append-only; there is no delete path.
type Purchase struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	GameID        uuid.UUID
	Amount        float64
	PurchaseDate  time.Time
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
}
