package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront customer account. The password is only ever held as a
// bcrypt hash; the plaintext never leaves the identity service.
type User struct {
	ID           uuid.UUID
	Email        string // Unique login identifier.
	Username     string // Unique display handle.
	PasswordHash string
	FirstName    string
	LastName     string
	DateOfBirth  *time.Time
	PhoneNumber  string

	// Card holds the user's stored payment card, if any. Nil when the user
	// has never saved card details.
	Card *PaymentCard

	// Wishlist and Library are sets of game IDs. A game is never in both:
	// purchasing moves it from Wishlist to Library.
	Wishlist []uuid.UUID
	Library  []uuid.UUID

	// Comments lists the IDs of the user's comments, newest last.
	Comments []uuid.UUID

	// ResetToken and ResetExpiry track an outstanding password-reset
	// credential. Both are cleared on redemption.
	ResetToken  string
	ResetExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role returns the fixed role tag for user accounts.
func (u *User) Role() Role {
	return RoleUser
}

// Owns reports whether the game is already in the user's library.
func (u *User) Owns(gameID uuid.UUID) bool {
	for _, id := range u.Library {
		if id == gameID {
			return true
		}
	}

	return false
}

// HasWishlisted reports whether the game is in the user's wishlist.
func (u *User) HasWishlisted(gameID uuid.UUID) bool {
	for _, id := range u.Wishlist {
		if id == gameID {
			return true
		}
	}

	return false
}

// HasStoredCard reports whether the user has complete saved card details
// usable for a purchase.
func (u *User) HasStoredCard() bool {
	return u.Card != nil && u.Card.Number != "" && u.Card.Expiration != "" && u.Card.CVV != ""
}

// PaymentCard holds payment card fields as supplied by the user.
type PaymentCard struct {
	Name       string
	Number     string
	Expiration string // MM/YY
	CVV        string
}
