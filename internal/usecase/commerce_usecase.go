package usecase

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentInput carries card details supplied with a purchase request.
// All fields are optional; when the user has no stored card the commerce
// service enumerates whichever of these are missing.
type PaymentInput struct {
	CardName       string `json:"cardName"`
	CardNumber     string `json:"cardNumber"`
	CardExpiration string `json:"cardExpiration"`
	CardCVV        string `json:"cardCVV"`
}

// CommerceUsecase defines the purchase and wishlist operations.
type CommerceUsecase interface {
	// PurchaseGame validates payment, records a completed purchase, adds the
	// game to the user's library, evicts it from the wishlist and bumps the
	// game's purchase counter, all in one transaction.
	PurchaseGame(ctx context.Context, userID, gameID uuid.UUID, payment *PaymentInput) (*entity.Purchase, error)

	// AddToWishlist adds the game to the user's wishlist and increments the
	// game's wishlist counter. Owned or already wishlisted games are rejected.
	AddToWishlist(ctx context.Context, userID, gameID uuid.UUID) error

	// RemoveFromWishlist removes the game from the user's wishlist and
	// decrements the game's wishlist counter, flooring at zero.
	RemoveFromWishlist(ctx context.Context, userID, gameID uuid.UUID) error

	// ListPurchases returns the user's order history.
	ListPurchases(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error)
}
