package repository

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseRepository defines the operations for purchase persistence.
// Purchases are append-only; there is deliberately no delete method.
type PurchaseRepository interface {
	// Create persists a new purchase record to the storage.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// ListByUser returns a user's order history, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error)
}
