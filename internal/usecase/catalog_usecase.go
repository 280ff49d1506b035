package usecase

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// RequirementsInput mirrors a hardware requirement profile.
type RequirementsInput struct {
	System    string `json:"system"`
	Processor string `json:"processor"`
	Memory    string `json:"memory"`
	Graphics  string `json:"graphics"`
	DirectX   string `json:"directX"`
	Storage   string `json:"storage"`
}

// CreateGameInput defines the data required to create a catalog entry.
type CreateGameInput struct {
	Name                    string            `json:"name" validate:"required"`
	Category                string            `json:"category" validate:"required"`
	Description             string            `json:"description" validate:"required"`
	MinimumRequirements     RequirementsInput `json:"minimumRequirements"`
	RecommendedRequirements RequirementsInput `json:"recommendedRequirements"`
	Price                   float64           `json:"price" validate:"gte=0"`
	IsPublished             bool              `json:"isPublished"`
}

// UpdateGameInput carries a partial patch for a catalog entry. Nil pointers
// leave the corresponding field untouched.
type UpdateGameInput struct {
	Name                    *string            `json:"name"`
	Category                *string            `json:"category"`
	Description             *string            `json:"description"`
	MinimumRequirements     *RequirementsInput `json:"minimumRequirements"`
	RecommendedRequirements *RequirementsInput `json:"recommendedRequirements"`
	Price                   *float64           `json:"price" validate:"omitempty,gte=0"`
	IsPublished             *bool              `json:"isPublished"`
}

// CatalogUsecase defines the catalog management operations.
type CatalogUsecase interface {
	// CreateGame creates a new catalog entry owned by the calling company.
	CreateGame(ctx context.Context, companyID uuid.UUID, input *CreateGameInput) (*entity.Game, error)

	// GetGame returns a single game and bumps its view counter.
	GetGame(ctx context.Context, id uuid.UUID) (*entity.Game, error)

	// ListGames returns the full catalog.
	ListGames(ctx context.Context) ([]*entity.Game, error)

	// UpdateGame applies a partial patch; only the owning company may call it.
	UpdateGame(ctx context.Context, companyID, gameID uuid.UUID, input *UpdateGameInput) (*entity.Game, error)

	// DeleteGame removes a game and its comments; only the owning company may call it.
	DeleteGame(ctx context.Context, companyID, gameID uuid.UUID) error
}
