package impl

import (
	"context"
	"log/slog"

	deliverycontext "gamestore/internal/delivery/context"
	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	gameRepo  repository.GameRepository
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GameRepo  repository.GameRepository
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		gameRepo:  params.GameRepo,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGame creates a catalog entry owned by the calling company. The name
// is normalized before the uniqueness check; the company's game list is
// derived from ownership, so the insert alone keeps both sides consistent.
func (srv *catalogService) CreateGame(ctx context.Context, companyID uuid.UUID, input *usecase.CreateGameInput) (*entity.Game, error) {
	normalized := entity.NormalizeGameName(input.Name)
	srv.log(ctx).Info("Creating game", slog.String("name", normalized), slog.Any("companyID", companyID))

	newGame := &entity.Game{
		Name:                    normalized,
		DisplayName:             input.Name,
		Category:                input.Category,
		Description:             input.Description,
		MinimumRequirements:     toRequirements(input.MinimumRequirements),
		RecommendedRequirements: toRequirements(input.RecommendedRequirements),
		Price:                   input.Price,
		CompanyID:               companyID,
		IsPublished:             input.IsPublished,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gameRepo := repoFactory.GameRepo()

		_, findErr := gameRepo.FindByName(ctx, normalized)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrGameNameTaken, "game creation rejected")
		}
		if !errors.Is(findErr, repository.ErrGameNotFound) {
			return errors.Wrap(findErr, "failed to check game name availability")
		}

		return gameRepo.Create(ctx, newGame)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create game", slog.String("name", normalized), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute game creation transaction")
	}

	srv.log(ctx).Debug("Game created", slog.Any("gameID", newGame.ID))

	return newGame, nil
}

// GetGame returns a single game and bumps its view counter atomically.
func (srv *catalogService) GetGame(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	game, err := srv.gameRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGameNotFound, "failed to get game")
		}

		return nil, errors.Wrap(err, "failed to get game")
	}

	if err := srv.gameRepo.IncrementViews(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to bump view counter", slog.Any("gameID", id), slog.Any("error", err))
	} else {
		game.Views++
	}

	return game, nil
}

// ListGames returns the full catalog.
func (srv *catalogService) ListGames(ctx context.Context) ([]*entity.Game, error) {
	games, err := srv.gameRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	return games, nil
}

// UpdateGame applies a partial patch. Only the owning company may call it;
// a name change re-runs normalization and the uniqueness check.
func (srv *catalogService) UpdateGame(ctx context.Context, companyID, gameID uuid.UUID, input *usecase.UpdateGameInput) (*entity.Game, error) {
	srv.log(ctx).Info("Updating game", slog.Any("gameID", gameID), slog.Any("companyID", companyID))

	var updated *entity.Game
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gameRepo := repoFactory.GameRepo()

		game, err := loadOwnedGame(ctx, gameRepo, companyID, gameID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			normalized := entity.NormalizeGameName(*input.Name)
			if normalized != game.Name {
				_, findErr := gameRepo.FindByName(ctx, normalized)
				if findErr == nil {
					return errors.Wrap(domainerrors.ErrGameNameTaken, "game update rejected")
				}
				if !errors.Is(findErr, repository.ErrGameNotFound) {
					return errors.Wrap(findErr, "failed to check game name availability")
				}
			}
			game.Name = normalized
			game.DisplayName = *input.Name
		}
		if input.Category != nil {
			game.Category = *input.Category
		}
		if input.Description != nil {
			game.Description = *input.Description
		}
		if input.MinimumRequirements != nil {
			game.MinimumRequirements = toRequirements(*input.MinimumRequirements)
		}
		if input.RecommendedRequirements != nil {
			game.RecommendedRequirements = toRequirements(*input.RecommendedRequirements)
		}
		if input.Price != nil {
			game.Price = *input.Price
		}
		if input.IsPublished != nil {
			game.IsPublished = *input.IsPublished
		}

		if err := gameRepo.Update(ctx, game); err != nil {
			return errors.Wrap(err, "failed to update game")
		}
		updated = game

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update game", slog.Any("gameID", gameID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute game update transaction")
	}

	return updated, nil
}

// DeleteGame removes a game, its comments and any wishlist/library rows
// referencing it, inside one transaction. Only the owning company may call it.
func (srv *catalogService) DeleteGame(ctx context.Context, companyID, gameID uuid.UUID) error {
	srv.log(ctx).Info("Deleting game", slog.Any("gameID", gameID), slog.Any("companyID", companyID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gameRepo := repoFactory.GameRepo()

		if _, err := loadOwnedGame(ctx, gameRepo, companyID, gameID); err != nil {
			return err
		}

		return gameRepo.Delete(ctx, gameID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete game", slog.Any("gameID", gameID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute game deletion transaction")
	}

	return nil
}

// loadOwnedGame fetches a game and enforces the ownership invariant.
func loadOwnedGame(ctx context.Context, gameRepo repository.GameRepository, companyID, gameID uuid.UUID) (*entity.Game, error) {
	game, err := gameRepo.FindByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGameNotFound, "game lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load game")
	}

	if game.CompanyID != companyID {
		return nil, errors.Wrap(domainerrors.ErrNotGameOwner, "ownership check failed")
	}

	return game, nil
}

func toRequirements(input usecase.RequirementsInput) entity.Requirements {
	return entity.Requirements{
		System:    input.System,
		Processor: input.Processor,
		Memory:    input.Memory,
		Graphics:  input.Graphics,
		DirectX:   input.DirectX,
		Storage:   input.Storage,
	}
}
