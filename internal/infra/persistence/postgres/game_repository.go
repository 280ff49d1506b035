package postgres

import (
	"context"

	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	"gamestore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gameRepository implements the domain's GameRepository interface using GORM.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository is the constructor for gameRepository.
func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

// FindByID retrieves a single game by its unique ID, preloading its comment references.
func (repo *gameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	var gameM model.GameModel
	err := repo.db.WithContext(ctx).
		Preload("Comments").
		First(&gameM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game by id")
	}

	return toGameDomain(&gameM), nil
}

// FindByName retrieves a game by its normalized name.
func (repo *gameRepository) FindByName(ctx context.Context, normalizedName string) (*entity.Game, error) {
	var gameM model.GameModel
	err := repo.db.WithContext(ctx).
		First(&gameM, "name = ?", normalizedName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game by name")
	}

	return toGameDomain(&gameM), nil
}

// Create persists a new game entity to the database.
func (repo *gameRepository) Create(ctx context.Context, game *entity.Game) error {
	gameM := fromGameDomain(game)

	if err := repo.db.WithContext(ctx).Create(gameM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrGameNameTaken.WrapMessage("game name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCompanyNotFound.WrapMessage("owning company does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create game")
	}

	game.ID = gameM.ID
	game.CreatedAt = gameM.CreatedAt
	game.UpdatedAt = gameM.UpdatedAt

	return nil
}

// Update modifies an existing game's scalar fields. The counters and the
// average rating have dedicated atomic methods and are omitted here so a
// stale in-memory copy cannot clobber concurrent bumps.
func (repo *gameRepository) Update(ctx context.Context, game *entity.Game) error {
	gameM := fromGameDomain(game)

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations, "views", "average_rating", "purchases", "wishlist_count").
		Save(gameM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrGameNameTaken.WrapMessage("game name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update game")
	}

	game.UpdatedAt = gameM.UpdatedAt

	return nil
}

// Delete removes the game together with its comments and any wishlist and
// library references. Callers run this inside a transaction.
func (repo *gameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("game_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete game comments")
	}
	if err := db.Where("game_id = ?", id).Delete(&model.UserWishlistModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete wishlist references")
	}
	if err := db.Where("game_id = ?", id).Delete(&model.UserLibraryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete library references")
	}

	result := db.Delete(&model.GameModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete game")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}

// List returns all games.
func (repo *gameRepository) List(ctx context.Context) ([]*entity.Game, error) {
	var gameModels []model.GameModel
	err := repo.db.WithContext(ctx).
		Preload("Comments").
		Find(&gameModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	games := make([]*entity.Game, 0, len(gameModels))
	for i := range gameModels {
		games = append(games, toGameDomain(&gameModels[i]))
	}

	return games, nil
}

// IncrementViews bumps the view counter with a single atomic statement.
func (repo *gameRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment views")
	}

	return nil
}

// AdjustWishlistCount adds delta to the wishlist counter, flooring at zero.
func (repo *gameRepository) AdjustWishlistCount(ctx context.Context, id uuid.UUID, delta int64) error {
	err := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ?", id).
		UpdateColumn("wishlist_count", gorm.Expr("GREATEST(wishlist_count + ?, 0)", delta)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to adjust wishlist count")
	}

	return nil
}

// IncrementPurchases bumps the purchase counter with a single atomic statement.
func (repo *gameRepository) IncrementPurchases(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ?", id).
		UpdateColumn("purchases", gorm.Expr("purchases + 1")).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment purchases")
	}

	return nil
}

// SetAverageRating stores the recomputed aggregate rating.
func (repo *gameRepository) SetAverageRating(ctx context.Context, id uuid.UUID, average float64) error {
	err := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ?", id).
		UpdateColumn("average_rating", average).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set average rating")
	}

	return nil
}

// toGameDomain converts a GORM GameModel to a domain Game entity.
func toGameDomain(data *model.GameModel) *entity.Game {
	if data == nil {
		return nil
	}

	comments := make([]uuid.UUID, 0, len(data.Comments))
	for _, comment := range data.Comments {
		comments = append(comments, comment.ID)
	}

	return &entity.Game{
		ID:                      data.ID,
		Name:                    data.Name,
		DisplayName:             data.DisplayName,
		Category:                data.Category,
		Description:             data.Description,
		MinimumRequirements:     toRequirementsDomain(data.MinimumRequirements),
		RecommendedRequirements: toRequirementsDomain(data.RecommendedRequirements),
		Price:                   data.Price,
		CompanyID:               data.CompanyID,
		IsPublished:             data.IsPublished,
		Views:                   data.Views,
		AverageRating:           data.AverageRating,
		Purchases:               data.Purchases,
		WishlistCount:           data.WishlistCount,
		Comments:                comments,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

// fromGameDomain converts a domain Game entity to a GORM GameModel for persistence.
func fromGameDomain(data *entity.Game) *model.GameModel {
	if data == nil {
		return nil
	}

	return &model.GameModel{
		ID:                      data.ID,
		Name:                    data.Name,
		DisplayName:             data.DisplayName,
		Category:                data.Category,
		Description:             data.Description,
		MinimumRequirements:     fromRequirementsDomain(data.MinimumRequirements),
		RecommendedRequirements: fromRequirementsDomain(data.RecommendedRequirements),
		Price:                   data.Price,
		CompanyID:               data.CompanyID,
		IsPublished:             data.IsPublished,
		Views:                   data.Views,
		AverageRating:           data.AverageRating,
		Purchases:               data.Purchases,
		WishlistCount:           data.WishlistCount,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

func toRequirementsDomain(data model.RequirementsColumns) entity.Requirements {
	return entity.Requirements{
		System:    data.System,
		Processor: data.Processor,
		Memory:    data.Memory,
		Graphics:  data.Graphics,
		DirectX:   data.DirectX,
		Storage:   data.Storage,
	}
}

func fromRequirementsDomain(data entity.Requirements) model.RequirementsColumns {
	return model.RequirementsColumns{
		System:    data.System,
		Processor: data.Processor,
		Memory:    data.Memory,
		Graphics:  data.Graphics,
		DirectX:   data.DirectX,
		Storage:   data.Storage,
	}
}
