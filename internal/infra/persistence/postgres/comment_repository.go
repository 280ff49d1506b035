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
)

// commentRepository implements the domain's CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// FindByID retrieves a single comment by its unique ID.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).First(&commentM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// FindByUserAndGame retrieves the comment a user left on a game, if any.
func (repo *commentRepository) FindByUserAndGame(ctx context.Context, userID, gameID uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		First(&commentM, "user_id = ? AND game_id = ?", userID, gameID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by user and game")
	}

	return toCommentDomain(&commentM), nil
}

// ListByGame returns all comments attached to a game, oldest first.
func (repo *commentRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments by game")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, toCommentDomain(&commentModels[i]))
	}

	return comments, nil
}

// Create persists a new comment entity to the database.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateComment.WrapMessage("comment already exists for this user and game")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrGameNotFound.WrapMessage("referenced game or user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// Delete removes a comment by its unique ID.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		UserID:    data.UserID,
		GameID:    data.GameID,
		Text:      data.Text,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel for persistence.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		UserID:    data.UserID,
		GameID:    data.GameID,
		Text:      data.Text,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
	}
}
