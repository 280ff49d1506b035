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

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddComment attaches a comment to a game and recomputes the game's average
// rating in the same transaction. At most one comment per (user, game).
func (srv *ratingService) AddComment(ctx context.Context, userID, gameID uuid.UUID, input *usecase.AddCommentInput) (*entity.Comment, error) {
	srv.log(ctx).Info("Adding comment", slog.Any("userID", userID), slog.Any("gameID", gameID))

	if !entity.ValidRating(input.Rating) {
		return nil, errors.Wrap(domainerrors.ErrInvalidRating, "comment rejected")
	}

	newComment := &entity.Comment{
		UserID: userID,
		GameID: gameID,
		Text:   input.Text,
		Rating: input.Rating,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gameRepo := repoFactory.GameRepo()
		commentRepo := repoFactory.CommentRepo()

		if _, err := gameRepo.FindByID(ctx, gameID); err != nil {
			if errors.Is(err, repository.ErrGameNotFound) {
				return errors.Wrap(domainerrors.ErrGameNotFound, "comment rejected")
			}

			return errors.Wrap(err, "failed to load game for comment")
		}

		_, findErr := commentRepo.FindByUserAndGame(ctx, userID, gameID)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrDuplicateComment, "comment rejected")
		}
		if !errors.Is(findErr, repository.ErrCommentNotFound) {
			return errors.Wrap(findErr, "failed to check for existing comment")
		}

		if err := commentRepo.Create(ctx, newComment); err != nil {
			return errors.Wrap(err, "failed to create comment")
		}

		return srv.recomputeAverage(ctx, repoFactory, gameID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add comment", slog.Any("gameID", gameID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute comment creation transaction")
	}

	srv.log(ctx).Debug("Comment added", slog.Any("commentID", newComment.ID))

	return newComment, nil
}

// RemoveComment deletes the caller's comment and recomputes the game's
// average rating over what remains. Another user's comment is reported as
// not found rather than forbidden.
func (srv *ratingService) RemoveComment(ctx context.Context, userID, commentID uuid.UUID) (*entity.Comment, error) {
	srv.log(ctx).Info("Removing comment", slog.Any("userID", userID), slog.Any("commentID", commentID))

	var removed *entity.Comment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()

		comment, err := commentRepo.FindByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "comment removal failed")
			}

			return errors.Wrap(err, "failed to load comment")
		}

		if comment.UserID != userID {
			return errors.Wrap(domainerrors.ErrCommentNotFound, "comment removal failed")
		}

		if err := commentRepo.Delete(ctx, commentID); err != nil {
			return errors.Wrap(err, "failed to delete comment")
		}
		removed = comment

		return srv.recomputeAverage(ctx, repoFactory, comment.GameID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to remove comment", slog.Any("commentID", commentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute comment removal transaction")
	}

	return removed, nil
}

// recomputeAverage stores the mean rating over the game's current comments,
// or zero when none remain.
func (srv *ratingService) recomputeAverage(ctx context.Context, repoFactory repository.RepositoryFactory, gameID uuid.UUID) error {
	comments, err := repoFactory.CommentRepo().ListByGame(ctx, gameID)
	if err != nil {
		return errors.Wrap(err, "failed to list comments for rating recompute")
	}

	var average float64
	if len(comments) > 0 {
		var sum int
		for _, comment := range comments {
			sum += comment.Rating
		}
		average = float64(sum) / float64(len(comments))
	}

	if err := repoFactory.GameRepo().SetAverageRating(ctx, gameID, average); err != nil {
		return errors.Wrap(err, "failed to store recomputed rating")
	}

	return nil
}
