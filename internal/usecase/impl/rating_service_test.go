package impl

import (
	"context"
	"testing"

	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	mockRepo "gamestore/internal/mocks/repository"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingServiceFixtures struct {
	service   usecase.RatingUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewRatingService(RatingServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	return ratingServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestRatingService_AddComment_RecomputesAverage(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()
	input := &usecase.AddCommentInput{Text: "Great game", Rating: 5}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)
			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)

			mockGameRepo.EXPECT().
				FindByID(ctx, gameID).
				Return(&entity.Game{ID: gameID}, nil)

			mockCommentRepo.EXPECT().
				FindByUserAndGame(ctx, userID, gameID).
				Return(nil, repository.ErrCommentNotFound)

			mockCommentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Comment")).
				Run(func(ctx context.Context, comment *entity.Comment) {
					comment.ID = uuid.New()
				}).
				Return(nil)

			// An existing 3-star comment plus the new 5-star one.
			mockCommentRepo.EXPECT().
				ListByGame(ctx, gameID).
				Return([]*entity.Comment{
					{GameID: gameID, Rating: 3},
					{UserID: userID, GameID: gameID, Rating: 5},
				}, nil)

			mockGameRepo.EXPECT().
				SetAverageRating(ctx, gameID, 4.0).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	comment, err := fx.service.AddComment(ctx, userID, gameID, input)

	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, userID, comment.UserID)
	assert.Equal(t, gameID, comment.GameID)
	assert.Equal(t, 5, comment.Rating)
}

func TestRatingService_AddComment_RatingOutOfRange(t *testing.T) {
	fx := createTestRatingService(t)

	for _, rating := range []int{0, 6, -1} {
		comment, err := fx.service.AddComment(context.Background(), uuid.New(), uuid.New(), &usecase.AddCommentInput{
			Text:   "out of range",
			Rating: rating,
		})

		require.Error(t, err)
		assert.Nil(t, comment)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}
}

func TestRatingService_AddComment_Duplicate(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)
			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)

			mockGameRepo.EXPECT().
				FindByID(ctx, gameID).
				Return(&entity.Game{ID: gameID}, nil)

			mockCommentRepo.EXPECT().
				FindByUserAndGame(ctx, userID, gameID).
				Return(&entity.Comment{ID: uuid.New(), UserID: userID, GameID: gameID}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrDuplicateComment, "comment rejected"))

	comment, err := fx.service.AddComment(ctx, userID, gameID, &usecase.AddCommentInput{Text: "again", Rating: 4})

	require.Error(t, err)
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateComment)
}

func TestRatingService_AddComment_GameNotFound(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	gameID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)

			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)
			mockFactory.EXPECT().CommentRepo().Return(mockRepo.NewMockCommentRepository(t))

			mockGameRepo.EXPECT().
				FindByID(ctx, gameID).
				Return(nil, repository.ErrGameNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrGameNotFound, "comment rejected"))

	comment, err := fx.service.AddComment(ctx, uuid.New(), gameID, &usecase.AddCommentInput{Text: "ghost", Rating: 3})

	require.Error(t, err)
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, domainerrors.ErrGameNotFound)
}

func TestRatingService_RemoveComment_RecomputesAverage(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()
	commentID := uuid.New()
	stored := &entity.Comment{ID: commentID, UserID: userID, GameID: gameID, Rating: 5}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)
			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)

			mockCommentRepo.EXPECT().FindByID(ctx, commentID).Return(stored, nil)
			mockCommentRepo.EXPECT().Delete(ctx, commentID).Return(nil)

			// The last comment is gone; the average resets to zero.
			mockCommentRepo.EXPECT().ListByGame(ctx, gameID).Return(nil, nil)
			mockGameRepo.EXPECT().SetAverageRating(ctx, gameID, 0.0).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	removed, err := fx.service.RemoveComment(ctx, userID, commentID)

	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, commentID, removed.ID)
}

func TestRatingService_RemoveComment_NotAuthorReportsNotFound(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	commentID := uuid.New()
	stored := &entity.Comment{ID: commentID, UserID: uuid.New(), GameID: uuid.New(), Rating: 2}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockCommentRepo.EXPECT().FindByID(ctx, commentID).Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrCommentNotFound, "comment removal failed"))

	removed, err := fx.service.RemoveComment(ctx, uuid.New(), commentID)

	require.Error(t, err)
	assert.Nil(t, removed)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}
