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

type commerceServiceFixtures struct {
	service      usecase.CommerceUsecase
	txManager    *mockRepo.MockTransactionManager
	purchaseRepo *mockRepo.MockPurchaseRepository
}

func createTestCommerceService(t *testing.T) commerceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)

	service := NewCommerceService(CommerceServiceParams{
		TxManager:    txManager,
		PurchaseRepo: purchaseRepo,
		Logger:       newDiscardLogger(),
	})

	return commerceServiceFixtures{
		service:      service,
		txManager:    txManager,
		purchaseRepo: purchaseRepo,
	}
}

func validPayment() *usecase.PaymentInput {
	return &usecase.PaymentInput{
		CardName:       "Gamer One",
		CardNumber:     "1234567812345678",
		CardExpiration: "12/27",
		CardCVV:        "123",
	}
}

func TestCommerceService_PurchaseGame_NewCard(t *testing.T) {
	fx := createTestCommerceService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()
	game := &entity.Game{ID: gameID, Price: 59.99}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID}, nil)
			mockGameRepo.EXPECT().FindByID(ctx, gameID).Return(game, nil)

			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Run(func(ctx context.Context, purchase *entity.Purchase) {
					purchase.ID = uuid.New()
				}).
				Return(nil)

			mockUserRepo.EXPECT().AddLibraryGame(ctx, userID, gameID).Return(nil)
			mockGameRepo.EXPECT().IncrementPurchases(ctx, gameID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	purchase, err := fx.service.PurchaseGame(ctx, userID, gameID, validPayment())

	require.NoError(t, err)
	require.NotNil(t, purchase)
	assert.Equal(t, game.Price, purchase.Amount)
	assert.Equal(t, entity.PaymentStatusCompleted, purchase.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodNewCard, purchase.PaymentMethod)
}

func TestCommerceService_PurchaseGame_StoredCardEvictsWishlist(t *testing.T) {
	fx := createTestCommerceService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()
	user := &entity.User{
		ID: userID,
		Card: &entity.PaymentCard{
			Name:       "Gamer One",
			Number:     "1234567812345678",
			Expiration: "12/27",
			CVV:        "123",
		},
		Wishlist: []uuid.UUID{gameID},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)
			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockGameRepo.EXPECT().
				FindByID(ctx, gameID).
				Return(&entity.Game{ID: gameID, Price: 19.99, WishlistCount: 1}, nil)

			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Run(func(ctx context.Context, purchase *entity.Purchase) {
					assert.Equal(t, entity.PaymentMethodStoredCard, purchase.PaymentMethod)
				}).
				Return(nil)

			mockUserRepo.EXPECT().AddLibraryGame(ctx, userID, gameID).Return(nil)
			mockUserRepo.EXPECT().RemoveWishlistGame(ctx, userID, gameID).Return(nil)
			mockGameRepo.EXPECT().AdjustWishlistCount(ctx, gameID, int64(-1)).Return(nil)
			mockGameRepo.EXPECT().IncrementPurchases(ctx, gameID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	purchase, err := fx.service.PurchaseGame(ctx, userID, gameID, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodStoredCard, purchase.PaymentMethod)
}

func TestCommerceService_PurchaseGame_AlreadyOwned(t *testing.T) {
	fx := createTestCommerceService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()
	user := &entity.User{ID: userID, Library: []uuid.UUID{gameID}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockGameRepo.EXPECT().FindByID(ctx, gameID).Return(&entity.Game{ID: gameID}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAlreadyOwned, "purchase rejected"))

	purchase, err := fx.service.PurchaseGame(ctx, userID, gameID, validPayment())

	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyOwned)
}

func TestCommerceService_PurchaseGame_MissingCardFields(t *testing.T) {
	fx := createTestCommerceService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()

	var captured error
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			mockGameRepo.EXPECT().FindByID(ctx, gameID).Return(&entity.Game{ID: gameID}, nil)

			captured = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrMissingPaymentInfo, "purchase rejected"))

	payment := &usecase.PaymentInput{CardName: "Gamer One", CardExpiration: "12/27"}
	purchase, err := fx.service.PurchaseGame(ctx, userID, gameID, payment)

	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrMissingPaymentInfo)

	var appErr domainerrors.AppError
	require.ErrorAs(t, captured, &appErr)
	assert.Equal(t, "missing: cardNumber, cardCVV", appErr.Details())
}

func TestCommerceService_PurchaseGame_MalformedCardFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*usecase.PaymentInput)
		details string
	}{
		{
			name:    "short card number",
			mutate:  func(p *usecase.PaymentInput) { p.CardNumber = "123" },
			details: "malformed: cardNumber",
		},
		{
			name:    "month out of range",
			mutate:  func(p *usecase.PaymentInput) { p.CardExpiration = "13/27" },
			details: "malformed: cardExpiration",
		},
		{
			name:    "two digit cvv",
			mutate:  func(p *usecase.PaymentInput) { p.CardCVV = "12" },
			details: "malformed: cardCVV",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestCommerceService(t)

			ctx := context.Background()
			userID := uuid.New()
			gameID := uuid.New()

			var captured error
			fx.txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					mockUserRepo := mockRepo.NewMockUserRepository(t)
					mockGameRepo := mockRepo.NewMockGameRepository(t)

					mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
					mockFactory.EXPECT().GameRepo().Return(mockGameRepo)

					mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
					mockGameRepo.EXPECT().FindByID(ctx, gameID).Return(&entity.Game{ID: gameID}, nil)

					captured = fn(mockFactory)
				}).
				Return(errors.Wrap(domainerrors.ErrInvalidCardFormat, "purchase rejected"))

			payment := validPayment()
			tc.mutate(payment)

			purchase, err := fx.service.PurchaseGame(ctx, userID, gameID, payment)

			require.Error(t, err)
			assert.Nil(t, purchase)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCardFormat)

			var appErr domainerrors.AppError
			require.ErrorAs(t, captured, &appErr)
			assert.Equal(t, tc.details, appErr.Details())
		})
	}
}

func TestCommerceService_AddToWishlist_Success(t *testing.T) {
	fx := createTestCommerceService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			mockGameRepo.EXPECT().FindByID(ctx, gameID).Return(&entity.Game{ID: gameID}, nil)
			mockUserRepo.EXPECT().AddWishlistGame(ctx, userID, gameID).Return(nil)
			mockGameRepo.EXPECT().AdjustWishlistCount(ctx, gameID, int64(1)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	require.NoError(t, fx.service.AddToWishlist(ctx, userID, gameID))
}

func TestCommerceService_AddToWishlist_AlreadyWishlisted(t *testing.T) {
	fx := createTestCommerceService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()
	user := &entity.User{ID: userID, Wishlist: []uuid.UUID{gameID}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockGameRepo.EXPECT().FindByID(ctx, gameID).Return(&entity.Game{ID: gameID}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAlreadyWishlisted, "wishlist update rejected"))

	err := fx.service.AddToWishlist(ctx, userID, gameID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyWishlisted)
}

func TestCommerceService_AddToWishlist_AlreadyOwned(t *testing.T) {
	fx := createTestCommerceService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()
	user := &entity.User{ID: userID, Library: []uuid.UUID{gameID}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockGameRepo.EXPECT().FindByID(ctx, gameID).Return(&entity.Game{ID: gameID}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAlreadyOwned, "wishlist update rejected"))

	err := fx.service.AddToWishlist(ctx, userID, gameID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyOwned)
}

func TestCommerceService_RemoveFromWishlist_Success(t *testing.T) {
	fx := createTestCommerceService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()
	user := &entity.User{ID: userID, Wishlist: []uuid.UUID{gameID}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockGameRepo := mockRepo.NewMockGameRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().GameRepo().Return(mockGameRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().RemoveWishlistGame(ctx, userID, gameID).Return(nil)
			mockGameRepo.EXPECT().AdjustWishlistCount(ctx, gameID, int64(-1)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	require.NoError(t, fx.service.RemoveFromWishlist(ctx, userID, gameID))
}

func TestCommerceService_RemoveFromWishlist_NotInWishlist(t *testing.T) {
	fx := createTestCommerceService(t)

	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotInWishlist, "wishlist update rejected"))

	err := fx.service.RemoveFromWishlist(ctx, userID, gameID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotInWishlist)
}

func TestCommerceService_ListPurchases(t *testing.T) {
	fx := createTestCommerceService(t)

	ctx := context.Background()
	userID := uuid.New()
	history := []*entity.Purchase{
		{ID: uuid.New(), UserID: userID, Amount: 59.99},
		{ID: uuid.New(), UserID: userID, Amount: 19.99},
	}

	fx.purchaseRepo.EXPECT().ListByUser(ctx, userID).Return(history, nil)

	purchases, err := fx.service.ListPurchases(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, purchases, 2)
}
