package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	deliverycontext "gamestore/internal/delivery/context"
	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	cardNumberPattern     = regexp.MustCompile(`^\d{16}$`)
	cardExpirationPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVVPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// commerceService implements the CommerceUsecase interface.
type commerceService struct {
	txManager    repository.TransactionManager
	purchaseRepo repository.PurchaseRepository
	logger       *slog.Logger
}

// CommerceServiceParams holds dependencies for commerceService, injected by Fx.
type CommerceServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PurchaseRepo repository.PurchaseRepository
	Logger       *slog.Logger
}

// NewCommerceService is the constructor for commerceService.
func NewCommerceService(params CommerceServiceParams) usecase.CommerceUsecase {
	return &commerceService{
		txManager:    params.TxManager,
		purchaseRepo: params.PurchaseRepo,
		logger:       params.Logger,
	}
}

func (srv *commerceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PurchaseGame settles a purchase. The stored card is used when the profile
// holds one; otherwise the request must supply complete card details. On
// success the game joins the user's library, leaves the wishlist and has its
// purchase counter bumped, all in one transaction.
func (srv *commerceService) PurchaseGame(ctx context.Context, userID, gameID uuid.UUID, payment *usecase.PaymentInput) (*entity.Purchase, error) {
	srv.log(ctx).Info("Starting purchase", slog.Any("userID", userID), slog.Any("gameID", gameID))

	var purchase *entity.Purchase
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		gameRepo := repoFactory.GameRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "purchase rejected")
			}

			return errors.Wrap(err, "failed to load user for purchase")
		}

		game, err := gameRepo.FindByID(ctx, gameID)
		if err != nil {
			if errors.Is(err, repository.ErrGameNotFound) {
				return errors.Wrap(domainerrors.ErrGameNotFound, "purchase rejected")
			}

			return errors.Wrap(err, "failed to load game for purchase")
		}

		if user.Owns(gameID) {
			return errors.Wrap(domainerrors.ErrAlreadyOwned, "purchase rejected")
		}

		card, method, err := resolvePaymentCard(user, payment)
		if err != nil {
			return err
		}
		if err := validateCardFormat(card); err != nil {
			return err
		}

		purchase = &entity.Purchase{
			UserID:        userID,
			GameID:        gameID,
			Amount:        game.Price,
			PurchaseDate:  time.Now(),
			PaymentStatus: entity.PaymentStatusCompleted,
			PaymentMethod: method,
		}
		if err := repoFactory.PurchaseRepo().Create(ctx, purchase); err != nil {
			return errors.Wrap(err, "failed to record purchase")
		}

		if err := userRepo.AddLibraryGame(ctx, userID, gameID); err != nil {
			return errors.Wrap(err, "failed to add game to library")
		}

		if user.HasWishlisted(gameID) {
			if err := userRepo.RemoveWishlistGame(ctx, userID, gameID); err != nil {
				return errors.Wrap(err, "failed to evict game from wishlist")
			}
			if err := gameRepo.AdjustWishlistCount(ctx, gameID, -1); err != nil {
				return errors.Wrap(err, "failed to adjust wishlist counter")
			}
		}

		if err := gameRepo.IncrementPurchases(ctx, gameID); err != nil {
			return errors.Wrap(err, "failed to bump purchase counter")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to purchase game", slog.Any("gameID", gameID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute purchase transaction")
	}

	srv.log(ctx).Debug("Purchase completed", slog.Any("purchaseID", purchase.ID))

	return purchase, nil
}

// resolvePaymentCard picks the stored card when the profile holds a complete
// one, otherwise the supplied details. Missing fields on a supplied card are
// enumerated in the error details.
func resolvePaymentCard(user *entity.User, payment *usecase.PaymentInput) (*entity.PaymentCard, entity.PaymentMethod, error) {
	if user.HasStoredCard() {
		return user.Card, entity.PaymentMethodStoredCard, nil
	}

	if payment == nil {
		return nil, "", errors.Wrap(
			domainerrors.ErrMissingPaymentInfo.WithDetails("missing: cardName, cardNumber, cardExpiration, cardCVV"),
			"purchase rejected",
		)
	}

	var missing []string
	if payment.CardName == "" {
		missing = append(missing, "cardName")
	}
	if payment.CardNumber == "" {
		missing = append(missing, "cardNumber")
	}
	if payment.CardExpiration == "" {
		missing = append(missing, "cardExpiration")
	}
	if payment.CardCVV == "" {
		missing = append(missing, "cardCVV")
	}
	if len(missing) > 0 {
		return nil, "", errors.Wrap(
			domainerrors.ErrMissingPaymentInfo.WithDetails("missing: "+strings.Join(missing, ", ")),
			"purchase rejected",
		)
	}

	card := &entity.PaymentCard{
		Name:       payment.CardName,
		Number:     payment.CardNumber,
		Expiration: payment.CardExpiration,
		CVV:        payment.CardCVV,
	}

	return card, entity.PaymentMethodNewCard, nil
}

// validateCardFormat checks the card fields against their wire formats:
// 16-digit number, MM/YY expiration, 3-4 digit CVV.
func validateCardFormat(card *entity.PaymentCard) error {
	var malformed []string
	if !cardNumberPattern.MatchString(card.Number) {
		malformed = append(malformed, "cardNumber")
	}
	if !cardExpirationPattern.MatchString(card.Expiration) {
		malformed = append(malformed, "cardExpiration")
	}
	if !cardCVVPattern.MatchString(card.CVV) {
		malformed = append(malformed, "cardCVV")
	}
	if len(malformed) > 0 {
		return errors.Wrap(
			domainerrors.ErrInvalidCardFormat.WithDetails("malformed: "+strings.Join(malformed, ", ")),
			"purchase rejected",
		)
	}

	return nil
}

// AddToWishlist adds the game to the user's wishlist and bumps the game's
// wishlist counter. Owned or already wishlisted games are rejected.
func (srv *commerceService) AddToWishlist(ctx context.Context, userID, gameID uuid.UUID) error {
	srv.log(ctx).Info("Adding game to wishlist", slog.Any("userID", userID), slog.Any("gameID", gameID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		gameRepo := repoFactory.GameRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "wishlist update rejected")
			}

			return errors.Wrap(err, "failed to load user for wishlist update")
		}

		if _, err := gameRepo.FindByID(ctx, gameID); err != nil {
			if errors.Is(err, repository.ErrGameNotFound) {
				return errors.Wrap(domainerrors.ErrGameNotFound, "wishlist update rejected")
			}

			return errors.Wrap(err, "failed to load game for wishlist update")
		}

		if user.Owns(gameID) {
			return errors.Wrap(domainerrors.ErrAlreadyOwned, "wishlist update rejected")
		}
		if user.HasWishlisted(gameID) {
			return errors.Wrap(domainerrors.ErrAlreadyWishlisted, "wishlist update rejected")
		}

		if err := userRepo.AddWishlistGame(ctx, userID, gameID); err != nil {
			return errors.Wrap(err, "failed to add game to wishlist")
		}

		return gameRepo.AdjustWishlistCount(ctx, gameID, 1)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add game to wishlist", slog.Any("gameID", gameID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute wishlist addition transaction")
	}

	return nil
}

// RemoveFromWishlist removes the game from the user's wishlist and decrements
// the game's wishlist counter, flooring at zero.
func (srv *commerceService) RemoveFromWishlist(ctx context.Context, userID, gameID uuid.UUID) error {
	srv.log(ctx).Info("Removing game from wishlist", slog.Any("userID", userID), slog.Any("gameID", gameID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "wishlist update rejected")
			}

			return errors.Wrap(err, "failed to load user for wishlist update")
		}

		if !user.HasWishlisted(gameID) {
			return errors.Wrap(domainerrors.ErrNotInWishlist, "wishlist update rejected")
		}

		if err := userRepo.RemoveWishlistGame(ctx, userID, gameID); err != nil {
			return errors.Wrap(err, "failed to remove game from wishlist")
		}

		return repoFactory.GameRepo().AdjustWishlistCount(ctx, gameID, -1)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to remove game from wishlist", slog.Any("gameID", gameID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute wishlist removal transaction")
	}

	return nil
}

// ListPurchases returns the user's order history.
func (srv *commerceService) ListPurchases(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	purchases, err := srv.purchaseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}
