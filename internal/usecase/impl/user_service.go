// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gamestore/internal/delivery/context"
	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	"gamestore/internal/domain/service"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account with a hashed password credential.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	if input.Password != input.ConfirmPassword {
		return nil, errors.Wrap(domainerrors.ErrPasswordConfirmationMismatch, "user registration rejected")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hashed,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DateOfBirth:  input.DateOfBirth,
		PhoneNumber:  input.PhoneNumber,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "user registration rejected")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("User registered", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// Login verifies the credential and issues a signed session token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.UserLoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// A reset expiry with no outstanding reset token marks a temporary
	// credential; refuse it once its window has passed even though the hash
	// still matches.
	if user.ResetToken == "" && user.ResetExpiry != nil && user.ResetExpiry.Before(time.Now()) {
		srv.log(ctx).Warn("Login with expired temporary credential", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrTemporaryPasswordExpired, "login failed")
	}

	token, err := srv.tokenService.GenerateSessionToken(user.ID, entity.RoleUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.UserLoginOutput{Token: token, User: user}, nil
}

// GetUser returns a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to get user")
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// ListUsers returns all user accounts.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateProfile applies the allow-listed profile fields. A password change
// must carry a matching confirmation and is re-hashed before storage.
func (srv *userService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", id))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile update failed")
			}

			return errors.Wrap(err, "failed to load user for profile update")
		}

		if input.Password != nil {
			if input.ConfirmPassword == nil || *input.Password != *input.ConfirmPassword {
				return errors.Wrap(domainerrors.ErrPasswordConfirmationMismatch, "profile update rejected")
			}

			hashed, hashErr := srv.hasher.Hash(*input.Password)
			if hashErr != nil {
				return errors.Wrap(hashErr, "failed to hash new password")
			}
			user.PasswordHash = hashed
		}

		if input.Email != nil {
			user.Email = *input.Email
		}

		applyCardUpdates(user, input)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update user profile", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

func applyCardUpdates(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.CardName == nil && input.CardNumber == nil && input.CardExpiration == nil && input.CardCVV == nil {
		return
	}

	if user.Card == nil {
		user.Card = &entity.PaymentCard{}
	}
	if input.CardName != nil {
		user.Card.Name = *input.CardName
	}
	if input.CardNumber != nil {
		user.Card.Number = *input.CardNumber
	}
	if input.CardExpiration != nil {
		user.Card.Expiration = *input.CardExpiration
	}
	if input.CardCVV != nil {
		user.Card.CVV = *input.CardCVV
	}
}

// ForgotPassword issues a one-hour reset token, persists it on the account
// and mails the reset link.
func (srv *userService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.log(ctx).Info("Password reset requested", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "password reset request failed")
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	token, expiresAt, err := srv.tokenService.GenerateResetToken(user.ID, entity.RoleUser)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	user.ResetToken = token
	user.ResetExpiry = &expiresAt
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist reset token")
	}

	resetURL := input.ResetBaseURL + "/api/users/reset-password/" + token
	if err := srv.mailer.SendPasswordReset(ctx, user.Email, resetURL); err != nil {
		srv.log(ctx).Error("Failed to send reset email", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrMailDeliveryFailed, "password reset request failed")
	}

	return nil
}

// ResetPassword redeems a reset token. The token is single-use: the
// persisted token and expiry are cleared on success.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Redeeming password reset token")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByResetToken(ctx, input.Token)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed")
			}

			return errors.Wrap(err, "failed to look up reset token")
		}

		if user.ResetExpiry == nil || user.ResetExpiry.Before(time.Now()) {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed")
		}

		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		user.PasswordHash = hashed
		user.ResetToken = ""
		user.ResetExpiry = nil

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to reset password", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	return nil
}
