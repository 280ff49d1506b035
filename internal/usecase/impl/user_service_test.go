package impl

import (
	"context"
	"testing"
	"time"

	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	mockRepo "gamestore/internal/mocks/repository"
	mockSvc "gamestore/internal/mocks/service"
	"gamestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:           "gamer@example.com",
		Username:        "gamer01",
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_Register_PasswordConfirmationMismatch(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterUserInput{
		Email:           "gamer@example.com",
		Username:        "gamer01",
		Password:        "Password123!",
		ConfirmPassword: "Different123!",
	}

	user, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordConfirmationMismatch)
}

func TestUserService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:           "taken@example.com",
		Username:        "gamer01",
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "user registration rejected"))

	user, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:           userID,
		Email:        "gamer@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123!", stored.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateSessionToken(userID, entity.RoleUser).Return("session-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "gamer@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong", stored.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_ExpiredTemporaryCredential(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expiry := time.Now().Add(-time.Hour)
	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "gamer@example.com",
		PasswordHash: "hashed_temporary",
		ResetToken:   "",
		ResetExpiry:  &expiry,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("Temporary123!", stored.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "Temporary123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTemporaryPasswordExpired)
}

func TestUserService_Login_OutstandingResetTokenStillAllowsLogin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expiry := time.Now().Add(30 * time.Minute)
	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "gamer@example.com",
		PasswordHash: "hashed_password",
		ResetToken:   "outstanding-token",
		ResetExpiry:  &expiry,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123!", stored.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateSessionToken(stored.ID, entity.RoleUser).Return("session-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
}

func TestUserService_UpdateProfile_StoresCard(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	cardNumber := "1234567812345678"
	cardExpiration := "12/27"
	cardCVV := "123"
	input := &usecase.UpdateProfileInput{
		CardNumber:     &cardNumber,
		CardExpiration: &cardExpiration,
		CardCVV:        &cardCVV,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "gamer@example.com"}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, user.Card)
	assert.Equal(t, cardNumber, user.Card.Number)
	assert.Equal(t, cardExpiration, user.Card.Expiration)
	assert.Equal(t, cardCVV, user.Card.CVV)
}

func TestUserService_ForgotPassword_PersistsTokenAndSendsMail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, Email: "gamer@example.com"}
	expiresAt := time.Now().Add(time.Hour)

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.tokenService.EXPECT().
		GenerateResetToken(userID, entity.RoleUser).
		Return("reset-token", expiresAt, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "reset-token", user.ResetToken)
			require.NotNil(t, user.ResetExpiry)
		}).
		Return(nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, stored.Email, "https://store.example.com/api/users/reset-password/reset-token").
		Return(nil)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{
		Email:        stored.Email,
		ResetBaseURL: "https://store.example.com",
	})

	require.NoError(t, err)
}

func TestUserService_ForgotPassword_MailDeliveryFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), Email: "gamer@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.tokenService.EXPECT().
		GenerateResetToken(stored.ID, entity.RoleUser).
		Return("reset-token", time.Now().Add(time.Hour), nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, stored.Email, mock.AnythingOfType("string")).
		Return(errors.New("smtp unreachable"))

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{
		Email:        stored.Email,
		ResetBaseURL: "https://store.example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expiry := time.Now().Add(30 * time.Minute)
	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "gamer@example.com",
		PasswordHash: "old_hash",
		ResetToken:   "reset-token",
		ResetExpiry:  &expiry,
	}

	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByResetToken(ctx, "reset-token").Return(stored, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "new_hash", user.PasswordHash)
					assert.Empty(t, user.ResetToken)
					assert.Nil(t, user.ResetExpiry)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:    "reset-token",
		Password: "NewPassword123!",
	})

	require.NoError(t, err)
}

func TestUserService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expiry := time.Now().Add(-time.Minute)
	stored := &entity.User{
		ID:          uuid.New(),
		ResetToken:  "reset-token",
		ResetExpiry: &expiry,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByResetToken(ctx, "reset-token").Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed"))

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:    "reset-token",
		Password: "NewPassword123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestUserService_ResetPassword_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByResetToken(ctx, "forged-token").
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed"))

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:    "forged-token",
		Password: "NewPassword123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}
