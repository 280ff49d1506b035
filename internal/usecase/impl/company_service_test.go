package impl

import (
	"context"
	"testing"

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

type companyServiceFixtures struct {
	service      usecase.CompanyUsecase
	txManager    *mockRepo.MockTransactionManager
	companyRepo  *mockRepo.MockCompanyRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestCompanyService(t *testing.T) companyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewCompanyService(CompanyServiceParams{
		TxManager:    txManager,
		CompanyRepo:  companyRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Logger:       newDiscardLogger(),
	})

	return companyServiceFixtures{
		service:      service,
		txManager:    txManager,
		companyRepo:  companyRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func registerCompanyInput() *usecase.RegisterCompanyInput {
	return &usecase.RegisterCompanyInput{
		Email:           "studio@example.com",
		CompanyName:     "Pixel Forge",
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
		Country:         "Greece",
		City:            "Athens",
		Street:          "Main St",
		Address:         "12",
		PhoneNumber:     "+302101234567",
	}
}

func TestCompanyService_Register_Success(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	input := registerCompanyInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)

			mockFactory.EXPECT().CompanyRepo().Return(mockCompanyRepo)

			mockCompanyRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrCompanyNotFound)

			mockCompanyRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Company")).
				Run(func(ctx context.Context, company *entity.Company) {
					company.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	company, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, input.CompanyName, company.CompanyName)
	assert.Equal(t, "hashed_password", company.PasswordHash)
}

func TestCompanyService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	input := registerCompanyInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)

			mockFactory.EXPECT().CompanyRepo().Return(mockCompanyRepo)

			mockCompanyRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.Company{ID: uuid.New(), Email: input.Email}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "company registration rejected"))

	company, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, company)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestCompanyService_Login_Success(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	stored := &entity.Company{
		ID:           uuid.New(),
		Email:        "studio@example.com",
		PasswordHash: "hashed_password",
	}

	fx.companyRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("Password123!", stored.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateSessionToken(stored.ID, entity.RoleCompany).
		Return("session-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, stored.ID, output.Company.ID)
}

func TestCompanyService_Login_WrongPassword(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	stored := &entity.Company{
		ID:           uuid.New(),
		Email:        "studio@example.com",
		PasswordHash: "hashed_password",
	}

	fx.companyRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong", stored.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestCompanyService_UpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	companyID := uuid.New()
	newCity := "Thessaloniki"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)

			mockFactory.EXPECT().CompanyRepo().Return(mockCompanyRepo)

			mockCompanyRepo.EXPECT().
				FindByID(ctx, companyID).
				Return(&entity.Company{ID: companyID, CompanyName: "Pixel Forge", City: "Athens"}, nil)

			mockCompanyRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Company")).
				Run(func(ctx context.Context, company *entity.Company) {
					assert.Equal(t, "Thessaloniki", company.City)
					assert.Equal(t, "Pixel Forge", company.CompanyName)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	company, err := fx.service.UpdateProfile(ctx, companyID, &usecase.UpdateCompanyProfileInput{City: &newCity})

	require.NoError(t, err)
	assert.Equal(t, "Thessaloniki", company.City)
}

func TestCompanyService_ForgotPassword_SendsCompanyResetLink(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	stored := &entity.Company{ID: uuid.New(), Email: "studio@example.com"}

	fx.companyRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
	fx.tokenService.EXPECT().
		GenerateResetToken(stored.ID, entity.RoleCompany).
		Return("reset-token", timeNowPlusHour(), nil)
	fx.companyRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Company")).Return(nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, stored.Email, "https://store.example.com/api/companies/reset-password/reset-token").
		Return(nil)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{
		Email:        stored.Email,
		ResetBaseURL: "https://store.example.com",
	})

	require.NoError(t, err)
}
