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

// companyService implements the CompanyUsecase interface.
type companyService struct {
	txManager    repository.TransactionManager
	companyRepo  repository.CompanyRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// CompanyServiceParams holds dependencies for companyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CompanyRepo  repository.CompanyRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		txManager:    params.TxManager,
		companyRepo:  params.CompanyRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new company account with a hashed password credential.
func (srv *companyService) Register(ctx context.Context, input *usecase.RegisterCompanyInput) (*entity.Company, error) {
	srv.log(ctx).Info("Starting company registration", slog.String("email", input.Email))

	if input.Password != input.ConfirmPassword {
		return nil, errors.Wrap(domainerrors.ErrPasswordConfirmationMismatch, "company registration rejected")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newCompany := &entity.Company{
		Email:        input.Email,
		CompanyName:  input.CompanyName,
		PasswordHash: hashed,
		Country:      input.Country,
		City:         input.City,
		Street:       input.Street,
		Address:      input.Address,
		PhoneNumber:  input.PhoneNumber,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		companyRepo := repoFactory.CompanyRepo()

		_, findErr := companyRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "company registration rejected")
		}
		if !errors.Is(findErr, repository.ErrCompanyNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		return companyRepo.Create(ctx, newCompany)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register company", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute company registration transaction")
	}

	srv.log(ctx).Debug("Company registered", slog.Any("companyID", newCompany.ID))

	return newCompany, nil
}

// Login verifies the credential and issues a signed session token.
func (srv *companyService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.CompanyLoginOutput, error) {
	srv.log(ctx).Debug("Starting company login", slog.String("email", input.Email))

	company, err := srv.companyRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load company for login")
	}

	if !srv.hasher.Check(input.Password, company.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if company.ResetToken == "" && company.ResetExpiry != nil && company.ResetExpiry.Before(time.Now()) {
		return nil, errors.Wrap(domainerrors.ErrTemporaryPasswordExpired, "login failed")
	}

	token, err := srv.tokenService.GenerateSessionToken(company.ID, entity.RoleCompany)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.CompanyLoginOutput{Token: token, Company: company}, nil
}

// GetCompany returns a single company by ID.
func (srv *companyService) GetCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := srv.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "failed to get company")
		}

		return nil, errors.Wrap(err, "failed to get company")
	}

	return company, nil
}

// ListCompanies returns all company accounts.
func (srv *companyService) ListCompanies(ctx context.Context) ([]*entity.Company, error) {
	companies, err := srv.companyRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	return companies, nil
}

// UpdateProfile applies the allow-listed company profile fields.
func (srv *companyService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateCompanyProfileInput) (*entity.Company, error) {
	srv.log(ctx).Info("Updating company profile", slog.Any("companyID", id))

	var updated *entity.Company
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		companyRepo := repoFactory.CompanyRepo()

		company, err := companyRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCompanyNotFound) {
				return errors.Wrap(domainerrors.ErrCompanyNotFound, "profile update failed")
			}

			return errors.Wrap(err, "failed to load company for profile update")
		}

		if input.CompanyName != nil {
			company.CompanyName = *input.CompanyName
		}
		if input.Country != nil {
			company.Country = *input.Country
		}
		if input.City != nil {
			company.City = *input.City
		}
		if input.Street != nil {
			company.Street = *input.Street
		}
		if input.Address != nil {
			company.Address = *input.Address
		}
		if input.PhoneNumber != nil {
			company.PhoneNumber = *input.PhoneNumber
		}

		if err := companyRepo.Update(ctx, company); err != nil {
			return errors.Wrap(err, "failed to update company profile")
		}
		updated = company

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute company profile update transaction")
	}

	return updated, nil
}

// ForgotPassword issues a one-hour reset token, persists it on the account
// and mails the reset link.
func (srv *companyService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.log(ctx).Info("Password reset requested", slog.String("email", input.Email))

	company, err := srv.companyRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return errors.Wrap(domainerrors.ErrCompanyNotFound, "password reset request failed")
		}

		return errors.Wrap(err, "failed to load company for password reset")
	}

	token, expiresAt, err := srv.tokenService.GenerateResetToken(company.ID, entity.RoleCompany)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	company.ResetToken = token
	company.ResetExpiry = &expiresAt
	if err := srv.companyRepo.Update(ctx, company); err != nil {
		return errors.Wrap(err, "failed to persist reset token")
	}

	resetURL := input.ResetBaseURL + "/api/companies/reset-password/" + token
	if err := srv.mailer.SendPasswordReset(ctx, company.Email, resetURL); err != nil {
		srv.log(ctx).Error("Failed to send reset email", slog.Any("companyID", company.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrMailDeliveryFailed, "password reset request failed")
	}

	return nil
}

// ResetPassword redeems a reset token; single-use.
func (srv *companyService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Redeeming company password reset token")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		companyRepo := repoFactory.CompanyRepo()

		company, err := companyRepo.FindByResetToken(ctx, input.Token)
		if err != nil {
			if errors.Is(err, repository.ErrCompanyNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed")
			}

			return errors.Wrap(err, "failed to look up reset token")
		}

		if company.ResetExpiry == nil || company.ResetExpiry.Before(time.Now()) {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed")
		}

		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		company.PasswordHash = hashed
		company.ResetToken = ""
		company.ResetExpiry = nil

		return companyRepo.Update(ctx, company)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	return nil
}
