package usecase

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterCompanyInput defines the data required to register a new company.
type RegisterCompanyInput struct {
	Email           string `json:"email" validate:"required,email"`
	CompanyName     string `json:"companyName" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Country         string `json:"country" validate:"required"`
	City            string `json:"city" validate:"required"`
	Street          string `json:"street" validate:"required"`
	Address         string `json:"address" validate:"required"`
	PhoneNumber     string `json:"phoneNumber" validate:"required"`
}

// UpdateCompanyProfileInput carries the allow-listed company profile fields.
// Nil pointers leave the corresponding field untouched.
type UpdateCompanyProfileInput struct {
	CompanyName *string `json:"companyName"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	Street      *string `json:"street"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
}

// CompanyLoginOutput returns the session token after a successful login.
type CompanyLoginOutput struct {
	Token   string          `json:"token"`
	Company *entity.Company `json:"company"`
}

// CompanyUsecase defines the identity operations available to company accounts.
type CompanyUsecase interface {
	Register(ctx context.Context, input *RegisterCompanyInput) (*entity.Company, error)
	Login(ctx context.Context, input *LoginInput) (*CompanyLoginOutput, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	ListCompanies(ctx context.Context) ([]*entity.Company, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateCompanyProfileInput) (*entity.Company, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
