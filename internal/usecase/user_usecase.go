// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3,max=30"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	PhoneNumber     string `json:"phoneNumber"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput carries the allow-listed profile fields a user may
// change. Nil pointers leave the corresponding field untouched.
type UpdateProfileInput struct {
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        *string `json:"password" validate:"omitempty,min=8"`
	ConfirmPassword *string `json:"confirmPassword"`
	CardName        *string `json:"cardName"`
	CardNumber      *string `json:"cardNumber"`
	CardExpiration  *string `json:"cardExpiration"`
	CardCVV         *string `json:"cardCVV"`
}

// ForgotPasswordInput identifies the account requesting a reset link.
// ResetBaseURL is supplied by the delivery layer from the request host.
type ForgotPasswordInput struct {
	Email        string `json:"email" validate:"required,email"`
	ResetBaseURL string `json:"-"`
}

// ResetPasswordInput redeems a reset token for a new password.
type ResetPasswordInput struct {
	Token    string `json:"-"`
	Password string `json:"password" validate:"required,min=8"`
}

// --- Output DTOs ---

// UserLoginOutput returns the session token after a successful login.
type UserLoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UserUsecase defines the identity operations available to user accounts.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*UserLoginOutput, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
