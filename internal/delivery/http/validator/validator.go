// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "gamestore/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator installed on the echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures to the validation error code.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
