// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "echofleet/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the Echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
