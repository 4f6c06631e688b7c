// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "doorman/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates a validator for Echo's Validator hook.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the struct tags on a bound request payload. Failures carry
// the typed validation error so the HTTP error handler can map them to a 400
// envelope when a handler propagates them instead of redirecting.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
