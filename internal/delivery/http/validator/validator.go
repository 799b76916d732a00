// Package validator adapts go-playground/validator to echo's Validator
// interface and registers the request validation rules.
package validator

import (
	"unicode"

	domainerrors "blog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a RequestValidator with the custom rules registered.
func New() (*RequestValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("password_strength", validatePasswordStrength); err != nil {
		return nil, errors.Wrap(err, "failed to register password_strength rule")
	}

	return &RequestValidator{validate: validate}, nil
}

// Validate checks the bound request struct against its tags. Failures map to
// the 400 validation error so handlers can return them directly.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return errors.Wrap(err, "invalid value passed to validator")
		}

		return domainerrors.ErrValidationFailed.WithDetails(validationMessage(err))
	}

	return nil
}

// validatePasswordStrength enforces the password policy: at least 8
// characters with an uppercase letter, a lowercase letter, and a digit.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}

// validationMessage turns the first failed rule into a human-readable
// message for the error body.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request payload"
	}

	fieldErr := fieldErrs[0]
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters"
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters"
	case "password_strength":
		return "Password must be at least 8 characters and contain an uppercase letter, a lowercase letter, and a digit"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
