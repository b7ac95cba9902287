// Package validator adapts struct-tag validation to echo's Validator interface.
package validator

import (
	"strings"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator that reads `validate` struct tags.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks a bound request struct and maps failures onto the
// application's invalid-input error so the error handler can render them.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, strings.ToLower(fieldErr.Field()))
		}

		return domainerrors.ErrInvalidInput.WithDetails("invalid fields: " + strings.Join(fields, ", "))
	}

	return domainerrors.ErrInvalidInput.WithDetails(err.Error())
}
