package dto

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/board-service/pkg/util"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct tag validation and converts failures into the
// VALIDATION_FAILED error kind with per-field details.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return apperrors.NewValidationError("validation failed", details)
}
