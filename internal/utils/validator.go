// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/beatbazaar/beatbazaar/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("genre", validateGenre)
	validate.RegisterValidation("suggestion_type", validateSuggestionType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateGenre accepts only members of the closed genre set. AI output is
// normalized with a fallback instead; this tag is for user-supplied values,
// which are rejected rather than silently rewritten.
func validateGenre(fl validator.FieldLevel) bool {
	return models.Genre(fl.Field().String()).Valid()
}

func validateSuggestionType(fl validator.FieldLevel) bool {
	switch models.SuggestionType(fl.Field().String()) {
	case models.SuggestionTypeTitle, models.SuggestionTypeDescription:
		return true
	}
	return false
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "genre":
		return e.Field() + " must be one of the supported genres"
	case "suggestion_type":
		return e.Field() + " must be \"title\" or \"description\""
	default:
		return e.Field() + " is invalid"
	}
}
