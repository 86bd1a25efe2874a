// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type genreHolder struct {
	Genre string `validate:"required,genre"`
}

type suggestionHolder struct {
	Type string `validate:"required,suggestion_type"`
}

func TestGenreValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&genreHolder{Genre: "EDM"}))
	assert.NoError(t, ValidateStruct(&genreHolder{Genre: "Lo-Fi"}))
	assert.Error(t, ValidateStruct(&genreHolder{Genre: "Dubstep"}))
	assert.Error(t, ValidateStruct(&genreHolder{Genre: "edm"}), "matching is exact, not case-insensitive")
}

func TestSuggestionTypeValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&suggestionHolder{Type: "title"}))
	assert.NoError(t, ValidateStruct(&suggestionHolder{Type: "description"}))
	assert.Error(t, ValidateStruct(&suggestionHolder{Type: "genre"}))
}

func TestGetValidationErrors(t *testing.T) {
	errs := GetValidationErrors(ValidateStruct(&genreHolder{Genre: "Dubstep"}))
	assert.Len(t, errs, 1)
	assert.Equal(t, "genre", errs[0].Field)
	assert.Equal(t, "genre", errs[0].Tag)
	assert.NotEmpty(t, errs[0].Message)
}
