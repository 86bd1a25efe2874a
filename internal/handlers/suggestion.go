// internal/handlers/suggestion.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/beatbazaar/beatbazaar/internal/i18n"
	"github.com/beatbazaar/beatbazaar/internal/models"
	"github.com/beatbazaar/beatbazaar/internal/services"
	"github.com/beatbazaar/beatbazaar/internal/utils"
)

type SuggestionHandler struct {
	geminiService *services.GeminiService
}

func NewSuggestionHandler(geminiService *services.GeminiService) *SuggestionHandler {
	return &SuggestionHandler{geminiService: geminiService}
}

// SuggestRequest asks for a single AI-suggested field. The product block is
// optional seed context; the genre inside it is prompt context only and is
// not validated against the closed set.
type SuggestRequest struct {
	Type    string `json:"type" validate:"required,suggestion_type"`
	Product struct {
		Title string `json:"title"`
		Genre string `json:"genre"`
	} `json:"product"`
	Keywords string `json:"keywords"`
}

// POST /v1/suggestions
//
// Always resolves to a 200 with a usable value: credential absence and
// upstream failures degrade to the documented mock or error-indicator
// values inside the service.
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	suggestion := models.SuggestionRequest{
		Type: models.SuggestionType(req.Type),
		ProductInfo: models.ProductInfo{
			Title: req.Product.Title,
			Genre: models.Genre(req.Product.Genre),
		},
		Keywords: req.Keywords,
	}

	switch suggestion.Type {
	case models.SuggestionTypeTitle:
		result := h.geminiService.SuggestTitles(c.Request.Context(), suggestion)
		utils.SuccessResponse(c, gin.H{
			"titles": result.Titles,
			"tier":   result.Tier,
		})
	case models.SuggestionTypeDescription:
		description := h.geminiService.SuggestDescription(c.Request.Context(), suggestion)
		utils.SuccessResponse(c, gin.H{
			"description": description,
		})
	}
}
