// internal/handlers/product.go
package handlers

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beatbazaar/beatbazaar/internal/i18n"
	"github.com/beatbazaar/beatbazaar/internal/models"
	"github.com/beatbazaar/beatbazaar/internal/services"
	"github.com/beatbazaar/beatbazaar/internal/utils"
)

var aiKeySignatures = []string{"Am", "Cmaj", "Gm"}

type ProductHandler struct {
	catalogService *services.CatalogService
	geminiService  *services.GeminiService
}

func NewProductHandler(catalogService *services.CatalogService, geminiService *services.GeminiService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		geminiService:  geminiService,
	}
}

// CreateProductRequest is the add-product payload. Tags arrive as one
// comma-separated string, matching the form field. Optional numeric fields
// are pointers so that "left blank" stays distinguishable from zero.
type CreateProductRequest struct {
	Title           string   `json:"title" validate:"required"`
	Producer        string   `json:"producer" validate:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Genre           string   `json:"genre" validate:"required,genre"`
	Tags            string   `json:"tags"`
	CoverImageURL   string   `json:"cover_image_url"`
	AudioFileURL    string   `json:"audio_file_url"`
	BPM             *int     `json:"bpm" validate:"omitempty,gt=0"`
	Key             *string  `json:"key"`
	DurationMinutes *float64 `json:"duration_minutes" validate:"omitempty,gt=0"`
}

// ToProduct builds the immutable catalog record, filling defaults for blank
// optional fields: a deterministic placeholder cover keyed by the slugified
// title, and an empty (not nil) tag list.
func (r *CreateProductRequest) ToProduct() models.Product {
	cover := r.CoverImageURL
	if cover == "" {
		cover = utils.PlaceholderCoverURL(utils.SlugifyTitle(r.Title))
	}

	return models.Product{
		ID:              strconv.FormatInt(time.Now().UnixMilli(), 10),
		Title:           r.Title,
		Producer:        r.Producer,
		Description:     r.Description,
		Price:           utils.RoundPrice(r.Price),
		Genre:           models.Genre(r.Genre),
		Tags:            utils.SplitTags(r.Tags),
		CoverImageURL:   cover,
		AudioFileURL:    r.AudioFileURL,
		BPM:             r.BPM,
		Key:             r.Key,
		DurationMinutes: r.DurationMinutes,
	}
}

// GET /v1/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products := h.catalogService.List()

	utils.SuccessResponseWithMeta(c, gin.H{
		"products": products,
	}, gin.H{
		"count":   len(products),
		"loading": h.catalogService.Loading(),
	})
}

// POST /v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product := req.ToProduct()
	h.catalogService.Add(product)

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated, product.Title),
		"product": product,
	})
}

// GenerateProductRequest seeds one-click synthesis. Keywords are optional;
// a random phrase from the keyword pool stands in when absent.
type GenerateProductRequest struct {
	Keywords string `json:"keywords"`
}

// POST /v1/products/generate
func (h *ProductHandler) GenerateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req GenerateProductRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
			return
		}
	}

	keywords := req.Keywords
	if keywords == "" {
		keywords = services.RandomBeatKeywords()
	}

	draft := h.geminiService.GenerateProduct(c.Request.Context(), keywords)

	bpm := 100 + rand.Intn(60)
	key := aiKeySignatures[rand.Intn(len(aiKeySignatures))]

	product := models.Product{
		ID:            "ai-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Title:         draft.Title,
		Producer:      draft.Producer,
		Description:   draft.Description,
		Price:         draft.Price,
		Genre:         draft.Genre,
		Tags:          draft.Tags,
		CoverImageURL: draft.CoverImageURL,
		AudioFileURL:  draft.AudioFileURL,
		BPM:           &bpm,
		Key:           &key,
	}

	h.catalogService.Add(product)

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductGenerated, product.Title),
		"product": product,
	})
}

// POST /v1/catalog/reload
//
// Re-runs initial seeding fire-and-forget; readers observe the loading flag
// until the fresh batch replaces the collection.
func (h *ProductHandler) ReloadCatalog(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	go h.catalogService.LoadInitial(context.Background())

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCatalogReloading),
		"loading": true,
	})
}
