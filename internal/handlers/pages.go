// internal/handlers/pages.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/beatbazaar/beatbazaar/internal/i18n"
	"github.com/beatbazaar/beatbazaar/internal/models"
	"github.com/beatbazaar/beatbazaar/internal/services"
	"github.com/beatbazaar/beatbazaar/internal/utils"
)

// defaultProducerName pre-fills the form's producer field and is what the
// field reverts to after a successful submission.
const defaultProducerName = "Your Producer Name"

// PageHandler serves the two navigable views: the browse grid and the
// add-product form. Everything else redirects to browse.
type PageHandler struct {
	catalogService *services.CatalogService
}

func NewPageHandler(catalogService *services.CatalogService) *PageHandler {
	return &PageHandler{catalogService: catalogService}
}

// addProductForm echoes raw form input back into the template so a rejected
// submission keeps what the user typed.
type addProductForm struct {
	Title           string
	Producer        string
	Description     string
	Price           string
	Genre           string
	Tags            string
	CoverImageURL   string
	AudioFileURL    string
	BPM             string
	Key             string
	DurationMinutes string
}

func defaultForm() addProductForm {
	return addProductForm{
		Producer: defaultProducerName,
		Genre:    string(models.GenreHipHop),
	}
}

// GET /
func (h *PageHandler) Browse(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	c.HTML(http.StatusOK, "browse.html", gin.H{
		"Products":       h.catalogService.List(),
		"Loading":        h.catalogService.Loading(),
		"LoadingMessage": i18n.T(lang, i18n.KeyCatalogLoading),
	})
}

// GET /add-product
func (h *PageHandler) AddProductPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_product.html", gin.H{
		"Genres": models.AllGenres(),
		"Form":   defaultForm(),
	})
}

// POST /add-product
//
// Same validation as the JSON API. A rejected submission re-renders the
// form with the entered values and the field errors: no navigation, no
// state change. A successful one redirects to browse, where the new beat
// is the first card; the next visit to the form gets the reset defaults.
func (h *PageHandler) SubmitProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	form := addProductForm{
		Title:           c.PostForm("title"),
		Producer:        c.PostForm("producer"),
		Description:     c.PostForm("description"),
		Price:           c.PostForm("price"),
		Genre:           c.PostForm("genre"),
		Tags:            c.PostForm("tags"),
		CoverImageURL:   c.PostForm("cover_image_url"),
		AudioFileURL:    c.PostForm("audio_file_url"),
		BPM:             c.PostForm("bpm"),
		Key:             c.PostForm("key"),
		DurationMinutes: c.PostForm("duration_minutes"),
	}

	req := CreateProductRequest{
		Title:         form.Title,
		Producer:      form.Producer,
		Description:   form.Description,
		Genre:         form.Genre,
		Tags:          form.Tags,
		CoverImageURL: form.CoverImageURL,
		AudioFileURL:  form.AudioFileURL,
	}

	if form.Price != "" {
		if price, err := strconv.ParseFloat(form.Price, 64); err == nil {
			req.Price = price
		}
	}
	if form.BPM != "" {
		if bpm, err := strconv.Atoi(form.BPM); err == nil {
			req.BPM = &bpm
		}
	}
	if form.Key != "" {
		key := form.Key
		req.Key = &key
	}
	if form.DurationMinutes != "" {
		if duration, err := strconv.ParseFloat(form.DurationMinutes, 64); err == nil {
			req.DurationMinutes = &duration
		}
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		c.HTML(http.StatusOK, "add_product.html", gin.H{
			"Genres":       models.AllGenres(),
			"Form":         form,
			"ErrorMessage": i18n.T(lang, i18n.KeyFormRequiredFields),
			"Errors":       validationErrors,
		})
		return
	}

	h.catalogService.Add(req.ToProduct())

	c.Redirect(http.StatusSeeOther, "/")
}
