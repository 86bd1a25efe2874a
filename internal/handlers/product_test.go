// internal/handlers/product_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/beatbazaar/beatbazaar/internal/config"
	"github.com/beatbazaar/beatbazaar/internal/handlers"
	"github.com/beatbazaar/beatbazaar/internal/i18n"
	"github.com/beatbazaar/beatbazaar/internal/services"
	"github.com/beatbazaar/beatbazaar/web"
)

type StorefrontTestSuite struct {
	suite.Suite
	router  *gin.Engine
	catalog *services.CatalogService
}

func (suite *StorefrontTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize())
}

func (suite *StorefrontTestSuite) SetupTest() {
	suite.catalog = services.NewCatalogService(config.CatalogConfig{
		InitialCount: 3,
		SeedDelayMs:  0,
	})
	// No credential: AI paths resolve to documented mock values.
	gemini := services.NewGeminiService(config.GeminiConfig{Model: "gemini-test", MockDelayMs: 0})

	productHandler := handlers.NewProductHandler(suite.catalog, gemini)
	suggestionHandler := handlers.NewSuggestionHandler(gemini)
	pageHandler := handlers.NewPageHandler(suite.catalog)

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	v1 := r.Group("/v1")
	{
		v1.GET("/products", productHandler.GetProducts)
		v1.POST("/products", productHandler.CreateProduct)
		v1.POST("/products/generate", productHandler.GenerateProduct)
		v1.POST("/suggestions", suggestionHandler.Suggest)
		v1.POST("/catalog/reload", productHandler.ReloadCatalog)
	}

	r.GET("/", pageHandler.Browse)
	r.GET("/add-product", pageHandler.AddProductPage)
	r.POST("/add-product", pageHandler.SubmitProduct)
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	suite.router = r
}

func (suite *StorefrontTestSuite) TearDownTest() {
	suite.catalog.Close()
}

func (suite *StorefrontTestSuite) postJSON(path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(suite.T(), err)

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *StorefrontTestSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *StorefrontTestSuite) TestCreateProduct() {
	w := suite.postJSON("/v1/products", map[string]interface{}{
		"title":    "Midnight Groove",
		"producer": "DJ Test",
		"price":    24.99,
		"genre":    "Trap",
		"tags":     "chill, lofi,, study",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	response := decodeEnvelope(suite.T(), w)
	assert.True(suite.T(), response["success"].(bool))

	products := suite.catalog.List()
	require.Len(suite.T(), products, 1)
	first := products[0]
	assert.Equal(suite.T(), "Midnight Groove", first.Title)
	assert.Equal(suite.T(), []string{"chill", "lofi", "study"}, first.Tags)
	assert.Contains(suite.T(), first.CoverImageURL, "Midnight-Groove", "blank cover defaults to a slug-seeded placeholder")
	assert.Nil(suite.T(), first.BPM, "blank optional fields stay unset")
}

func (suite *StorefrontTestSuite) TestCreateProductMissingTitle() {
	w := suite.postJSON("/v1/products", map[string]interface{}{
		"producer": "DJ Test",
		"price":    24.99,
		"genre":    "Trap",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	response := decodeEnvelope(suite.T(), w)
	assert.False(suite.T(), response["success"].(bool))
	assert.Equal(suite.T(), 0, suite.catalog.Len(), "rejected submission must not change the catalog")
}

func (suite *StorefrontTestSuite) TestCreateProductRejectsUnknownGenre() {
	w := suite.postJSON("/v1/products", map[string]interface{}{
		"title":    "Bass Cavern",
		"producer": "DJ Test",
		"price":    9.99,
		"genre":    "Dubstep",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), 0, suite.catalog.Len())
}

func (suite *StorefrontTestSuite) TestCreateProductPrepends() {
	suite.postJSON("/v1/products", map[string]interface{}{
		"title": "First", "producer": "P", "price": 10.0, "genre": "Pop",
	})
	suite.postJSON("/v1/products", map[string]interface{}{
		"title": "Second", "producer": "P", "price": 10.0, "genre": "Pop",
	})

	products := suite.catalog.List()
	require.Len(suite.T(), products, 2)
	assert.Equal(suite.T(), "Second", products[0].Title)
	assert.Equal(suite.T(), "First", products[1].Title)
}

func (suite *StorefrontTestSuite) TestGenerateProduct() {
	w := suite.postJSON("/v1/products/generate", map[string]interface{}{
		"keywords": "a chill beat",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	products := suite.catalog.List()
	require.Len(suite.T(), products, 1)
	first := products[0]
	assert.Equal(suite.T(), "AI Generated Dreamscape", first.Title, "no credential resolves to the mock draft")
	assert.True(suite.T(), strings.HasPrefix(first.ID, "ai-"))
	require.NotNil(suite.T(), first.BPM)
	assert.GreaterOrEqual(suite.T(), *first.BPM, 100)
	assert.Less(suite.T(), *first.BPM, 160)
	require.NotNil(suite.T(), first.Key)
}

func (suite *StorefrontTestSuite) TestGetProducts() {
	suite.postJSON("/v1/products", map[string]interface{}{
		"title": "Only", "producer": "P", "price": 12.5, "genre": "Ambient",
	})

	req, _ := http.NewRequest(http.MethodGet, "/v1/products", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := decodeEnvelope(suite.T(), w)
	data := response["data"].(map[string]interface{})
	assert.Len(suite.T(), data["products"], 1)
	meta := response["meta"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), meta["count"])
	assert.Equal(suite.T(), false, meta["loading"])
}

func (suite *StorefrontTestSuite) TestSuggestTitlesWithoutCredential() {
	w := suite.postJSON("/v1/suggestions", map[string]interface{}{
		"type":     "title",
		"keywords": "dark trap",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := decodeEnvelope(suite.T(), w)
	data := response["data"].(map[string]interface{})
	titles := data["titles"].([]interface{})
	assert.Equal(suite.T(), []interface{}{"Mock Title 1", "Mock Title 2", "Creative Beat Name"}, titles)
}

func (suite *StorefrontTestSuite) TestSuggestDescriptionWithoutCredential() {
	w := suite.postJSON("/v1/suggestions", map[string]interface{}{
		"type":    "description",
		"product": map[string]interface{}{"title": "Night Drive"},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := decodeEnvelope(suite.T(), w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "This is a mock description for Night Drive. It's truly fantastic!", data["description"])
}

func (suite *StorefrontTestSuite) TestSuggestRejectsUnknownType() {
	w := suite.postJSON("/v1/suggestions", map[string]interface{}{
		"type": "genre",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *StorefrontTestSuite) TestBrowsePage() {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Browse Beats")
}

func (suite *StorefrontTestSuite) TestUnknownPathRedirectsToBrowse() {
	req, _ := http.NewRequest(http.MethodGet, "/no-such-page", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/", w.Header().Get("Location"))
}

func (suite *StorefrontTestSuite) TestFormSubmitMissingTitleStaysOnForm() {
	w := suite.postForm("/add-product", url.Values{
		"producer": {"DJ Test"},
		"price":    {"19.99"},
		"genre":    {"Trap"},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code, "a rejected submission re-renders, it does not redirect")
	assert.Contains(suite.T(), w.Body.String(), "Add New Beat")
	assert.Contains(suite.T(), w.Body.String(), "DJ Test", "entered values are kept")
	assert.Equal(suite.T(), 0, suite.catalog.Len())
}

func (suite *StorefrontTestSuite) TestFormSubmitValidRedirectsToBrowse() {
	w := suite.postForm("/add-product", url.Values{
		"title":    {"Form Beat"},
		"producer": {"DJ Test"},
		"price":    {"19.99"},
		"genre":    {"Lo-Fi"},
		"tags":     {"chill, study"},
	})

	assert.Equal(suite.T(), http.StatusSeeOther, w.Code)
	assert.Equal(suite.T(), "/", w.Header().Get("Location"))

	products := suite.catalog.List()
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "Form Beat", products[0].Title)
	assert.Equal(suite.T(), []string{"chill", "study"}, products[0].Tags)
}

func (suite *StorefrontTestSuite) TestReloadCatalog() {
	w := suite.postJSON("/v1/catalog/reload", map[string]interface{}{})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	assert.Eventually(suite.T(), func() bool {
		return suite.catalog.Len() == 3 && !suite.catalog.Loading()
	}, 2*time.Second, 10*time.Millisecond, "reload seeds the configured batch size")
}

func TestStorefrontSuite(t *testing.T) {
	suite.Run(t, new(StorefrontTestSuite))
}
