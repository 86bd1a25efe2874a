// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beatbazaar/beatbazaar/internal/config"
	"github.com/beatbazaar/beatbazaar/internal/handlers"
	"github.com/beatbazaar/beatbazaar/internal/middleware"
	"github.com/beatbazaar/beatbazaar/internal/services"
	"github.com/beatbazaar/beatbazaar/web"
)

func Initialize(cfg *config.Config, catalogService *services.CatalogService, geminiService *services.GeminiService) *gin.Engine {
	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService, geminiService)
	suggestionHandler := handlers.NewSuggestionHandler(geminiService)
	pageHandler := handlers.NewPageHandler(catalogService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	r.SetHTMLTemplate(web.Templates())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.POST("/generate", middleware.AIRateLimit(), productHandler.GenerateProduct)
		}

		// AI suggestion routes
		v1.POST("/suggestions", middleware.AIRateLimit(), suggestionHandler.Suggest)

		// Demo reset
		v1.POST("/catalog/reload", productHandler.ReloadCatalog)
	}

	// Storefront views
	r.GET("/", pageHandler.Browse)
	r.GET("/add-product", pageHandler.AddProductPage)
	r.POST("/add-product", pageHandler.SubmitProduct)

	// Unknown paths land on the browse view
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	return r
}
