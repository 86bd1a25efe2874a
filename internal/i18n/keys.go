// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyFormRequiredFields = "form.required_fields"

	// Products
	KeyProductCreated   = "product.created"
	KeyProductGenerated = "product.generated"
	KeyProductNotFound  = "product.not_found"

	// Catalog
	KeyCatalogReloading = "catalog.reloading"
	KeyCatalogLoading   = "catalog.loading"
)
