package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyTimeout            = "error.timeout"

	// ErrKeyInvalidCartState is used when a posted cart breaks its invariants.
	ErrKeyInvalidCartState = "error.invalid_cart_state"
	// ErrKeyInvalidAction is used for unknown action types or too many actions.
	ErrKeyInvalidAction = "error.invalid_action"
	// ErrKeyInvalidCatalog is used when a catalog replacement fails validation.
	ErrKeyInvalidCatalog = "error.invalid_catalog"
	// ErrKeyCatalogUnavailable prefixes catalog fetch failures.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyCatalogReadOnly is used when the catalog source cannot be written.
	ErrKeyCatalogReadOnly = "error.catalog_read_only"
)
