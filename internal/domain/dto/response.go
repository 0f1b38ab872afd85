package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeBadGateway indicates the catalog source failed.
	ErrCodeBadGateway = "bad_gateway"
	// ErrCodeUnavailable indicates a dependency is not available.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"bad_gateway"`
	Message string `json:"message,omitempty" example:"catalog source unavailable"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// CheckoutView is a cart state together with its summary.
// @Description Cart state and order summary
type CheckoutView struct {
	State   model.CartState `json:"state"`
	Summary model.Summary   `json:"summary"`
} // @name CheckoutView

// ApplyActionsResponse is the cart after applying actions.
// Applied[i] reports whether Actions[i] changed the cart.
// @Description Cart state after applying actions
type ApplyActionsResponse struct {
	State   model.CartState `json:"state"`
	Summary model.Summary   `json:"summary"`
	Applied []bool          `json:"applied" example:"true,false"`
} // @name ApplyActionsResponse

// SummaryResponse holds an order summary.
// @Description Order summary
type SummaryResponse struct {
	Summary model.Summary `json:"summary"`
} // @name SummaryResponse

// NewCheckoutView builds a CheckoutView for state.
func NewCheckoutView(state model.CartState) CheckoutView {
	return CheckoutView{State: state, Summary: model.Summarize(state)}
}

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches field-level details.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway:
		return ErrCodeBadGateway
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}
