// Package dto defines the request and response bodies of the HTTP API.
package dto

import (
	"fmt"

	"github.com/guttosm/checkout-service/internal/domain/model"
)

// MaxActionsPerRequest bounds the number of actions applied in one request.
const MaxActionsPerRequest = 1000

// ApplyActionsRequest carries a client-owned cart state and the actions to apply to it.
//
// @Description Cart state plus quantity actions to apply in order
type ApplyActionsRequest struct {
	// State is the cart as last returned by the service
	State *model.CartState `json:"state" binding:"required"`
	// Actions are applied in order
	Actions []model.Action `json:"actions" binding:"dive"`
} // @name ApplyActionsRequest

// SummaryRequest asks for the order summary of a cart state.
//
// @Description Cart state to summarize
type SummaryRequest struct {
	State *model.CartState `json:"state" binding:"required"`
} // @name SummaryRequest

// ReplaceCatalogRequest replaces the stored catalog.
//
// @Description Full product catalog
type ReplaceCatalogRequest struct {
	Products []model.Product `json:"products" binding:"required"`
} // @name ReplaceCatalogRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrTooManyActions is returned when a request exceeds MaxActionsPerRequest.
var ErrTooManyActions = &ValidationError{
	Field:   "actions",
	Message: fmt.Sprintf("at most %d actions per request", MaxActionsPerRequest),
}

// Validate checks limits that binding tags cannot express.
func (r *ApplyActionsRequest) Validate() error {
	if len(r.Actions) > MaxActionsPerRequest {
		return ErrTooManyActions
	}
	for i, a := range r.Actions {
		if !a.Type.Valid() {
			return &ValidationError{
				Field:   fmt.Sprintf("actions[%d].type", i),
				Message: "must be increment or decrement",
			}
		}
	}
	return nil
}
