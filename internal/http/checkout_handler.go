package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/catalog"
	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/service"
)

// CheckoutHandler serves the checkout endpoints. Carts are owned by the client
// and travel in every request; nothing is stored between calls.
type CheckoutHandler struct {
	checkout service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// GetCheckout handles GET /api/checkout.
//
// @Summary      Load a fresh cart
// @Description  Fetches the catalog and returns a cart with every quantity at zero, plus its summary.
// @Tags         Checkout
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutView} "Cart loaded"
// @Failure      502 {object} dto.ErrorResponse "Catalog fetch failed"
// @Failure      504 {object} dto.ErrorResponse "Catalog fetch timed out"
// @Router       /api/checkout [get]
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	state, err := h.checkout.Load(c.Request.Context())
	if err != nil {
		h.fetchError(builder, err)
		return
	}

	builder.SuccessOK(dto.NewCheckoutView(state))
}

// ApplyActions handles POST /api/checkout/actions.
//
// @Summary      Apply quantity actions
// @Description  Applies increment and decrement actions in order to the posted cart. Actions that would leave stock or quantity negative, or that name an unknown product, are no-ops and reported as false in "applied".
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body dto.ApplyActionsRequest true "Cart and actions"
// @Success      200 {object} dto.SuccessResponse{data=dto.ApplyActionsResponse} "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Malformed body, unknown action or inconsistent cart"
// @Failure      502 {object} dto.ErrorResponse "Catalog fetch failed"
// @Router       /api/checkout/actions [post]
func (h *CheckoutHandler) ApplyActions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, bindErr, validateErr := BindAndValidate[dto.ApplyActionsRequest](c)
	switch {
	case bindErr != nil:
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, bindErr)
		return
	case validateErr != nil:
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidAction, validationDetails(validateErr), validateErr)
		return
	}

	state := *req.State
	applied, err := h.checkout.Apply(c.Request.Context(), &state, req.Actions)
	if err != nil {
		h.stateError(builder, err)
		return
	}

	view := dto.NewCheckoutView(state)
	builder.SuccessOK(dto.ApplyActionsResponse{
		State:   view.State,
		Summary: view.Summary,
		Applied: applied,
	})
}

// Summarize handles POST /api/checkout/summary.
//
// @Summary      Summarize a cart
// @Description  Returns subtotal, discount, total and item count of the posted cart. The 10% discount applies from a subtotal of 1000.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body dto.SummaryRequest true "Cart"
// @Success      200 {object} dto.SuccessResponse{data=dto.SummaryResponse} "Summary"
// @Failure      400 {object} dto.ErrorResponse "Malformed body or inconsistent cart"
// @Failure      502 {object} dto.ErrorResponse "Catalog fetch failed"
// @Router       /api/checkout/summary [post]
func (h *CheckoutHandler) Summarize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.SummaryRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	summary, err := h.checkout.Summarize(c.Request.Context(), *req.State)
	if err != nil {
		h.stateError(builder, err)
		return
	}
	builder.SuccessOK(dto.SummaryResponse{Summary: summary})
}

func (h *CheckoutHandler) fetchError(builder *ResponseBuilder, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
		return
	}
	builder.ErrorWithMessage(http.StatusBadGateway, catalog.ErrorMessage(err), err)
}

func (h *CheckoutHandler) stateError(builder *ResponseBuilder, err error) {
	var fe *catalog.FetchError
	switch {
	case errors.Is(err, service.ErrInvalidCartState):
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidCartState,
			map[string]string{"state": err.Error()}, err)
	case errors.As(err, &fe):
		h.fetchError(builder, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func validationDetails(err error) map[string]string {
	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		return map[string]string{ve.Field: ve.Message}
	}
	return nil
}
