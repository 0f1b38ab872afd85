package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/catalog"
	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/repository"
	"github.com/guttosm/checkout-service/internal/service"
)

// CatalogHandler serves the product catalog in the same shape HTTPFetcher reads,
// so one instance can be the catalog source of another.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /api/products.
//
// @Summary      List products
// @Description  Returns the product catalog without the response envelope.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} catalog.Response "Catalog"
// @Failure      502 {object} dto.ErrorResponse "Catalog source failed"
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		builder := NewResponseBuilder(c)
		if errors.Is(err, context.DeadlineExceeded) {
			builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
			return
		}
		builder.ErrorWithMessage(http.StatusBadGateway, catalog.ErrorMessage(err), err)
		return
	}
	c.JSON(http.StatusOK, catalog.Response{Products: products})
}

// ReplaceProducts handles PUT /api/products.
//
// @Summary      Replace the catalog
// @Description  Replaces the stored catalog. Only available when the catalog is read from MongoDB.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        request body dto.ReplaceCatalogRequest true "Catalog"
// @Success      200 {object} catalog.Response "Stored catalog"
// @Failure      400 {object} dto.ErrorResponse "Invalid catalog"
// @Failure      404 {object} dto.ErrorResponse "Catalog is read-only"
// @Failure      503 {object} dto.ErrorResponse "Store unavailable"
// @Router       /api/products [put]
func (h *CatalogHandler) ReplaceProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if !h.catalog.Writable() {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCatalogReadOnly, nil)
		return
	}

	req, err := BindJSON[dto.ReplaceCatalogRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.catalog.Replace(c.Request.Context(), req.Products); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCatalog):
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidCatalog,
				map[string]string{"products": err.Error()}, err)
		case errors.Is(err, repository.ErrNotConfigured):
			builder.Error(http.StatusNotFound, i18n.ErrKeyCatalogReadOnly, err)
		default:
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		}
		return
	}

	c.JSON(http.StatusOK, catalog.Response{Products: req.Products})
}
