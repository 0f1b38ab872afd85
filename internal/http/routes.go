package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/service"
)

// RouteGroup registers a set of related routes.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// CheckoutRoutes registers the /checkout endpoints.
type CheckoutRoutes struct {
	handler *CheckoutHandler
}

// NewCheckoutRoutes creates checkout routes backed by svc.
func NewCheckoutRoutes(svc service.CheckoutService) *CheckoutRoutes {
	return &CheckoutRoutes{handler: NewCheckoutHandler(svc)}
}

// RegisterRoutes implements RouteGroup.
func (r *CheckoutRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	checkout := rg.Group("/checkout")
	checkout.GET("", r.handler.GetCheckout)
	checkout.POST("/actions", r.handler.ApplyActions)
	checkout.POST("/summary", r.handler.Summarize)
}

// CatalogRoutes registers the /products endpoints.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes creates catalog routes backed by svc.
func NewCatalogRoutes(svc service.CatalogService) *CatalogRoutes {
	return &CatalogRoutes{handler: NewCatalogHandler(svc)}
}

// RegisterRoutes implements RouteGroup.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", r.handler.ListProducts)
	rg.PUT("/products", r.handler.ReplaceProducts)
}
