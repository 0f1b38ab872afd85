// Package app provides router configuration.
package app

import (
	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/http"
)

// InitializeRouter builds the router configuration from cfg and the services.
func InitializeRouter(cfg config.Config, services *ServiceComponents) http.RouterConfig {
	routerCfg := http.DefaultRouterConfig()
	routerCfg.RateLimit = cfg.Server.RateLimit
	if cfg.Server.RateWindow > 0 {
		routerCfg.RateWindow = cfg.Server.RateWindow
	}
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	}
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass

	if services != nil {
		routerCfg.CheckoutService = services.Checkout
		routerCfg.CatalogService = services.Catalog
	}
	return routerCfg
}
