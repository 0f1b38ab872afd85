package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/metrics"
	"github.com/guttosm/checkout-service/internal/middleware"
	"github.com/guttosm/checkout-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit       int
	RateWindow      time.Duration
	RequestTimeout  time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
	CheckoutService service.CheckoutService
	CatalogService  service.CatalogService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultRequestTimeout,
	}
}

// Router is the configured gin engine plus the resources it owns.
type Router struct {
	*gin.Engine
	limiter *middleware.RateLimiter
}

// Close releases resources held by the router's middleware.
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Stop()
	}
}

// NewRouter builds the engine: global middleware, probes, metrics, swagger and the /api routes.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *Router {
	r := &Router{Engine: gin.New()}

	r.configureGlobalMiddleware(&cfg)
	registerInfrastructureRoutes(r.Engine, healthHandler, &cfg)

	api := r.Group("/api")
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	for _, group := range apiRouteGroups(&cfg) {
		group.RegisterRoutes(api)
	}

	return r
}

func (r *Router) configureGlobalMiddleware(cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Accept-Language", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}))

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		r.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.Use(r.limiter.RateLimit())
	}
}

func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func apiRouteGroups(cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if cfg.CatalogService != nil {
		groups = append(groups, NewCatalogRoutes(cfg.CatalogService))
	}
	if cfg.CheckoutService != nil {
		groups = append(groups, NewCheckoutRoutes(cfg.CheckoutService))
	}
	return groups
}
