package handlers

import (
	"github.com/SscSPs/storefront_pricing/cmd/docs"
	portssvc "github.com/SscSPs/storefront_pricing/internal/core/ports/services"
	"github.com/SscSPs/storefront_pricing/internal/middleware"
	"github.com/SscSPs/storefront_pricing/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := registerValidators(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Every v1 request carries a preference namespace.
	v1 := r.Group("/api/v1", middleware.ClientIdentity(middleware.ClientIdentityConfig{
		JWTSecret:    cfg.JWTSecret,
		CookieName:   cfg.ClientCookieName,
		CookieMaxAge: cfg.ClientCookieMaxAge,
		SecureCookie: cfg.IsProduction,
	}))

	registerCurrencyRoutes(v1, service.Pricing)
	registerPriceRoutes(v1, service.Pricing)
	registerPreferenceRoutes(v1, service.Pricing)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
