package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/assureline/payroll_engine/cmd/docs"
	"github.com/assureline/payroll_engine/internal/core/domain"
	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
	"github.com/assureline/payroll_engine/internal/middleware"
	"github.com/assureline/payroll_engine/internal/platform/config"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := registerCustomValidators(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", GetHome)

	rateLimit, err := buildIngestionRateLimit(cfg)
	if err != nil {
		return err
	}

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, rateLimit)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	return nil
}

// registerCustomValidators installs the policytype binding rule used by the
// sale ingestion DTO.
func registerCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine")
	}
	return v.RegisterValidation("policytype", func(fl validator.FieldLevel) bool {
		return domain.ValidPolicyType(fl.Field().String())
	})
}

// buildIngestionRateLimit constructs the per-IP limiter for the activity
// ingestion routes from the configured rate (e.g. "300-M").
func buildIngestionRateLimit(cfg *config.Config) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.IngestionRateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid ingestion rate limit %q: %w", cfg.IngestionRateLimit, err)
	}
	instance := limiter.New(memory.NewStore(), rate)
	return middleware.RateLimit(instance), nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimit gin.HandlerFunc,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerIngestionRoutes(v1, services.Ingestion, rateLimit)
	registerPayrollRoutes(v1, services.Payroll, services.Reporting)
	registerNotificationRoutes(v1, services.Notification)
	registerDirectoryRoutes(v1, services.Directory)
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
