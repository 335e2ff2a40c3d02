package handlers

import (
	"context"

	"github.com/SscSPs/contabil_ledger/cmd/docs"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/SscSPs/contabil_ledger/internal/platform/config"
	"github.com/SscSPs/contabil_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the optional collaborators of the HTTP layer.
type RouteDeps struct {
	Posthog      middleware.EventSink
	LoginLimiter *limiter.Limiter
	HealthCheck  func(ctx context.Context) error
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	h := &healthHandler{check: deps.HealthCheck}
	r.GET("/health", h.health)

	public := r.Group("/api/v1")
	RegisterAuthRoutes(public, services.Auth, services.User, deps.LoginLimiter)

	setupAPIV1Routes(r, cfg, services, deps)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(utils.NewTokenSigner(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryDuration)),
		middleware.CapabilitiesMiddleware(services.Permission),
		middleware.PosthogMiddleware(deps.Posthog),
	)

	RegisterUserRoutes(v1, services.User)
	RegisterAccountRoutes(v1, services.Account, services.Journal)
	RegisterMovementTypeRoutes(v1, services.MovementType)
	RegisterPartnerRoutes(v1, services.Partner)
	RegisterTitleRoutes(v1, services.Title)
	RegisterJournalRoutes(v1, services.Journal)
	RegisterReportingRoutes(v1, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
