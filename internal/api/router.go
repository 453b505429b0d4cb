package api

import (
	"github.com/ayo6706/remittance-engine/internal/api/handler"
	"github.com/ayo6706/remittance-engine/internal/api/middleware"
	"github.com/ayo6706/remittance-engine/internal/api/spec"
	"github.com/ayo6706/remittance-engine/internal/config"
	"github.com/ayo6706/remittance-engine/internal/registry"
	"github.com/ayo6706/remittance-engine/internal/service"
	"github.com/ayo6706/remittance-engine/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	cfg        *config.Config
	logger     *zap.Logger
	registry   *registry.Registry
	quotes     *service.QuoteService
	rates      *service.RegistryRateService
	recipients *service.RecipientDirectory
	sessions   *session.Store
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	reg *registry.Registry,
	quotes *service.QuoteService,
	rates *service.RegistryRateService,
	recipients *service.RecipientDirectory,
	sessions *session.Store,
) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	middleware.SetJWTSecret(cfg.JWTSecret)
	middleware.SetJWTValidation(cfg.JWTIssuer, cfg.JWTAudience)
	return &Router{
		cfg:        cfg,
		logger:     logger,
		registry:   reg,
		quotes:     quotes,
		rates:      rates,
		recipients: recipients,
		sessions:   sessions,
	}
}

func (api *Router) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.RecoverMiddleware(api.logger))
	r.Use(middleware.LoggingMiddleware(api.logger))
	r.Use(middleware.MetricsMiddleware)

	// Handlers
	healthHandler := handler.NewHealthHandler(api.registry)
	authHandler := handler.NewAuthHandler(api.cfg.JWTTTL)
	corridorHandler := handler.NewCorridorHandler(api.registry, api.rates)
	quoteHandler := handler.NewQuoteHandler(api.quotes, api.cfg.SourceCurrency, api.cfg.FeePolicy)
	validationHandler := handler.NewValidationHandler()
	recipientHandler := handler.NewRecipientHandler(api.recipients)
	transferHandler := handler.NewTransferHandler(api.sessions, api.registry, api.cfg.SourceCurrency)

	// Operational
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", spec.OpenAPIHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/openapi.yaml")))

	// Public Routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.PublicRateLimiter(api.cfg.PublicRateLimitRPS))

		r.Post("/v1/auth/login", authHandler.Login)
		r.Get("/v1/corridors", corridorHandler.List)
		r.Get("/v1/corridors/{code}", corridorHandler.Get)
		r.Get("/v1/rates", corridorHandler.Rates)
		r.Post("/v1/quotes", quoteHandler.Create)
		r.Post("/v1/validate/{form}", validationHandler.Validate)
	})

	// Protected Routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)
		r.Use(middleware.AuthRateLimiter(api.cfg.AuthRateLimitRPS))

		r.Get("/v1/recipients", recipientHandler.Search)

		r.Post("/v1/transfers", transferHandler.Start)
		r.Route("/v1/transfers/{id}", func(r chi.Router) {
			r.Get("/", transferHandler.Get)
			r.Delete("/", transferHandler.Cancel)
			r.Put("/amount", transferHandler.SetAmount)
			r.Put("/target", transferHandler.SetTarget)
			r.Put("/recipient", transferHandler.SetRecipient)
			r.Post("/advance", transferHandler.Advance)
			r.Post("/back", transferHandler.Back)
			r.Post("/submit", transferHandler.Submit)
		})
	})

	return r
}
