package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gulfrate/gulfrate/internal/config"
	"github.com/gulfrate/gulfrate/internal/database"
	"github.com/gulfrate/gulfrate/internal/events"
	"github.com/gulfrate/gulfrate/internal/handler"
	"github.com/gulfrate/gulfrate/internal/mailer"
	"github.com/gulfrate/gulfrate/internal/middleware"
	"github.com/gulfrate/gulfrate/internal/model"
	"github.com/gulfrate/gulfrate/internal/repository"
	"github.com/gulfrate/gulfrate/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool, cfg.SeedAdminPassword); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cleanup := setupAPIRoutes(router, pool, cfg)
	defer cleanup()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool, cfg *config.Config) func() {
	countryRepo := repository.NewCountryRepository(pool)
	providerRepo := repository.NewProviderRepository(pool)
	rateRepo := repository.NewRateRepository(pool)
	leadRepo := repository.NewLeadRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	var m service.Mailer = mailer.Disabled{}
	if cfg.EmailEnabled {
		ses, err := mailer.NewSES(context.Background(), cfg.AWSRegion, cfg.EmailFrom)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize mailer")
		}
		m = ses
	}

	var publisher service.EventPublisher
	cleanup := func() {}
	if len(cfg.KafkaBrokers) > 0 {
		p := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		publisher = p
		cleanup = func() {
			if err := p.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close kafka publisher")
			}
		}
	}

	ratesService := service.NewRatesService(countryRepo, providerRepo, rateRepo)
	leadService := service.NewLeadService(leadRepo, m, publisher)
	authService := service.NewAuthService(adminRepo)
	adminService := service.NewAdminService(rateRepo, providerRepo)

	sessions := middleware.NewSessions(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)

	ratesHandler := handler.NewRatesHandler(ratesService)
	leadHandler := handler.NewLeadHandler(leadService)
	authHandler := handler.NewAdminAuthHandler(authService, sessions)
	adminRatesHandler := handler.NewAdminRatesHandler(adminService)
	adminProvidersHandler := handler.NewAdminProvidersHandler(adminService)

	api := router.Group("/api")
	{
		api.GET("/countries", ratesHandler.Countries)
		api.GET("/countries/:code/providers", ratesHandler.ProvidersByCountry)
		api.GET("/countries/:code/currencies", ratesHandler.Currencies)
		api.GET("/exchange-rates/:countryCode/:currency", ratesHandler.Snapshot)
		api.POST("/leads", leadHandler.Create)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/login", authHandler.Login)
		admin.POST("/logout", authHandler.Logout)
	}

	authed := admin.Group("", sessions.Authenticate())
	{
		authed.GET("/check-auth", authHandler.CheckAuth)
		authed.GET("/exchange-rates", adminRatesHandler.List)
		authed.GET("/providers", adminProvidersHandler.List)
	}

	rateEditors := authed.Group("", middleware.RequireRole(model.RoleAdmin, model.RoleEditor, model.RoleRateEditor))
	{
		rateEditors.POST("/exchange-rates", adminRatesHandler.Create)
		rateEditors.PATCH("/exchange-rates/:id", adminRatesHandler.Update)
		rateEditors.POST("/bulk-update-rates", adminRatesHandler.BulkUpdate)
	}

	adminOnly := authed.Group("", middleware.RequireRole(model.RoleAdmin))
	{
		adminOnly.POST("/providers", adminProvidersHandler.Create)
		adminOnly.PATCH("/providers/:id", adminProvidersHandler.Update)
	}

	return cleanup
}
