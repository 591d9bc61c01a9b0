package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hounsa/agrisuivi/internal/application/analytics"
	"github.com/hounsa/agrisuivi/internal/application/auth"
	"github.com/hounsa/agrisuivi/internal/application/usecase"
	"github.com/hounsa/agrisuivi/internal/infrastructure/postgres"
	"github.com/hounsa/agrisuivi/internal/interfaces/web"
	"github.com/hounsa/agrisuivi/pkg/config"
	"github.com/hounsa/agrisuivi/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET est requis")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	zoneRepo := postgres.NewZoneRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	priceRepo := postgres.NewPriceRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	zoneUC := usecase.NewZoneUseCase(zoneRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, productRepo, zoneRepo)
	priceUC := usecase.NewPriceUseCase(priceRepo, productRepo, zoneRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo, analytics.Config{
		LowStockThreshold: cfg.Dashboard.LowStockThreshold,
		TrendDays:         cfg.Dashboard.TrendDays,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        web.NewViewEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	app.Use(recover.New())

	web.Router(app, web.RouterDeps{
		AuthUC:    authUC,
		Auth:      web.NewAuthHandler(authUC),
		Product:   web.NewProductHandler(productUC),
		Zone:      web.NewZoneHandler(zoneUC),
		Stock:     web.NewStockHandler(stockUC, productUC, zoneUC),
		Price:     web.NewPriceHandler(priceUC, productUC, zoneUC),
		Dashboard: web.NewDashboardHandler(dashboardUC),
		API:       web.NewAPIHandler(productUC, zoneUC, stockUC, priceUC, dashboardUC),
	})

	// Arrêt propre sur SIGINT/SIGTERM : on laisse finir les requêtes en cours.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("signal d'arrêt reçu")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("arrêt du serveur")
		}
	}()

	addr := cfg.HTTP.Addr()
	log.Info().Str("addr", addr).Msg("serveur HTTP en écoute")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("serveur HTTP")
	}
	log.Info().Msg("application arrêtée")
}
