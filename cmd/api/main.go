package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sinopos/storefront-api/internal/application/auth"
	"github.com/sinopos/storefront-api/internal/application/cart"
	"github.com/sinopos/storefront-api/internal/application/usecase"
	"github.com/sinopos/storefront-api/internal/infrastructure/cache"
	"github.com/sinopos/storefront-api/internal/infrastructure/postgres"
	"github.com/sinopos/storefront-api/internal/infrastructure/storage"
	httpRouter "github.com/sinopos/storefront-api/internal/interfaces/http"
	"github.com/sinopos/storefront-api/pkg/config"
	"github.com/sinopos/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	inquiryRepo := postgres.NewInquiryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	pageViewRepo := postgres.NewPageViewRepository(pool)

	catalogCache := cache.New(cfg.Redis)
	defer catalogCache.Close()

	var store usecase.FileStore = storage.Disabled{}
	if cfg.S3.Bucket != "" {
		s3Store, err := storage.NewS3Store(cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("object storage")
		}
		store = s3Store
	} else {
		log.Warn().Msg("S3_BUCKET not set, image uploads disabled")
	}

	catalogUC := usecase.NewCatalogUseCase(categoryRepo, productRepo, catalogCache, cfg.Catalog.StorePageSize)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, catalogCache)
	productUC := usecase.NewProductUseCase(productRepo, catalogCache, cfg.Catalog.AdminPageSize)
	inquiryUC := usecase.NewInquiryUseCase(inquiryRepo, cfg.Catalog.AdminPageSize)
	telemetryUC := usecase.NewTelemetryUseCase(pageViewRepo, cfg.Catalog.SessionIdleMinutes, log)
	uploadUC := usecase.NewUploadUseCase(store, log)
	cartUC := cart.NewUseCase(cartRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SinoPOS Storefront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		InquiryUC:   inquiryUC,
		TelemetryUC: telemetryUC,
		UploadUC:    uploadUC,
		CartUC:      cartUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
