package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/vbonduro/storefront/internal/auth"
	"github.com/vbonduro/storefront/internal/config"
	"github.com/vbonduro/storefront/internal/db"
	"github.com/vbonduro/storefront/internal/imagehost"
	"github.com/vbonduro/storefront/internal/imagehost/cloudinary"
	"github.com/vbonduro/storefront/internal/logging"
	"github.com/vbonduro/storefront/internal/payment/stripe"
	"github.com/vbonduro/storefront/internal/service"
	"github.com/vbonduro/storefront/internal/store"
	"github.com/vbonduro/storefront/internal/web"
)

func main() {
	// A missing .env is fine; production sets real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	svc := service.New(
		store.NewStoreStore(database),
		store.NewBillboardStore(database),
		store.NewCategoryStore(database),
		store.NewSizeStore(database),
		store.NewColorStore(database),
		store.NewProductStore(database),
		store.NewOrderStore(database),
		stripe.NewClient(cfg.StripeAPIKey, cfg.StripeAPIURL),
		newImageDestroyer(cfg, logger),
		service.Config{Currency: cfg.Currency, FrontendStoreURL: cfg.FrontendStoreURL},
		logger,
	)

	verifier := auth.NewJWTVerifier([]byte(cfg.JWTSecret))
	server := web.NewServer(svc, verifier, cfg.StorefrontOrigin, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newImageDestroyer(cfg *config.Config, logger *slog.Logger) imagehost.Destroyer {
	if cfg.ImageHostURL == "" || cfg.ImageHostKey == "" || cfg.ImageHostSecret == "" {
		logger.Info("image host not configured, skipping hosted image cleanup")
		return imagehost.Noop{}
	}
	logger.Info("using hosted image cleanup", "url", cfg.ImageHostURL)
	return cloudinary.NewClient(cfg.ImageHostURL, cfg.ImageHostKey, cfg.ImageHostSecret)
}
