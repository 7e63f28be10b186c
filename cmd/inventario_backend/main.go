package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"github.com/sistema83/inventario_backend/internal/core/services"
	"github.com/sistema83/inventario_backend/internal/handlers"
	"github.com/sistema83/inventario_backend/internal/middleware"
	"github.com/sistema83/inventario_backend/internal/platform/config"
	"github.com/sistema83/inventario_backend/internal/platform/translation"
	"github.com/sistema83/inventario_backend/internal/platform/vision"
	"github.com/sistema83/inventario_backend/internal/repositories/database/mongodb"
	"github.com/sistema83/inventario_backend/internal/utils/validation"
	"github.com/sistema83/inventario_backend/pkg/database"
)

// @title Inventario Backend API
// @version 1.0
// @description Inventory and sales backend: products, purchases, sales with invoice numbering, and image recognition.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	client, db, err := database.NewMongoClient(ctx, cfg.MongoURL, cfg.MongoDB, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize mongo client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseMongoClient(ctx, client)
	logger.Info("Database connection established.", slog.String("database", cfg.MongoDB))

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logger.Error("Failed to ensure indexes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := mongodb.NewContainer(client, db, cfg.UseTransactions)

	// The recognition endpoint depends on external Google clients. The
	// rest of the API stays up when they cannot be constructed.
	var reconocimiento portssvc.ReconocimientoService
	detector, err := vision.NewGoogleLabelDetector(ctx)
	if err != nil {
		logger.Warn("Vision client unavailable, recognition endpoint disabled", slog.String("error", err.Error()))
	} else {
		defer detector.Close()
		translator, err := translation.NewGoogleTranslator(ctx)
		if err != nil {
			logger.Warn("Translate client unavailable, recognition endpoint disabled", slog.String("error", err.Error()))
		} else {
			defer translator.Close()
			reconocimiento = services.NewReconocimientoService(detector, translator, cfg.RecognitionLabels, cfg.RecognitionLang)
		}
	}

	svcContainer := services.NewServiceContainer(repos, cfg.InvoiceSeries, reconocimiento)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	r.Use(middleware.RateLimit(ipLimiter))

	validation.Setup()

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
