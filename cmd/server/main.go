package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/localnerve/goldphotos/internal/cache"
	"github.com/localnerve/goldphotos/internal/config"
	"github.com/localnerve/goldphotos/internal/database"
	"github.com/localnerve/goldphotos/internal/docstore"
	"github.com/localnerve/goldphotos/internal/handlers"
	"github.com/localnerve/goldphotos/internal/middleware"
	"github.com/localnerve/goldphotos/internal/repository"
	"github.com/localnerve/goldphotos/internal/services"
	"github.com/localnerve/goldphotos/internal/utils"
	"github.com/sirupsen/logrus"

	_ "github.com/localnerve/goldphotos/docs/api" // Swagger docs
)

// @title GoldPhotos API
// @version 1.0.0
// @description Photo sharing service with a gold economy on a document store
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/goldphotos
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Optional .env for local runs
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("failed to read .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Document store and repository
	store := docstore.New(db, cfg.DocstoreDatabase, cfg.DocstoreCollection)
	repo, err := repository.New(store, repository.SettingsFromConfig(cfg))
	if err != nil {
		logrus.Fatalf("Failed to create repository: %v", err)
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = repo.InitializeDatabaseIfNotExisting(initCtx, cfg.ProceduresPath)
	cancel()
	if err != nil {
		logrus.Fatalf("Failed to initialize document store: %v", err)
	}

	readCache, err := cache.NewLRU(cfg.CacheSize)
	if err != nil {
		logrus.Fatalf("Failed to create cache: %v", err)
	}
	cached := repository.NewCached(repo, readCache)

	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("goldphotos")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Liveness including the document store
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(c.UserContext(), cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	// Authorizer client is created on the first authenticated request
	sessions := services.NewAuthorizerService(cfg)
	handlers.Register(api, handlers.New(cached, cfg.NewPhotoGold), sessions)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logrus.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	logrus.WithFields(logrus.Fields{
		"port":       cfg.Port,
		"database":   cfg.DocstoreDatabase,
		"collection": cfg.DocstoreCollection,
	}).Info("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}

	logrus.Info("Server stopped")
}
