package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/config"
	"github.com/kikoolz/desishub-assessment-app/internal/handlers"
	applog "github.com/kikoolz/desishub-assessment-app/internal/logger"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
	"github.com/kikoolz/desishub-assessment-app/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := applog.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zl.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database
	db, err := config.InitDatabase(cfg, zl)
	if err != nil {
		zl.Fatal("❌ Failed to initialize database", zap.Error(err))
	}

	rdb, err := config.InitRedis(ctx, cfg)
	if err != nil {
		zl.Fatal("❌ Failed to initialize Redis", zap.Error(err))
	}
	defer rdb.Close()
	zl.Info("✅ Redis connected successfully")

	// Repositories
	candidateRepo := repositories.NewCandidateRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	zl.Info("✅ Repositories initialized successfully")

	mailer, err := services.NewMailer(ctx, cfg.Mail, zl)
	if err != nil {
		zl.Fatal("❌ Failed to initialize mailer", zap.Error(err))
	}
	zl.Info("✅ Mailer initialized", zap.String("transport", mailer.Name()))

	// Gemini and Qdrant are optional
	var gemini services.GeminiService
	if cfg.Gemini.APIKey != "" {
		gemini, err = services.NewGeminiService(ctx, cfg.Gemini, zl)
		if err != nil {
			zl.Fatal("❌ Failed to initialize Gemini AI", zap.Error(err))
		}
		zl.Info("✅ Gemini AI initialized successfully", zap.String("model", cfg.Gemini.Model))
	}

	var index services.CandidateIndex
	if cfg.Qdrant.URL != "" && gemini != nil {
		index, err = services.NewQdrantIndex(cfg.Qdrant, zl)
		if err != nil {
			zl.Fatal("❌ Failed to initialize Qdrant", zap.Error(err))
		}
		if err := index.InitCollection(ctx); err != nil {
			zl.Fatal("❌ Failed to initialize Qdrant collection", zap.Error(err))
		}
		zl.Info("✅ Qdrant initialized successfully")
	}

	statsService := services.NewStatsService(candidateRepo, rdb, cfg.Stats.CacheTTL, zl)
	similarityService := services.NewSimilarityService(candidateRepo, gemini, index)
	authService := services.NewAuthService(adminRepo, rdb, cfg.Auth.SessionTTL, cfg.Auth.SignupEnabled)
	followUpService := services.NewFollowUpService(
		candidateRepo,
		mailer,
		gemini,
		similarityService,
		cfg.Worker.RetryMaxAttempts,
		zl,
	)
	zl.Info("✅ Services initialized successfully")

	// Initialize worker
	worker := services.NewWorker(candidateRepo, followUpService, services.WorkerOptions{
		Concurrency:  cfg.Worker.Concurrency,
		QueueSize:    cfg.Worker.QueueSize,
		PollInterval: cfg.Worker.PollInterval,
		StaleAfter:   cfg.Worker.StaleAfter,
	}, zl)
	worker.Start(ctx)

	assessmentService := services.NewAssessmentService(candidateRepo, statsService, worker, zl)

	router := &handlers.Router{
		Assessment: handlers.NewAssessmentHandler(assessmentService, zl),
		Candidates: handlers.NewCandidateHandler(candidateRepo, statsService, similarityService, zl),
		Stats:      handlers.NewStatsHandler(statsService, zl),
		Auth:       handlers.NewAuthHandler(authService, cfg.IsProduction(), zl),
		AuthSvc:    authService,
	}
	zl.Info("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Desishub Assessment API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    64 * 1024,
		ErrorHandler: customErrorHandler(zl),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	router.Register(app.Group("/api/v1"))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Desishub Assessment API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/questions",
				"POST /api/v1/assessments",
				"POST /api/v1/auth/login",
				"GET /api/v1/admin/candidates",
				"GET /api/v1/admin/stats",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Listen returns as soon as the listener closes; main waits on done so
	// in-flight follow-up jobs finish before the deferred closes run.
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-quit
		zl.Info("🛑 Shutting down server...")

		// Stop worker first
		worker.Stop()

		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zl.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("❌ Failed to start server", zap.Error(err))
	}

	<-done
	zl.Info("✅ Server exited")
}

func customErrorHandler(zl *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			zl.Error("❌ Unhandled request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  code,
		})
	}
}
