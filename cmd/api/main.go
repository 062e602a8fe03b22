package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"polifund/grant-matcher/internal/config"
	"polifund/grant-matcher/internal/handlers"
	"polifund/grant-matcher/internal/matching"
	"polifund/grant-matcher/internal/repositories"
	"polifund/grant-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	annRepo := repositories.NewAnnouncementRepository(db)
	runRepo := repositories.NewMatchRunRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize the matching engine
	policy := matching.DefaultPolicy()
	policy.ArrearsHardFail = cfg.Matching.ArrearsHardFail
	policy.Concurrency = cfg.Matching.Concurrency
	engine := matching.NewEngine(policy)
	log.Println("✅ Matching engine initialized")

	// Initialize services
	matcherService := services.NewMatcherService(annRepo, runRepo, engine)

	// Initialize worker
	worker := services.NewWorker(
		runRepo,
		matcherService,
		cfg.Worker.Concurrency,
	)

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	matchHandler := handlers.NewMatchHandler(matcherService, runRepo, worker)
	resultHandler := handlers.NewResultHandler(runRepo)
	announcementHandler := handlers.NewAnnouncementHandler(annRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Policy Fund Grant Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
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
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/match/runs", matchHandler.HandleCreateRun)
	api.Get("/match/runs/:id", resultHandler.HandleGetRun)
	api.Post("/announcements", announcementHandler.HandleUpsert)
	api.Get("/announcements", announcementHandler.HandleList)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Policy Fund Grant Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/match",
				"POST /api/v1/match/runs",
				"GET /api/v1/match/runs/:id",
				"POST /api/v1/announcements",
				"GET /api/v1/announcements",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
