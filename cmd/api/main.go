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

	"hirelens/assessment-engine/internal/config"
	"hirelens/assessment-engine/internal/handlers"
	"hirelens/assessment-engine/internal/repositories"
	"hirelens/assessment-engine/internal/services"
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
	rubricRepo := repositories.NewRubricRepository(db)
	assessRepo := repositories.NewAssessmentRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize embedding provider
	embedder, err := services.NewEmbeddingService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding provider: %v", err)
	}
	log.Println("✅ Embedding provider initialized successfully")

	// Initialize Qdrant
	vectorStore, err := services.NewVectorStoreService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize services
	rubricService := services.NewRubricService(rubricRepo)
	searchService := services.NewSearchService(
		rubricService,
		assessRepo,
		embedder,
		vectorStore,
		cfg.Search.DefaultLimit,
		cfg.Search.SimilarityThreshold,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize embedding indexer
	indexer := services.NewIndexer(
		assessRepo,
		embedder,
		vectorStore,
		cfg.Worker.Concurrency,
		cfg.Worker.PollInterval,
	)

	ctx := context.Background()
	indexer.Start(ctx)
	log.Println("✅ Indexer started successfully")

	// Initialize handlers
	rubricHandler := handlers.NewRubricHandler(rubricService)
	fitHandler := handlers.NewFitHandler(rubricService)
	searchHandler := handlers.NewSearchHandler(searchService)
	statsHandler := handlers.NewStatsHandler(assessRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Candidate Ranking Engine API",
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
	api.Get("/rubrics/:roleFamilySlug", rubricHandler.HandleGetRubric)
	api.Get("/archetypes/:slug", rubricHandler.HandleGetArchetype)
	api.Get("/role-families/:slug/archetypes", rubricHandler.HandleListArchetypes)
	api.Post("/fit", fitHandler.HandleCalculateFit)
	api.Post("/fit/multi", fitHandler.HandleCalculateMultiFit)
	api.Get("/levels/fit", fitHandler.HandleLevelFit)
	api.Post("/search", searchHandler.HandleSearch)
	api.Get("/candidates/embeddings", statsHandler.HandleCandidatesWithEmbeddings)
	api.Get("/stats/embeddings", statsHandler.HandleEmbeddingStats)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Candidate Ranking Engine API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/rubrics/:roleFamilySlug",
				"GET /api/v1/archetypes/:slug",
				"GET /api/v1/role-families/:slug/archetypes",
				"POST /api/v1/fit",
				"POST /api/v1/fit/multi",
				"GET /api/v1/levels/fit",
				"POST /api/v1/search",
				"GET /api/v1/candidates/embeddings",
				"GET /api/v1/stats/embeddings",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		indexer.Stop()
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
