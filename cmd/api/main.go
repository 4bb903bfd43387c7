package main

import (
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

	"github.com/davyken/Job-Fusion/internal/config"
	"github.com/davyken/Job-Fusion/internal/handlers"
	"github.com/davyken/Job-Fusion/internal/repositories"
	"github.com/davyken/Job-Fusion/internal/services"
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
	jobRepo := repositories.NewJobRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	savedJobRepo := repositories.NewSavedJobRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.PublicBaseURL)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	chatClient := services.NewChatClient(cfg.OpenAI)
	extractor := services.NewDocumentExtractor()
	cvParser := services.NewCVParserService(chatClient)
	matcher := services.NewMatchService(chatClient, cfg.Matching)

	pipeline := services.NewCVPipelineService(
		profileRepo,
		jobRepo,
		extractor,
		cvParser,
		matcher,
		storageService,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	cvHandler := handlers.NewCVHandler(pipeline, profileRepo, cfg.Storage.MaxFileSize)
	recommendationHandler := handlers.NewRecommendationHandler(pipeline)
	jobHandler := handlers.NewJobHandler(jobRepo)
	applicationHandler := handlers.NewApplicationHandler(applicationRepo, jobRepo, storageService, cfg.Storage.MaxFileSize)
	savedJobHandler := handlers.NewSavedJobHandler(savedJobRepo)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "JobFusion API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
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
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-User-Id, X-User-Role",
	}))

	app.Use(handlers.Identity())

	// Uploaded CVs and resumes are exposed at their public URLs
	app.Static("/uploads", cfg.Storage.UploadPath)

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// CV pipeline
	api.Post("/cv/upload", cvHandler.HandleUploadCV)
	api.Get("/cv", cvHandler.HandleGetCV)
	api.Get("/recommendations", recommendationHandler.HandleGetRecommendations)

	// Jobs
	api.Get("/jobs", jobHandler.HandleListJobs)
	api.Post("/jobs", jobHandler.HandleCreateJob)
	api.Get("/jobs/mine", jobHandler.HandleMyJobs)
	api.Get("/jobs/:id", jobHandler.HandleGetJob)
	api.Delete("/jobs/:id", jobHandler.HandleDeleteJob)
	api.Patch("/jobs/:id/status", jobHandler.HandleUpdateHiringStatus)

	// Applications
	api.Post("/jobs/:id/apply", applicationHandler.HandleApply)
	api.Patch("/jobs/:id/applications/status", applicationHandler.HandleUpdateStatus)
	api.Get("/applications", applicationHandler.HandleListMine)

	// Saved jobs
	api.Post("/jobs/:id/save", savedJobHandler.HandleToggleSave)
	api.Get("/saved-jobs", savedJobHandler.HandleListSaved)

	// Companies
	api.Get("/companies", companyHandler.HandleListCompanies)
	api.Post("/companies", companyHandler.HandleCreateCompany)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "JobFusion API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/cv/upload",
				"GET /api/v1/cv",
				"GET /api/v1/recommendations",
				"GET /api/v1/jobs",
				"GET /api/v1/saved-jobs",
				"GET /api/v1/applications",
				"GET /api/v1/companies",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
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
