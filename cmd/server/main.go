package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/handlers"
	"event-admin-backend/internal/repositories"
	"event-admin-backend/internal/services"
	"event-admin-backend/pkg/database"
	"event-admin-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Initialize logger
	logger.Init()

	// Load configuration
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// Run migrations
	if err := repositories.AutoMigrate(db); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	// Initialize repositories
	repo := repositories.NewRepository(db)

	// Initialize services
	authSvc := services.NewAuthService(repo, cfg)
	eventSvc := services.NewEventService(repo, cfg)
	venueSvc := services.NewVenueService(repo, cfg)
	contentSvc := services.NewContentService(repo, eventSvc, cfg)
	categorySvc := services.NewCategoryService(repo, cfg)
	otpSvc := services.NewOtpService(repo, eventSvc, cfg)
	appSvc := services.NewAppService(repo, eventSvc, venueSvc, cfg)

	// Initialize handlers
	handler := handlers.NewHandler(authSvc, eventSvc, venueSvc, contentSvc, categorySvc, otpSvc, appSvc, cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Event Admin API",
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadSize) + 1<<20,
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-User-Id,X-Event-Id",
	}))

	// Create upload directories
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}
	if err := os.MkdirAll(cfg.QRDir, 0755); err != nil {
		log.Fatalf("Failed to create QR directory: %v", err)
	}

	// Static file serving
	app.Static("/assets/images", cfg.UploadDir)
	app.Static("/qrcodes", cfg.QRDir)

	// Register routes
	handler.RegisterRoutes(app)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped gracefully")
}
