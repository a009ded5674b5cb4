package main

import (
	"log"
	"os"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/models"
	"event-admin-backend/internal/repositories"
	"event-admin-backend/internal/utils"
	"event-admin-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

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

	log.Println("Database migrations completed successfully")

	// Seed the super admin if requested
	if err := seedSuperAdmin(db); err != nil {
		log.Fatalf("Failed to seed super admin: %v", err)
	}

	log.Println("Migration process completed")
}

// seedSuperAdmin creates the first super admin from SEED_ADMIN_EMAIL /
// SEED_ADMIN_PASSWORD. A no-op when the variables are unset or the account
// already exists.
func seedSuperAdmin(db *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD not set, skipping seed")
		return nil
	}

	var existing models.Admin
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("Super admin already exists")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	name := os.Getenv("SEED_ADMIN_NAME")
	if name == "" {
		name = "Super Admin"
	}

	admin := &models.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         models.RoleSuperAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Super admin created: %s", email)
	return nil
}
