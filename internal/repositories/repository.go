package repositories

import (
	"event-admin-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	DB           *gorm.DB
	AdminRepo    AdminRepository
	SessionRepo  SessionRepository
	EventRepo    EventRepository
	VenueRepo    VenueRepository
	ContentRepo  ContentRepository
	CategoryRepo CategoryRepository
	AppRepo      AppRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:           db,
		AdminRepo:    NewAdminRepository(db),
		SessionRepo:  NewSessionRepository(db),
		EventRepo:    NewEventRepository(db),
		VenueRepo:    NewVenueRepository(db),
		ContentRepo:  NewContentRepository(db),
		CategoryRepo: NewCategoryRepository(db),
		AppRepo:      NewAppRepository(db),
	}
}

func AutoMigrate(db *gorm.DB) error {
	// Enable UUID extension
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.Admin{},
		&models.AdminSession{},
		&models.AdminEvent{},
		&models.EventCategory{},
		&models.Venue{},
		&models.VenueFacility{},
		&models.VenueContact{},
		&models.VenuePhoto{},
		&models.Event{},
		&models.EventDay{},
		&models.EventSession{},
		&models.EventIntro{},
		&models.PreEventExplore{},
		&models.PreEventHappening{},
		&models.AppUser{},
		&models.AppOtp{},
		&models.AppDevice{},
		&models.AppProfileSetting{},
	)
}

// Interface definitions for the small aggregates; the larger ones live next to
// their implementations.

type AdminRepository interface {
	GetAdminByEmail(email string) (*models.Admin, error)
	GetAdminByID(id uuid.UUID) (*models.Admin, error)
	ListAdmins() ([]models.Admin, error)
	CountAdmins() (int64, error)
	CreateAdmin(admin *models.Admin) error
	DeleteAdmin(id uuid.UUID) error
}

type SessionRepository interface {
	CreateSession(session *models.AdminSession) error
	GetSessionByID(id uuid.UUID) (*models.AdminSession, error)
	RevokeSession(id uuid.UUID) error
	DeleteExpiredSessions() (int64, error)
}

type CategoryRepository interface {
	ListCategories() ([]models.EventCategory, error)
	GetCategoryByID(id uuid.UUID) (*models.EventCategory, error)
	CreateCategory(category *models.EventCategory) error
	UpdateCategory(id uuid.UUID, updates map[string]interface{}) (*models.EventCategory, error)
	DeleteCategory(id uuid.UUID) error
}
