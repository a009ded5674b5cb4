package repositories

import (
	"strings"
	"time"

	"event-admin-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminRepo struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetAdminByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) GetAdminByID(id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) ListAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	if err := r.db.Order("created_at ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *adminRepo) CountAdmins() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *adminRepo) CreateAdmin(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepo) DeleteAdmin(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Admin{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) CreateSession(session *models.AdminSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepo) GetSessionByID(id uuid.UUID) (*models.AdminSession, error) {
	var session models.AdminSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) RevokeSession(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.AdminSession{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", &now).Error
}

func (r *sessionRepo) DeleteExpiredSessions() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now()).Delete(&models.AdminSession{})
	return result.RowsAffected, result.Error
}
