package repositories

import (
	"event-admin-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) ListCategories() ([]models.EventCategory, error) {
	var categories []models.EventCategory
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) GetCategoryByID(id uuid.UUID) (*models.EventCategory, error) {
	var category models.EventCategory
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) CreateCategory(category *models.EventCategory) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) UpdateCategory(id uuid.UUID, updates map[string]interface{}) (*models.EventCategory, error) {
	if len(updates) > 0 {
		result := r.db.Model(&models.EventCategory{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetCategoryByID(id)
}

func (r *categoryRepo) DeleteCategory(id uuid.UUID) error {
	return deleteByID(r.db, &models.EventCategory{}, id)
}
