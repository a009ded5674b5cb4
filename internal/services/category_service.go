package services

import (
	"fmt"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/models"
	"event-admin-backend/internal/repositories"

	"github.com/google/uuid"
)

type CategoryService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewCategoryService(repo *repositories.Repository, cfg *config.Config) *CategoryService {
	return &CategoryService{repo: repo, cfg: cfg}
}

func (s *CategoryService) ListCategories(actor *models.Admin) ([]models.EventCategory, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	return s.repo.CategoryRepo.ListCategories()
}

func (s *CategoryService) GetCategory(actor *models.Admin, id uuid.UUID) (*models.EventCategory, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	category, err := s.repo.CategoryRepo.GetCategoryByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: category not found", ErrNotFound)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(actor *models.Admin, name, description string) (*models.EventCategory, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrBadRequest)
	}

	category := &models.EventCategory{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
	if err := s.repo.CategoryRepo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(actor *models.Admin, id uuid.UUID, name, description *string) (*models.EventCategory, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if description != nil {
		updates["description"] = *description
	}

	category, err := s.repo.CategoryRepo.UpdateCategory(id, updates)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: category not found", ErrNotFound)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(actor *models.Admin, id uuid.UUID) error {
	if err := RequireAction(actor, ActionDeleteCategory); err != nil {
		return err
	}
	if err := s.repo.CategoryRepo.DeleteCategory(id); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: category not found", ErrNotFound)
		}
		return err
	}
	return nil
}
