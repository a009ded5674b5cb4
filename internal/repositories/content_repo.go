package repositories

import (
	"event-admin-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepository covers the ordered, event-scoped content collections.
type ContentRepository interface {
	ListDays(eventID uuid.UUID) ([]models.EventDay, error)
	CreateDay(day *models.EventDay) error
	DeleteDay(id uuid.UUID) error

	ListSessions(eventID uuid.UUID) ([]models.EventSession, error)
	CreateSession(session *models.EventSession) error
	DeleteSession(id uuid.UUID) error

	ListIntro(eventID uuid.UUID) ([]models.EventIntro, error)
	CreateIntro(intro *models.EventIntro) error
	DeleteIntro(id uuid.UUID) error

	ListExplore(eventID uuid.UUID) ([]models.PreEventExplore, error)
	CreateExplore(item *models.PreEventExplore) error
	DeleteExplore(id uuid.UUID) error

	ListHappening(eventID uuid.UUID) ([]models.PreEventHappening, error)
	CreateHappening(item *models.PreEventHappening) error
	DeleteHappening(id uuid.UUID) error
}

type contentRepo struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepo{db: db}
}

func (r *contentRepo) ListDays(eventID uuid.UUID) ([]models.EventDay, error) {
	var days []models.EventDay
	err := r.db.Where("event_id = ?", eventID).Order("sort_order ASC").Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (r *contentRepo) CreateDay(day *models.EventDay) error {
	return r.db.Create(day).Error
}

func (r *contentRepo) DeleteDay(id uuid.UUID) error {
	return deleteByID(r.db, &models.EventDay{}, id)
}

func (r *contentRepo) ListSessions(eventID uuid.UUID) ([]models.EventSession, error) {
	var sessions []models.EventSession
	err := r.db.Where("event_id = ?", eventID).Order("sort_order ASC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *contentRepo) CreateSession(session *models.EventSession) error {
	return r.db.Create(session).Error
}

func (r *contentRepo) DeleteSession(id uuid.UUID) error {
	return deleteByID(r.db, &models.EventSession{}, id)
}

func (r *contentRepo) ListIntro(eventID uuid.UUID) ([]models.EventIntro, error) {
	var intro []models.EventIntro
	err := r.db.Where("event_id = ?", eventID).Order("sort_order ASC").Find(&intro).Error
	if err != nil {
		return nil, err
	}
	return intro, nil
}

func (r *contentRepo) CreateIntro(intro *models.EventIntro) error {
	return r.db.Create(intro).Error
}

func (r *contentRepo) DeleteIntro(id uuid.UUID) error {
	return deleteByID(r.db, &models.EventIntro{}, id)
}

func (r *contentRepo) ListExplore(eventID uuid.UUID) ([]models.PreEventExplore, error) {
	var items []models.PreEventExplore
	err := r.db.Where("event_id = ?", eventID).Order("sort_order ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentRepo) CreateExplore(item *models.PreEventExplore) error {
	return r.db.Create(item).Error
}

func (r *contentRepo) DeleteExplore(id uuid.UUID) error {
	return deleteByID(r.db, &models.PreEventExplore{}, id)
}

func (r *contentRepo) ListHappening(eventID uuid.UUID) ([]models.PreEventHappening, error) {
	var items []models.PreEventHappening
	err := r.db.Where("event_id = ?", eventID).Order("sort_order ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentRepo) CreateHappening(item *models.PreEventHappening) error {
	return r.db.Create(item).Error
}

func (r *contentRepo) DeleteHappening(id uuid.UUID) error {
	return deleteByID(r.db, &models.PreEventHappening{}, id)
}
