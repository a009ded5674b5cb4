package repositories

import (
	"event-admin-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	CreateEvent(event *models.Event) error
	GetEventByID(id uuid.UUID) (*models.Event, error)
	GetEventByPublicID(eventID string) (*models.Event, error)
	GetEventByLoginCode(code string) (*models.Event, error)
	ListEvents(enabledOnly bool) ([]models.Event, error)
	ListEventsByIDs(ids []uuid.UUID, enabledOnly bool) ([]models.Event, error)
	UpdateEvent(id uuid.UUID, updates map[string]interface{}) (*models.Event, error)
	DeleteEvent(id uuid.UUID) error

	// Admin assignments
	AssignAdmin(adminID, eventID uuid.UUID) error
	UnassignAdmin(adminID, eventID uuid.UUID) error
	IsAdminAssigned(adminID, eventID uuid.UUID) (bool, error)
	ListAssignedAdmins(eventID uuid.UUID) ([]models.Admin, error)
	ListEventIDsForAdmin(adminID uuid.UUID) ([]uuid.UUID, error)
}

type eventRepo struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) CreateEvent(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepo) GetEventByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) GetEventByPublicID(eventID string) (*models.Event, error) {
	var event models.Event
	if err := r.db.Where("event_id = ?", eventID).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) GetEventByLoginCode(code string) (*models.Event, error) {
	var event models.Event
	if err := r.db.Where("login_code = ?", code).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) ListEvents(enabledOnly bool) ([]models.Event, error) {
	var events []models.Event
	query := r.db.Order("created_at DESC")
	if enabledOnly {
		query = query.Where("is_enabled = ?", true)
	}
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepo) ListEventsByIDs(ids []uuid.UUID, enabledOnly bool) ([]models.Event, error) {
	if len(ids) == 0 {
		return []models.Event{}, nil
	}

	var events []models.Event
	query := r.db.Where("id IN ?", ids).Order("created_at DESC")
	if enabledOnly {
		query = query.Where("is_enabled = ?", true)
	}
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateEvent applies a sparse patch: only the keys present in updates are
// written. Returns the refreshed row.
func (r *eventRepo) UpdateEvent(id uuid.UUID, updates map[string]interface{}) (*models.Event, error) {
	if len(updates) > 0 {
		result := r.db.Model(&models.Event{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetEventByID(id)
}

func (r *eventRepo) DeleteEvent(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *eventRepo) AssignAdmin(adminID, eventID uuid.UUID) error {
	assignment := models.AdminEvent{
		ID:      uuid.New(),
		AdminID: adminID,
		EventID: eventID,
	}
	return r.db.Create(&assignment).Error
}

func (r *eventRepo) UnassignAdmin(adminID, eventID uuid.UUID) error {
	return r.db.Where("admin_id = ? AND event_id = ?", adminID, eventID).
		Delete(&models.AdminEvent{}).Error
}

func (r *eventRepo) IsAdminAssigned(adminID, eventID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.AdminEvent{}).
		Where("admin_id = ? AND event_id = ?", adminID, eventID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *eventRepo) ListAssignedAdmins(eventID uuid.UUID) ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.
		Joins("JOIN admin_events ON admin_events.admin_id = admins.id").
		Where("admin_events.event_id = ?", eventID).
		Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *eventRepo) ListEventIDsForAdmin(adminID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.AdminEvent{}).
		Where("admin_id = ?", adminID).
		Pluck("event_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
