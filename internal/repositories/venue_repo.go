package repositories

import (
	"event-admin-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VenueRepository interface {
	ListVenues() ([]models.Venue, error)
	GetVenueByID(id uuid.UUID) (*models.Venue, error)
	CreateVenue(venue *models.Venue) error
	UpdateVenue(id uuid.UUID, updates map[string]interface{}) (*models.Venue, error)
	DeleteVenue(id uuid.UUID) error

	ListFacilities(venueID uuid.UUID) ([]models.VenueFacility, error)
	CreateFacility(facility *models.VenueFacility) error
	DeleteFacility(id uuid.UUID) error

	ListContacts(venueID uuid.UUID) ([]models.VenueContact, error)
	CreateContact(contact *models.VenueContact) error
	DeleteContact(id uuid.UUID) error

	ListPhotos(venueID uuid.UUID) ([]models.VenuePhoto, error)
	CreatePhoto(photo *models.VenuePhoto) error
	DeletePhoto(id uuid.UUID) error
}

type venueRepo struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepo{db: db}
}

func (r *venueRepo) ListVenues() ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.Order("name ASC").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepo) GetVenueByID(id uuid.UUID) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.Where("id = ?", id).First(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepo) CreateVenue(venue *models.Venue) error {
	return r.db.Create(venue).Error
}

func (r *venueRepo) UpdateVenue(id uuid.UUID, updates map[string]interface{}) (*models.Venue, error) {
	if len(updates) > 0 {
		result := r.db.Model(&models.Venue{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetVenueByID(id)
}

func (r *venueRepo) DeleteVenue(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Venue{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *venueRepo) ListFacilities(venueID uuid.UUID) ([]models.VenueFacility, error) {
	var facilities []models.VenueFacility
	err := r.db.Where("venue_id = ?", venueID).Order("name ASC").Find(&facilities).Error
	if err != nil {
		return nil, err
	}
	return facilities, nil
}

func (r *venueRepo) CreateFacility(facility *models.VenueFacility) error {
	return r.db.Create(facility).Error
}

func (r *venueRepo) DeleteFacility(id uuid.UUID) error {
	return deleteByID(r.db, &models.VenueFacility{}, id)
}

func (r *venueRepo) ListContacts(venueID uuid.UUID) ([]models.VenueContact, error) {
	var contacts []models.VenueContact
	err := r.db.Where("venue_id = ?", venueID).Order("name ASC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *venueRepo) CreateContact(contact *models.VenueContact) error {
	return r.db.Create(contact).Error
}

func (r *venueRepo) DeleteContact(id uuid.UUID) error {
	return deleteByID(r.db, &models.VenueContact{}, id)
}

func (r *venueRepo) ListPhotos(venueID uuid.UUID) ([]models.VenuePhoto, error) {
	var photos []models.VenuePhoto
	err := r.db.Where("venue_id = ?", venueID).Order("sort_order ASC").Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *venueRepo) CreatePhoto(photo *models.VenuePhoto) error {
	return r.db.Create(photo).Error
}

func (r *venueRepo) DeletePhoto(id uuid.UUID) error {
	return deleteByID(r.db, &models.VenuePhoto{}, id)
}

func deleteByID(db *gorm.DB, model interface{}, id uuid.UUID) error {
	result := db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
