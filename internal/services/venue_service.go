package services

import (
	"fmt"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/models"
	"event-admin-backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type VenueService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewVenueService(repo *repositories.Repository, cfg *config.Config) *VenueService {
	return &VenueService{repo: repo, cfg: cfg}
}

type CreateVenueRequest struct {
	Name        string
	Address     string
	Description string
	BgImageURL  string
	Latitude    *float64
	Longitude   *float64
	City        string
}

type UpdateVenueRequest struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	Description *string  `json:"description"`
	BgImageURL  *string  `json:"bg_image_url"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	City        *string  `json:"city"`
}

func (s *VenueService) ListVenues(actor *models.Admin) ([]models.Venue, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	return s.repo.VenueRepo.ListVenues()
}

// GetVenueDetails composes the venue with its ordered child collections; a
// failing child fetch degrades to an empty list.
func (s *VenueService) GetVenueDetails(id uuid.UUID) (*models.Venue, error) {
	venue, err := s.repo.VenueRepo.GetVenueByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: venue not found", ErrNotFound)
		}
		return nil, err
	}

	venue.Facilities = []models.VenueFacility{}
	venue.Contacts = []models.VenueContact{}
	venue.Photos = []models.VenuePhoto{}

	if facilities, err := s.repo.VenueRepo.ListFacilities(venue.ID); err == nil {
		venue.Facilities = facilities
	} else {
		logrus.WithError(err).WithField("venue", venue.ID).Warn("failed to load facilities")
	}
	if contacts, err := s.repo.VenueRepo.ListContacts(venue.ID); err == nil {
		venue.Contacts = contacts
	}
	if photos, err := s.repo.VenueRepo.ListPhotos(venue.ID); err == nil {
		venue.Photos = photos
	}

	return venue, nil
}

func (s *VenueService) CreateVenue(actor *models.Admin, req CreateVenueRequest) (*models.Venue, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if req.Name == "" || req.Address == "" {
		return nil, fmt.Errorf("%w: name and address are required", ErrBadRequest)
	}

	venue := &models.Venue{
		ID:          uuid.New(),
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		BgImageURL:  req.BgImageURL,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		City:        req.City,
	}
	if err := s.repo.VenueRepo.CreateVenue(venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *VenueService) UpdateVenue(actor *models.Admin, id uuid.UUID, req UpdateVenueRequest) (*models.Venue, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.BgImageURL != nil {
		updates["bg_image_url"] = *req.BgImageURL
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.City != nil {
		updates["city"] = *req.City
	}

	venue, err := s.repo.VenueRepo.UpdateVenue(id, updates)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: venue not found", ErrNotFound)
		}
		return nil, err
	}
	return venue, nil
}

func (s *VenueService) DeleteVenue(actor *models.Admin, id uuid.UUID) error {
	if err := RequireAction(actor, ActionDeleteVenue); err != nil {
		return err
	}
	if err := s.repo.VenueRepo.DeleteVenue(id); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: venue not found", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *VenueService) AddFacility(actor *models.Admin, venueID uuid.UUID, name, imageURL string) (*models.VenueFacility, error) {
	if err := s.requireVenueChildAccess(actor, venueID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: facility name is required", ErrBadRequest)
	}

	facility := &models.VenueFacility{
		ID:       uuid.New(),
		VenueID:  venueID,
		Name:     name,
		ImageURL: imageURL,
	}
	if err := s.repo.VenueRepo.CreateFacility(facility); err != nil {
		return nil, err
	}
	return facility, nil
}

func (s *VenueService) RemoveFacility(actor *models.Admin, id uuid.UUID) error {
	if err := RequireAction(actor, ActionManageVenueChildren); err != nil {
		return err
	}
	return s.repo.VenueRepo.DeleteFacility(id)
}

func (s *VenueService) AddContact(actor *models.Admin, venueID uuid.UUID, name, imageURL, phone, email string) (*models.VenueContact, error) {
	if err := s.requireVenueChildAccess(actor, venueID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: contact name is required", ErrBadRequest)
	}

	contact := &models.VenueContact{
		ID:          uuid.New(),
		VenueID:     venueID,
		Name:        name,
		ImageURL:    imageURL,
		PhoneNumber: phone,
		Email:       email,
	}
	if err := s.repo.VenueRepo.CreateContact(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *VenueService) RemoveContact(actor *models.Admin, id uuid.UUID) error {
	if err := RequireAction(actor, ActionManageVenueChildren); err != nil {
		return err
	}
	return s.repo.VenueRepo.DeleteContact(id)
}

func (s *VenueService) AddPhoto(actor *models.Admin, venueID uuid.UUID, imageURL, altText string, sortOrder int) (*models.VenuePhoto, error) {
	if err := s.requireVenueChildAccess(actor, venueID); err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, fmt.Errorf("%w: image_url is required", ErrBadRequest)
	}

	photo := &models.VenuePhoto{
		ID:        uuid.New(),
		VenueID:   venueID,
		ImageURL:  imageURL,
		AltText:   altText,
		SortOrder: sortOrder,
	}
	if err := s.repo.VenueRepo.CreatePhoto(photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *VenueService) RemovePhoto(actor *models.Admin, id uuid.UUID) error {
	if err := RequireAction(actor, ActionManageVenueChildren); err != nil {
		return err
	}
	return s.repo.VenueRepo.DeletePhoto(id)
}

func (s *VenueService) requireVenueChildAccess(actor *models.Admin, venueID uuid.UUID) error {
	if err := RequireAction(actor, ActionManageVenueChildren); err != nil {
		return err
	}
	if _, err := s.repo.VenueRepo.GetVenueByID(venueID); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: venue not found", ErrNotFound)
		}
		return err
	}
	return nil
}
