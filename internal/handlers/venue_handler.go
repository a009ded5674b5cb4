package handlers

import (
	"event-admin-backend/internal/middleware"
	"event-admin-backend/internal/services"
	"event-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type createVenueRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	BgImageURL  string   `json:"bg_image_url"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	City        string   `json:"city"`
}

type addFacilityRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type addContactRequest struct {
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

type addPhotoRequest struct {
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text"`
	SortOrder int    `json:"sort_order"`
}

func venueID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func (h *Handler) ListVenues(c *fiber.Ctx) error {
	venues, err := h.venueSvc.ListVenues(middleware.AdminFromContext(c))
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, venues, "")
}

func (h *Handler) CreateVenue(c *fiber.Ctx) error {
	var req createVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	venue, err := h.venueSvc.CreateVenue(middleware.AdminFromContext(c), services.CreateVenueRequest{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		BgImageURL:  req.BgImageURL,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		City:        req.City,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, venue, "Venue created", fiber.StatusCreated)
}

func (h *Handler) GetVenue(c *fiber.Ctx) error {
	id, err := venueID(c)
	if err != nil {
		return utils.Error(c, "Invalid venue id", fiber.StatusBadRequest)
	}

	venue, err := h.venueSvc.GetVenueDetails(id)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, venue, "")
}

func (h *Handler) UpdateVenue(c *fiber.Ctx) error {
	id, err := venueID(c)
	if err != nil {
		return utils.Error(c, "Invalid venue id", fiber.StatusBadRequest)
	}

	var req services.UpdateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	venue, err := h.venueSvc.UpdateVenue(middleware.AdminFromContext(c), id, req)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, venue, "Venue updated")
}

func (h *Handler) DeleteVenue(c *fiber.Ctx) error {
	id, err := venueID(c)
	if err != nil {
		return utils.Error(c, "Invalid venue id", fiber.StatusBadRequest)
	}
	if err := h.venueSvc.DeleteVenue(middleware.AdminFromContext(c), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Venue deleted")
}

func (h *Handler) AddVenueFacility(c *fiber.Ctx) error {
	id, err := venueID(c)
	if err != nil {
		return utils.Error(c, "Invalid venue id", fiber.StatusBadRequest)
	}

	var req addFacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	facility, err := h.venueSvc.AddFacility(middleware.AdminFromContext(c), id, req.Name, req.ImageURL)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, facility, "Facility added", fiber.StatusCreated)
}

func (h *Handler) RemoveVenueFacility(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return utils.Error(c, "Invalid item id", fiber.StatusBadRequest)
	}
	if err := h.venueSvc.RemoveFacility(middleware.AdminFromContext(c), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Facility removed")
}

func (h *Handler) AddVenueContact(c *fiber.Ctx) error {
	id, err := venueID(c)
	if err != nil {
		return utils.Error(c, "Invalid venue id", fiber.StatusBadRequest)
	}

	var req addContactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	contact, err := h.venueSvc.AddContact(middleware.AdminFromContext(c), id,
		req.Name, req.ImageURL, req.PhoneNumber, req.Email)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, contact, "Contact added", fiber.StatusCreated)
}

func (h *Handler) RemoveVenueContact(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return utils.Error(c, "Invalid item id", fiber.StatusBadRequest)
	}
	if err := h.venueSvc.RemoveContact(middleware.AdminFromContext(c), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Contact removed")
}

func (h *Handler) AddVenuePhoto(c *fiber.Ctx) error {
	id, err := venueID(c)
	if err != nil {
		return utils.Error(c, "Invalid venue id", fiber.StatusBadRequest)
	}

	var req addPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	photo, err := h.venueSvc.AddPhoto(middleware.AdminFromContext(c), id,
		req.ImageURL, req.AltText, req.SortOrder)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, photo, "Photo added", fiber.StatusCreated)
}

func (h *Handler) RemoveVenuePhoto(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return utils.Error(c, "Invalid item id", fiber.StatusBadRequest)
	}
	if err := h.venueSvc.RemovePhoto(middleware.AdminFromContext(c), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Photo removed")
}
