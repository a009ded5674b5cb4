package handlers

import (
	"time"

	"event-admin-backend/internal/middleware"
	"event-admin-backend/internal/services"
	"event-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type createEventRequest struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	CategoryID     *uuid.UUID  `json:"category_id"`
	VenueID        *uuid.UUID  `json:"venue_id"`
	StartDate      *time.Time  `json:"start_date"`
	EndDate        *time.Time  `json:"end_date"`
	LoginCode      string      `json:"login_code"`
	AssignedAdmins []uuid.UUID `json:"assigned_admins"`

	SplashImageURL string `json:"splash_image_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`

	BackgroundBannerImageURL string `json:"background_banner_image_url"`
	BannerTextColor          string `json:"banner_text_color"`
	WelcomeText              string `json:"welcome_text"`

	DuringBackgroundBannerImageURL string `json:"during_background_banner_image_url"`
	DuringBannerTextColor          string `json:"during_banner_text_color"`
	DuringWelcomeText              string `json:"during_welcome_text"`

	PostBackgroundBannerImageURL string `json:"post_background_banner_image_url"`
	PostBannerTextColor          string `json:"post_banner_text_color"`
	PostWelcomeText              string `json:"post_welcome_text"`
}

type assignAdminRequest struct {
	AdminID uuid.UUID `json:"admin_id"`
}

func (h *Handler) ListEvents(c *fiber.Ctx) error {
	events, err := h.eventSvc.ListEvents(middleware.AdminFromContext(c))
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, events, "")
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	var req createEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	event, err := h.eventSvc.CreateEvent(middleware.AdminFromContext(c), services.CreateEventRequest{
		Name:           req.Name,
		Description:    req.Description,
		CategoryID:     req.CategoryID,
		VenueID:        req.VenueID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		LoginCode:      req.LoginCode,
		AssignedAdmins: req.AssignedAdmins,

		SplashImageURL: req.SplashImageURL,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,

		BackgroundBannerImageURL: req.BackgroundBannerImageURL,
		BannerTextColor:          req.BannerTextColor,
		WelcomeText:              req.WelcomeText,

		DuringBackgroundBannerImageURL: req.DuringBackgroundBannerImageURL,
		DuringBannerTextColor:          req.DuringBannerTextColor,
		DuringWelcomeText:              req.DuringWelcomeText,

		PostBackgroundBannerImageURL: req.PostBackgroundBannerImageURL,
		PostBannerTextColor:          req.PostBannerTextColor,
		PostWelcomeText:              req.PostWelcomeText,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, event, "Event created", fiber.StatusCreated)
}

func (h *Handler) GetEvent(c *fiber.Ctx) error {
	details, err := h.eventSvc.GetEventDetails(middleware.AdminFromContext(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, details, "")
}

func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	var req services.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	event, err := h.eventSvc.UpdateEvent(middleware.AdminFromContext(c), c.Params("id"), req)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, event, "Event updated")
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.eventSvc.DeleteEvent(middleware.AdminFromContext(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Event deleted")
}

func (h *Handler) ToggleEventEnable(c *fiber.Ctx) error {
	event, err := h.eventSvc.ToggleEnable(middleware.AdminFromContext(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, event, "Event visibility updated")
}

func (h *Handler) AssignAdmin(c *fiber.Ctx) error {
	var req assignAdminRequest
	if err := c.BodyParser(&req); err != nil || req.AdminID == uuid.Nil {
		return utils.Error(c, "admin_id is required", fiber.StatusBadRequest)
	}

	if err := h.eventSvc.AssignAdmin(middleware.AdminFromContext(c), c.Params("id"), req.AdminID); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Admin assigned")
}

func (h *Handler) UnassignAdmin(c *fiber.Ctx) error {
	var req assignAdminRequest
	if err := c.BodyParser(&req); err != nil || req.AdminID == uuid.Nil {
		return utils.Error(c, "admin_id is required", fiber.StatusBadRequest)
	}

	if err := h.eventSvc.UnassignAdmin(middleware.AdminFromContext(c), c.Params("id"), req.AdminID); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Admin unassigned")
}

// EventLoginQR renders the event login code as a QR PNG and returns its path.
func (h *Handler) EventLoginQR(c *fiber.Ctx) error {
	path, err := h.eventSvc.LoginCodeQR(middleware.AdminFromContext(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, fiber.Map{"qr_code_url": path}, "")
}
