package handlers

import (
	"time"

	"event-admin-backend/internal/middleware"
	"event-admin-backend/internal/services"
	"event-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type addDayRequest struct {
	Date        *time.Time `json:"date"`
	ImageURL    string     `json:"image_url"`
	Description string     `json:"description"`
	SortOrder   int        `json:"sort_order"`
}

type addSessionRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	VenueName   string     `json:"venue_name"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	SortOrder   int        `json:"sort_order"`
}

type addIntroRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"sort_order"`
}

type addExploreRequest struct {
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	SortOrder int    `json:"sort_order"`
}

type addHappeningRequest struct {
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text"`
	SortOrder int    `json:"sort_order"`
}

func itemID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("item_id"))
}

func (h *Handler) GetEventContent(c *fiber.Ctx) error {
	content, err := h.contentSvc.GetContent(middleware.AdminFromContext(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, content, "")
}

func (h *Handler) ListEventDays(c *fiber.Ctx) error {
	days, err := h.contentSvc.ListDays(middleware.AdminFromContext(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, days, "")
}

func (h *Handler) AddEventDay(c *fiber.Ctx) error {
	var req addDayRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	day, err := h.contentSvc.AddDay(middleware.AdminFromContext(c), c.Params("id"),
		req.Date, req.ImageURL, req.Description, req.SortOrder)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, day, "Event day added", fiber.StatusCreated)
}

func (h *Handler) RemoveEventDay(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return utils.Error(c, "Invalid item id", fiber.StatusBadRequest)
	}
	if err := h.contentSvc.RemoveDay(middleware.AdminFromContext(c), c.Params("id"), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Event day removed")
}

func (h *Handler) ListEventSessions(c *fiber.Ctx) error {
	sessions, err := h.contentSvc.ListSessions(middleware.AdminFromContext(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, sessions, "")
}

func (h *Handler) AddEventSession(c *fiber.Ctx) error {
	var req addSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	if req.Name == "" {
		return utils.Error(c, "name is required", fiber.StatusBadRequest)
	}

	session, err := h.contentSvc.AddSession(middleware.AdminFromContext(c), c.Params("id"), services.AddSessionRequest{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VenueName:   req.VenueName,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, session, "Event session added", fiber.StatusCreated)
}

func (h *Handler) RemoveEventSession(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return utils.Error(c, "Invalid item id", fiber.StatusBadRequest)
	}
	if err := h.contentSvc.RemoveSession(middleware.AdminFromContext(c), c.Params("id"), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Event session removed")
}

func (h *Handler) AddEventIntro(c *fiber.Ctx) error {
	var req addIntroRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	intro, err := h.contentSvc.AddIntro(middleware.AdminFromContext(c), c.Params("id"),
		req.Title, req.Description, req.ImageURL, req.SortOrder)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, intro, "Intro item added", fiber.StatusCreated)
}

func (h *Handler) RemoveEventIntro(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return utils.Error(c, "Invalid item id", fiber.StatusBadRequest)
	}
	if err := h.contentSvc.RemoveIntro(middleware.AdminFromContext(c), c.Params("id"), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Intro item removed")
}

func (h *Handler) AddEventExplore(c *fiber.Ctx) error {
	var req addExploreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	item, err := h.contentSvc.AddExplore(middleware.AdminFromContext(c), c.Params("id"),
		req.Name, req.ImageURL, req.SortOrder)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, item, "Explore item added", fiber.StatusCreated)
}

func (h *Handler) RemoveEventExplore(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return utils.Error(c, "Invalid item id", fiber.StatusBadRequest)
	}
	if err := h.contentSvc.RemoveExplore(middleware.AdminFromContext(c), c.Params("id"), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Explore item removed")
}

func (h *Handler) AddEventHappening(c *fiber.Ctx) error {
	var req addHappeningRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	item, err := h.contentSvc.AddHappening(middleware.AdminFromContext(c), c.Params("id"),
		req.ImageURL, req.AltText, req.SortOrder)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, item, "Happening item added", fiber.StatusCreated)
}

func (h *Handler) RemoveEventHappening(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return utils.Error(c, "Invalid item id", fiber.StatusBadRequest)
	}
	if err := h.contentSvc.RemoveHappening(middleware.AdminFromContext(c), c.Params("id"), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Happening item removed")
}
