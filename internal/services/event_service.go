package services

import (
	"fmt"
	"time"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/models"
	"event-admin-backend/internal/repositories"
	"event-admin-backend/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type EventService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewEventService(repo *repositories.Repository, cfg *config.Config) *EventService {
	return &EventService{repo: repo, cfg: cfg}
}

type CreateEventRequest struct {
	Name           string
	Description    string
	CategoryID     *uuid.UUID
	VenueID        *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	LoginCode      string
	AssignedAdmins []uuid.UUID

	SplashImageURL string
	PrimaryColor   string
	SecondaryColor string

	BackgroundBannerImageURL string
	BannerTextColor          string
	WelcomeText              string

	DuringBackgroundBannerImageURL string
	DuringBannerTextColor          string
	DuringWelcomeText              string

	PostBackgroundBannerImageURL string
	PostBannerTextColor          string
	PostWelcomeText              string
}

// UpdateEventRequest is a sparse patch: nil fields are left untouched.
type UpdateEventRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	VenueID     *uuid.UUID `json:"venue_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	LoginCode   *string    `json:"login_code"`
	Status      *string    `json:"status"`

	SplashImageURL *string `json:"splash_image_url"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`

	BackgroundBannerImageURL *string `json:"background_banner_image_url"`
	BannerTextColor          *string `json:"banner_text_color"`
	WelcomeText              *string `json:"welcome_text"`

	DuringBackgroundBannerImageURL *string `json:"during_background_banner_image_url"`
	DuringBannerTextColor          *string `json:"during_banner_text_color"`
	DuringWelcomeText              *string `json:"during_welcome_text"`

	PostBackgroundBannerImageURL *string `json:"post_background_banner_image_url"`
	PostBannerTextColor          *string `json:"post_banner_text_color"`
	PostWelcomeText              *string `json:"post_welcome_text"`
}

// ResolveEvent looks an event up by surrogate id first, falling back to the
// public event code. A key of the wrong type is never an error by itself.
func (s *EventService) ResolveEvent(key string) (*models.Event, error) {
	if id, err := uuid.Parse(key); err == nil {
		event, err := s.repo.EventRepo.GetEventByID(id)
		if err == nil {
			return event, nil
		}
		if !isNotFound(err) {
			return nil, err
		}
	}

	event, err := s.repo.EventRepo.GetEventByPublicID(key)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: event not found", ErrNotFound)
		}
		return nil, err
	}
	return event, nil
}

// ResolveEventByLoginCode is the mobile login lookup: login_code first, then
// the public event code.
func (s *EventService) ResolveEventByLoginCode(code string) (*models.Event, error) {
	event, err := s.repo.EventRepo.GetEventByLoginCode(code)
	if err == nil {
		return event, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	event, err = s.repo.EventRepo.GetEventByPublicID(code)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: invalid event code", ErrNotFound)
		}
		return nil, err
	}
	return event, nil
}

// AuthorizeEvent applies the scoping rule for an already-loaded event,
// consulting the assignment table for event admins.
func (s *EventService) AuthorizeEvent(actor *models.Admin, event *models.Event) error {
	assigned := false
	if actor != nil && !actor.IsSuperAdmin() {
		var err error
		assigned, err = s.repo.EventRepo.IsAdminAssigned(actor.ID, event.ID)
		if err != nil {
			return err
		}
	}
	return AuthorizeEvent(actor, event, assigned)
}

func (s *EventService) ListEvents(actor *models.Admin) ([]models.Event, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if actor.IsSuperAdmin() {
		return s.repo.EventRepo.ListEvents(false)
	}

	ids, err := s.repo.EventRepo.ListEventIDsForAdmin(actor.ID)
	if err != nil {
		return nil, err
	}
	return s.repo.EventRepo.ListEventsByIDs(ids, true)
}

func (s *EventService) CreateEvent(actor *models.Admin, req CreateEventRequest) (*models.Event, error) {
	if err := RequireAction(actor, ActionCreateEvent); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: event name is required", ErrBadRequest)
	}

	publicID, err := utils.GenerateEventID()
	if err != nil {
		return nil, err
	}
	loginCode := req.LoginCode
	if loginCode == "" {
		if loginCode, err = utils.GenerateLoginCode(); err != nil {
			return nil, err
		}
	}

	event := &models.Event{
		ID:          uuid.New(),
		EventID:     publicID,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		VenueID:     req.VenueID,
		LoginCode:   loginCode,
		CreatedBy:   &actor.ID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.EventStatusActive,
		IsEnabled:   true,

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
	}

	if err := s.repo.EventRepo.CreateEvent(event); err != nil {
		return nil, err
	}

	for _, adminID := range req.AssignedAdmins {
		if err := s.repo.EventRepo.AssignAdmin(adminID, event.ID); err != nil {
			logrus.WithError(err).WithField("admin_id", adminID).
				Warn("failed to assign admin to new event")
		}
	}

	return event, nil
}

// GetEventDetails is the assembled read: base row plus assigned admins and
// every content collection, each fetched independently. A failing
// sub-collection degrades to an empty list instead of failing the read.
func (s *EventService) GetEventDetails(actor *models.Admin, key string) (*models.EventWithDetails, error) {
	event, err := s.ResolveEvent(key)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeEvent(actor, event); err != nil {
		return nil, err
	}

	details := &models.EventWithDetails{
		Event:             *event,
		AssignedAdmins:    []models.Admin{},
		EventIntro:        []models.EventIntro{},
		PreEventExplore:   []models.PreEventExplore{},
		PreEventHappening: []models.PreEventHappening{},
		EventSessions:     []models.EventSession{},
		EventDays:         []models.EventDay{},
	}

	if admins, err := s.repo.EventRepo.ListAssignedAdmins(event.ID); err == nil {
		details.AssignedAdmins = admins
	} else {
		logrus.WithError(err).WithField("event", event.ID).Warn("failed to load assigned admins")
	}
	if intro, err := s.repo.ContentRepo.ListIntro(event.ID); err == nil {
		details.EventIntro = intro
	}
	if explore, err := s.repo.ContentRepo.ListExplore(event.ID); err == nil {
		details.PreEventExplore = explore
	}
	if happening, err := s.repo.ContentRepo.ListHappening(event.ID); err == nil {
		details.PreEventHappening = happening
	}
	if sessions, err := s.repo.ContentRepo.ListSessions(event.ID); err == nil {
		details.EventSessions = sessions
	}
	if days, err := s.repo.ContentRepo.ListDays(event.ID); err == nil {
		details.EventDays = days
	}

	return details, nil
}

func (s *EventService) UpdateEvent(actor *models.Admin, key string, req UpdateEventRequest) (*models.Event, error) {
	event, err := s.ResolveEvent(key)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeEvent(actor, event); err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch *req.Status {
		case models.EventStatusActive, models.EventStatusInactive, models.EventStatusCompleted:
		default:
			return nil, fmt.Errorf("%w: invalid status %q", ErrBadRequest, *req.Status)
		}
	}

	updates := map[string]interface{}{}
	setString := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	setString("name", req.Name)
	setString("description", req.Description)
	setString("login_code", req.LoginCode)
	setString("status", req.Status)
	setString("splash_image_url", req.SplashImageURL)
	setString("primary_color", req.PrimaryColor)
	setString("secondary_color", req.SecondaryColor)
	setString("background_banner_image_url", req.BackgroundBannerImageURL)
	setString("banner_text_color", req.BannerTextColor)
	setString("welcome_text", req.WelcomeText)
	setString("during_background_banner_image_url", req.DuringBackgroundBannerImageURL)
	setString("during_banner_text_color", req.DuringBannerTextColor)
	setString("during_welcome_text", req.DuringWelcomeText)
	setString("post_background_banner_image_url", req.PostBackgroundBannerImageURL)
	setString("post_banner_text_color", req.PostBannerTextColor)
	setString("post_welcome_text", req.PostWelcomeText)
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.VenueID != nil {
		updates["venue_id"] = *req.VenueID
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}

	return s.repo.EventRepo.UpdateEvent(event.ID, updates)
}

func (s *EventService) DeleteEvent(actor *models.Admin, key string) error {
	if err := RequireAction(actor, ActionDeleteEvent); err != nil {
		return err
	}
	event, err := s.ResolveEvent(key)
	if err != nil {
		return err
	}
	return s.repo.EventRepo.DeleteEvent(event.ID)
}

// ToggleEnable flips the admin-only kill switch and returns the new state.
func (s *EventService) ToggleEnable(actor *models.Admin, key string) (*models.Event, error) {
	if err := RequireAction(actor, ActionToggleEvent); err != nil {
		return nil, err
	}
	event, err := s.ResolveEvent(key)
	if err != nil {
		return nil, err
	}
	return s.repo.EventRepo.UpdateEvent(event.ID, map[string]interface{}{
		"is_enabled": !event.IsEnabled,
	})
}

func (s *EventService) AssignAdmin(actor *models.Admin, key string, adminID uuid.UUID) error {
	if err := RequireAction(actor, ActionAssignAdmins); err != nil {
		return err
	}
	event, err := s.ResolveEvent(key)
	if err != nil {
		return err
	}
	if _, err := s.repo.AdminRepo.GetAdminByID(adminID); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: admin not found", ErrNotFound)
		}
		return err
	}
	if assigned, err := s.repo.EventRepo.IsAdminAssigned(adminID, event.ID); err != nil {
		return err
	} else if assigned {
		return nil
	}
	return s.repo.EventRepo.AssignAdmin(adminID, event.ID)
}

func (s *EventService) UnassignAdmin(actor *models.Admin, key string, adminID uuid.UUID) error {
	if err := RequireAction(actor, ActionAssignAdmins); err != nil {
		return err
	}
	event, err := s.ResolveEvent(key)
	if err != nil {
		return err
	}
	return s.repo.EventRepo.UnassignAdmin(adminID, event.ID)
}

// LoginCodeQR renders the event's login code as a QR PNG and returns its
// public path.
func (s *EventService) LoginCodeQR(actor *models.Admin, key string) (string, error) {
	event, err := s.ResolveEvent(key)
	if err != nil {
		return "", err
	}
	if err := s.AuthorizeEvent(actor, event); err != nil {
		return "", err
	}

	filename, err := utils.GenerateQRCodeImage(event.LoginCode, s.cfg.QRDir)
	if err != nil {
		return "", err
	}
	return "/qrcodes/" + filename, nil
}
