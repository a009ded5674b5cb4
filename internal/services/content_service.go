package services

import (
	"time"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/models"
	"event-admin-backend/internal/repositories"

	"github.com/google/uuid"
)

// ContentService manages the ordered content collections scoped to one event.
// Every operation resolves and authorizes the parent event first, so disabled
// events stay masked for event admins.
type ContentService struct {
	repo     *repositories.Repository
	eventSvc *EventService
	cfg      *config.Config
}

func NewContentService(repo *repositories.Repository, eventSvc *EventService, cfg *config.Config) *ContentService {
	return &ContentService{repo: repo, eventSvc: eventSvc, cfg: cfg}
}

// EventContent bundles the intro/explore/happening collections for the
// aggregated content endpoint.
type EventContent struct {
	EventIntro        []models.EventIntro        `json:"event_intro"`
	PreEventExplore   []models.PreEventExplore   `json:"pre_event_explore"`
	PreEventHappening []models.PreEventHappening `json:"pre_event_happening"`
}

func (s *ContentService) authorizedEvent(actor *models.Admin, key string) (*models.Event, error) {
	event, err := s.eventSvc.ResolveEvent(key)
	if err != nil {
		return nil, err
	}
	if err := s.eventSvc.AuthorizeEvent(actor, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetContent returns intro, explore, and happening together; each collection
// is fetched independently and degrades to an empty list on failure.
func (s *ContentService) GetContent(actor *models.Admin, key string) (*EventContent, error) {
	event, err := s.authorizedEvent(actor, key)
	if err != nil {
		return nil, err
	}

	content := &EventContent{
		EventIntro:        []models.EventIntro{},
		PreEventExplore:   []models.PreEventExplore{},
		PreEventHappening: []models.PreEventHappening{},
	}
	if intro, err := s.repo.ContentRepo.ListIntro(event.ID); err == nil {
		content.EventIntro = intro
	}
	if explore, err := s.repo.ContentRepo.ListExplore(event.ID); err == nil {
		content.PreEventExplore = explore
	}
	if happening, err := s.repo.ContentRepo.ListHappening(event.ID); err == nil {
		content.PreEventHappening = happening
	}
	return content, nil
}

func (s *ContentService) ListDays(actor *models.Admin, key string) ([]models.EventDay, error) {
	event, err := s.authorizedEvent(actor, key)
	if err != nil {
		return nil, err
	}
	return s.repo.ContentRepo.ListDays(event.ID)
}

func (s *ContentService) AddDay(actor *models.Admin, key string, date *time.Time, imageURL, description string, sortOrder int) (*models.EventDay, error) {
	event, err := s.authorizedEvent(actor, key)
	if err != nil {
		return nil, err
	}

	day := &models.EventDay{
		ID:          uuid.New(),
		EventID:     event.ID,
		Date:        date,
		ImageURL:    imageURL,
		Description: description,
		SortOrder:   sortOrder,
	}
	if err := s.repo.ContentRepo.CreateDay(day); err != nil {
		return nil, err
	}
	return day, nil
}

func (s *ContentService) RemoveDay(actor *models.Admin, key string, id uuid.UUID) error {
	if _, err := s.authorizedEvent(actor, key); err != nil {
		return err
	}
	return s.repo.ContentRepo.DeleteDay(id)
}

func (s *ContentService) ListSessions(actor *models.Admin, key string) ([]models.EventSession, error) {
	event, err := s.authorizedEvent(actor, key)
	if err != nil {
		return nil, err
	}
	return s.repo.ContentRepo.ListSessions(event.ID)
}

type AddSessionRequest struct {
	Name        string
	Description string
	ImageURL    string
	VenueName   string
	Latitude    *float64
	Longitude   *float64
	StartTime   *time.Time
	EndTime     *time.Time
	SortOrder   int
}

func (s *ContentService) AddSession(actor *models.Admin, key string, req AddSessionRequest) (*models.EventSession, error) {
	event, err := s.authorizedEvent(actor, key)
	if err != nil {
		return nil, err
	}

	session := &models.EventSession{
		ID:          uuid.New(),
		EventID:     event.ID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VenueName:   req.VenueName,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		SortOrder:   req.SortOrder,
	}
	if err := s.repo.ContentRepo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *ContentService) RemoveSession(actor *models.Admin, key string, id uuid.UUID) error {
	if _, err := s.authorizedEvent(actor, key); err != nil {
		return err
	}
	return s.repo.ContentRepo.DeleteSession(id)
}

func (s *ContentService) AddIntro(actor *models.Admin, key, title, description, imageURL string, sortOrder int) (*models.EventIntro, error) {
	event, err := s.authorizedEvent(actor, key)
	if err != nil {
		return nil, err
	}

	intro := &models.EventIntro{
		ID:          uuid.New(),
		EventID:     event.ID,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		SortOrder:   sortOrder,
	}
	if err := s.repo.ContentRepo.CreateIntro(intro); err != nil {
		return nil, err
	}
	return intro, nil
}

func (s *ContentService) RemoveIntro(actor *models.Admin, key string, id uuid.UUID) error {
	if _, err := s.authorizedEvent(actor, key); err != nil {
		return err
	}
	return s.repo.ContentRepo.DeleteIntro(id)
}

func (s *ContentService) AddExplore(actor *models.Admin, key, name, imageURL string, sortOrder int) (*models.PreEventExplore, error) {
	event, err := s.authorizedEvent(actor, key)
	if err != nil {
		return nil, err
	}

	item := &models.PreEventExplore{
		ID:        uuid.New(),
		EventID:   event.ID,
		Name:      name,
		ImageURL:  imageURL,
		SortOrder: sortOrder,
	}
	if err := s.repo.ContentRepo.CreateExplore(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ContentService) RemoveExplore(actor *models.Admin, key string, id uuid.UUID) error {
	if _, err := s.authorizedEvent(actor, key); err != nil {
		return err
	}
	return s.repo.ContentRepo.DeleteExplore(id)
}

func (s *ContentService) AddHappening(actor *models.Admin, key, imageURL, altText string, sortOrder int) (*models.PreEventHappening, error) {
	event, err := s.authorizedEvent(actor, key)
	if err != nil {
		return nil, err
	}

	item := &models.PreEventHappening{
		ID:        uuid.New(),
		EventID:   event.ID,
		ImageURL:  imageURL,
		AltText:   altText,
		SortOrder: sortOrder,
	}
	if err := s.repo.ContentRepo.CreateHappening(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ContentService) RemoveHappening(actor *models.Admin, key string, id uuid.UUID) error {
	if _, err := s.authorizedEvent(actor, key); err != nil {
		return err
	}
	return s.repo.ContentRepo.DeleteHappening(id)
}
