package services

import (
	"fmt"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/models"
	"event-admin-backend/internal/repositories"

	"github.com/google/uuid"
)

// AppService serves the mobile endpoints that run after OTP login: profile,
// app info, venue details, and the login-code lookup. These are unauthenticated
// aside from the user/event validation each operation performs itself.
type AppService struct {
	repo     *repositories.Repository
	eventSvc *EventService
	venueSvc *VenueService
	cfg      *config.Config
}

func NewAppService(repo *repositories.Repository, eventSvc *EventService, venueSvc *VenueService, cfg *config.Config) *AppService {
	return &AppService{repo: repo, eventSvc: eventSvc, venueSvc: venueSvc, cfg: cfg}
}

type AppProfile struct {
	UserID               uuid.UUID `json:"user_id"`
	Username             string    `json:"username"`
	PhoneNumber          string    `json:"phone_number"`
	ProfileImageURL      string    `json:"profile_image_url"`
	InstaID              string    `json:"insta_id"`
	AboutUsURL           string    `json:"about_us_url"`
	PrivacyPolicyURL     string    `json:"privacy_policy_url"`
	TermsAndConditionURL string    `json:"terms_and_condition_url"`
}

// GetProfile composes the user row with the shared profile-settings links.
// Missing settings degrade to empty links.
func (s *AppService) GetProfile(userID uuid.UUID) (*AppProfile, error) {
	user, err := s.repo.AppRepo.GetUserByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	profile := &AppProfile{
		UserID:          user.ID,
		Username:        user.Username,
		PhoneNumber:     user.CountryCode + user.PhoneNumber,
		ProfileImageURL: user.ProfileImageURL,
		InstaID:         user.InstaID,
	}
	if settings, err := s.repo.AppRepo.GetProfileSettings(); err == nil {
		profile.AboutUsURL = settings.AboutUsURL
		profile.PrivacyPolicyURL = settings.PrivacyPolicyURL
		profile.TermsAndConditionURL = settings.TermsAndConditionURL
	}
	return profile, nil
}

type EditProfileRequest struct {
	Username        *string `json:"username"`
	ProfileImageURL *string `json:"profile_image_url"`
	InstaID         *string `json:"insta_id"`
}

func (s *AppService) EditProfile(userID uuid.UUID, req EditProfileRequest) (*models.AppUser, error) {
	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.ProfileImageURL != nil {
		updates["profile_image_url"] = *req.ProfileImageURL
	}
	if req.InstaID != nil {
		updates["insta_id"] = *req.InstaID
	}

	user, err := s.repo.AppRepo.UpdateUser(userID, updates)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

type AppInfoRequest struct {
	UserID        *uuid.UUID `json:"user_id"`
	EventCode     string     `json:"event_code"`
	FcmToken      string     `json:"fcm_token"`
	Platform      string     `json:"platform"`
	AppVersion    string     `json:"app_version"`
	DeviceVersion string     `json:"device_version"`
}

type AppInfo struct {
	AppVersion       string          `json:"app_version"`
	AppVersionDetail string          `json:"app_version_detail"`
	InstaID          string          `json:"insta_id"`
	Device           *VerifiedDevice `json:"device,omitempty"`
}

// GetInfo returns the published app version info. When the caller also sends
// user_id, fcm_token, and platform, the matching device row is refreshed the
// same way verify-otp does it.
func (s *AppService) GetInfo(req AppInfoRequest) (*AppInfo, error) {
	info := &AppInfo{}
	if settings, err := s.repo.AppRepo.GetProfileSettings(); err == nil {
		info.AppVersion = settings.AppVersion
		info.AppVersionDetail = settings.AppVersionDetail
		info.InstaID = settings.InstaID
	}

	if req.UserID == nil || req.FcmToken == "" || req.Platform == "" {
		return info, nil
	}

	user, err := s.repo.AppRepo.GetUserByID(*req.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	eventID := user.EventID
	if req.EventCode != "" {
		event, err := s.eventSvc.ResolveEvent(req.EventCode)
		if err != nil {
			return nil, err
		}
		eventID = event.ID
	}

	device, err := s.repo.AppRepo.UpsertDevice(&models.AppDevice{
		ID:            uuid.New(),
		UserID:        user.ID,
		EventID:       eventID,
		FcmToken:      req.FcmToken,
		DeviceType:    DeriveDeviceType(req.Platform),
		Platform:      req.Platform,
		AppVersion:    req.AppVersion,
		DeviceVersion: req.DeviceVersion,
	})
	if err != nil {
		return nil, err
	}
	info.Device = &VerifiedDevice{
		ID:         device.ID,
		DeviceID:   device.ID.String(),
		DeviceType: device.DeviceType,
		Token:      device.FcmToken,
		Version:    device.AppVersion,
	}
	return info, nil
}

// VenueDetails validates the user and event, then returns the event's venue
// with its ordered facilities, contacts, and photos.
func (s *AppService) VenueDetails(userID uuid.UUID, eventKey string) (*models.Venue, error) {
	user, err := s.repo.AppRepo.GetUserByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	event, err := s.eventSvc.ResolveEvent(eventKey)
	if err != nil {
		return nil, err
	}
	if !event.IsEnabled {
		return nil, fmt.Errorf("%w: event not found", ErrNotFound)
	}
	if user.EventID != event.ID {
		return nil, fmt.Errorf("%w: user does not belong to this event", ErrForbidden)
	}
	if event.VenueID == nil {
		return nil, fmt.Errorf("%w: no venue configured for this event", ErrNotFound)
	}

	return s.venueSvc.GetVenueDetails(*event.VenueID)
}

type LoginCodeBundle struct {
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`
	LoginCode string `json:"login_code"`
}

// GetLoginCode resolves the public event code to its login code. Disabled
// events are not exposed.
func (s *AppService) GetLoginCode(eventKey string) (*LoginCodeBundle, error) {
	event, err := s.eventSvc.ResolveEvent(eventKey)
	if err != nil {
		return nil, err
	}
	if !event.IsEnabled {
		return nil, fmt.Errorf("%w: event not found", ErrNotFound)
	}
	return &LoginCodeBundle{
		EventID:   event.EventID,
		EventName: event.Name,
		LoginCode: event.LoginCode,
	}, nil
}
