package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/models"
	"event-admin-backend/internal/repositories"
	"event-admin-backend/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	otpTTL = 10 * time.Minute

	defaultPrimaryColor   = "#5550B7"
	defaultSecondaryColor = "#FFFFFF"
)

var (
	phonePattern = regexp.MustCompile(`^\d+$`)
	otpPattern   = regexp.MustCompile(`^\d{4}$`)
)

// OtpService owns the unauthenticated mobile login path: OTP issuance,
// verification, and the user/device provisioning that follows a successful
// verify.
type OtpService struct {
	repo     *repositories.Repository
	eventSvc *EventService
	cfg      *config.Config
}

func NewOtpService(repo *repositories.Repository, eventSvc *EventService, cfg *config.Config) *OtpService {
	return &OtpService{repo: repo, eventSvc: eventSvc, cfg: cfg}
}

type RequestOTPInput struct {
	CountryCode string `json:"country_code" validate:"required"`
	PhoneNumber string `json:"phone_no" validate:"required"`
	EventCode   string `json:"event_code" validate:"required"`
	Username    string `json:"username"`
}

type RequestOTPResult struct {
	Otp       string
	ExpiresIn int
}

type VerifyOTPInput struct {
	CountryCode   string `json:"country_code" validate:"required"`
	PhoneNumber   string `json:"phone_no" validate:"required"`
	EventCode     string `json:"event_code" validate:"required"`
	Otp           string `json:"otp" validate:"required"`
	Username      string `json:"username"`
	FcmToken      string `json:"fcm_token"`
	Platform      string `json:"platform"`
	AppVersion    string `json:"app_version"`
	DeviceVersion string `json:"device_version"`
}

type VerifiedUser struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	OtpPhoneNo string    `json:"otp_phone_no"`
}

type VerifiedEvent struct {
	EventID        string `json:"event_id"`
	EventLoginCode string `json:"event_login_code"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AppVersion     string `json:"app_version"`
	ForcefulUpdate bool   `json:"forceful_update"`
}

type VerifiedDevice struct {
	ID         uuid.UUID `json:"id"`
	DeviceID   string    `json:"device_id"`
	DeviceType string    `json:"device_type"`
	Token      string    `json:"token"`
	Version    string    `json:"version"`
}

type VerifyOTPResult struct {
	User   VerifiedUser    `json:"user"`
	Event  VerifiedEvent   `json:"event"`
	Device *VerifiedDevice `json:"device,omitempty"`
}

// RequestOTP issues a fresh code for (event, country_code, phone). Any
// previously issued live code for the same key is superseded in the same
// statement. The code is returned to the caller; SMS dispatch is delegated to
// an external gateway.
func (s *OtpService) RequestOTP(in RequestOTPInput) (*RequestOTPResult, error) {
	if !phonePattern.MatchString(in.PhoneNumber) {
		return nil, fmt.Errorf("%w: phone number must contain digits only", ErrBadRequest)
	}

	event, err := s.loginEvent(in.EventCode)
	if err != nil {
		return nil, err
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, err
	}

	otp := &models.AppOtp{
		ID:          uuid.New(),
		EventID:     event.ID,
		CountryCode: in.CountryCode,
		PhoneNumber: in.PhoneNumber,
		Username:    in.Username,
		Otp:         code,
		ExpiresAt:   time.Now().Add(otpTTL),
		IsVerified:  false,
	}
	if err := s.repo.AppRepo.ReplaceOtp(otp); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"event": event.EventID,
		"phone": in.CountryCode + in.PhoneNumber,
	}).Info("otp issued")

	return &RequestOTPResult{
		Otp:       code,
		ExpiresIn: int(otpTTL.Seconds()),
	}, nil
}

// VerifyOTP consumes the presented code and provisions the mobile user, plus
// the device row when fcm_token and platform are supplied. Wrong, consumed,
// and expired codes all fail the same way.
func (s *OtpService) VerifyOTP(in VerifyOTPInput) (*VerifyOTPResult, error) {
	if !phonePattern.MatchString(in.PhoneNumber) {
		return nil, fmt.Errorf("%w: phone number must contain digits only", ErrBadRequest)
	}
	if !otpPattern.MatchString(in.Otp) {
		return nil, fmt.Errorf("%w: otp must be a 4-digit code", ErrBadRequest)
	}

	event, err := s.loginEvent(in.EventCode)
	if err != nil {
		return nil, err
	}

	consumed, err := s.repo.AppRepo.ConsumeOtp(event.ID, in.CountryCode, in.PhoneNumber, in.Otp, time.Now())
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, fmt.Errorf("%w: Invalid or expired OTP", ErrUnauthenticated)
	}

	user, err := s.provisionUser(event.ID, in.CountryCode, in.PhoneNumber, in.Username)
	if err != nil {
		return nil, err
	}

	result := &VerifyOTPResult{
		User: VerifiedUser{
			UserID:     user.ID,
			Name:       user.Username,
			OtpPhoneNo: in.CountryCode + in.PhoneNumber,
		},
		Event: s.verifiedEvent(event),
	}

	if in.FcmToken != "" && in.Platform != "" {
		device, err := s.repo.AppRepo.UpsertDevice(&models.AppDevice{
			ID:            uuid.New(),
			UserID:        user.ID,
			EventID:       event.ID,
			FcmToken:      in.FcmToken,
			DeviceType:    DeriveDeviceType(in.Platform),
			Platform:      in.Platform,
			AppVersion:    in.AppVersion,
			DeviceVersion: in.DeviceVersion,
		})
		if err != nil {
			return nil, err
		}
		result.Device = &VerifiedDevice{
			ID:         device.ID,
			DeviceID:   device.ID.String(),
			DeviceType: device.DeviceType,
			Token:      device.FcmToken,
			Version:    device.AppVersion,
		}
	}

	return result, nil
}

// DeriveDeviceType maps a raw platform string to one of android, ios, or web.
func DeriveDeviceType(platform string) string {
	p := strings.ToLower(platform)
	switch {
	case strings.Contains(p, "android"):
		return models.DeviceTypeAndroid
	case strings.Contains(p, "ios"), strings.Contains(p, "iphone"), strings.Contains(p, "ipad"):
		return models.DeviceTypeIOS
	default:
		return models.DeviceTypeWeb
	}
}

// loginEvent resolves the mobile-supplied event code and applies the login
// gate: the event must be enabled and active.
func (s *OtpService) loginEvent(code string) (*models.Event, error) {
	event, err := s.eventSvc.ResolveEventByLoginCode(code)
	if err != nil {
		return nil, err
	}
	if !event.IsEnabled || event.Status != models.EventStatusActive {
		return nil, fmt.Errorf("%w: event is not accepting logins", ErrForbidden)
	}
	return event, nil
}

func (s *OtpService) provisionUser(eventID uuid.UUID, countryCode, phoneNumber, username string) (*models.AppUser, error) {
	user, err := s.repo.AppRepo.GetUser(eventID, countryCode, phoneNumber)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		user = &models.AppUser{
			ID:          uuid.New(),
			EventID:     eventID,
			CountryCode: countryCode,
			PhoneNumber: phoneNumber,
			Username:    username,
		}
		if err := s.repo.AppRepo.CreateUser(user); err != nil {
			return nil, err
		}
		return user, nil
	}

	if username != "" && username != user.Username {
		return s.repo.AppRepo.UpdateUser(user.ID, map[string]interface{}{"username": username})
	}
	return user, nil
}

func (s *OtpService) verifiedEvent(event *models.Event) VerifiedEvent {
	primary := event.PrimaryColor
	if primary == "" {
		primary = defaultPrimaryColor
	}
	secondary := event.SecondaryColor
	if secondary == "" {
		secondary = defaultSecondaryColor
	}

	appVersion := ""
	if settings, err := s.repo.AppRepo.GetProfileSettings(); err == nil {
		appVersion = settings.AppVersion
	}

	return VerifiedEvent{
		EventID:        event.EventID,
		EventLoginCode: event.LoginCode,
		PrimaryColor:   primary,
		SecondaryColor: secondary,
		AppVersion:     appVersion,
		ForcefulUpdate: false,
	}
}
