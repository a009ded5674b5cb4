package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles. The role is fixed at creation; no endpoint mutates it.
const (
	RoleSuperAdmin = "super_admin"
	RoleEventAdmin = "event_admin"
)

// Event lifecycle status values. is_enabled is an independent kill switch.
const (
	EventStatusActive    = "active"
	EventStatusInactive  = "inactive"
	EventStatusCompleted = "completed"
)

// Device types derived from the platform string reported by the mobile client.
const (
	DeviceTypeAndroid = "android"
	DeviceTypeIOS     = "ios"
	DeviceTypeWeb     = "web"
)

type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"type:varchar(20);not null;default:'event_admin'" json:"role"` // super_admin|event_admin
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *Admin) IsSuperAdmin() bool {
	return a != nil && a.Role == RoleSuperAdmin
}

// AdminSession backs the signed session cookie. The cookie carries a JWT whose
// sid claim is this row's ID; the row holds the TTL and revocation state.
type AdminSession struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AdminID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"admin_id"`
	Device    string     `json:"device"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (s *AdminSession) Valid(now time.Time) bool {
	return s != nil && s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// AdminEvent grants an event_admin access to one event.
type AdminEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AdminID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_admin_event" json:"admin_id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_admin_event" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

type EventCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Venue struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Address     string    `gorm:"not null" json:"address"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	BgImageURL  string    `json:"bg_image_url,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	City        string    `json:"city,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Facilities []VenueFacility `gorm:"foreignKey:VenueID" json:"facilities,omitempty"`
	Contacts   []VenueContact  `gorm:"foreignKey:VenueID" json:"contacts,omitempty"`
	Photos     []VenuePhoto    `gorm:"foreignKey:VenueID" json:"photos,omitempty"`
}

type VenueFacility struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VenueID   uuid.UUID `gorm:"type:uuid;index;not null" json:"venue_id"`
	Name      string    `gorm:"not null" json:"name"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type VenueContact struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VenueID     uuid.UUID `gorm:"type:uuid;index;not null" json:"venue_id"`
	Name        string    `gorm:"not null" json:"name"`
	ImageURL    string    `json:"image_url,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type VenuePhoto struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VenueID   uuid.UUID `gorm:"type:uuid;index;not null" json:"venue_id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	AltText   string    `json:"alt_text,omitempty"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type Event struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID     string     `gorm:"uniqueIndex;not null" json:"event_id"` // public code, EVT-...
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CategoryID  *uuid.UUID `gorm:"type:uuid" json:"category_id,omitempty"`
	VenueID     *uuid.UUID `gorm:"type:uuid" json:"venue_id,omitempty"`
	LoginCode   string     `gorm:"uniqueIndex;not null" json:"login_code"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"` // active|inactive|completed
	IsEnabled   bool       `gorm:"default:true" json:"is_enabled"`

	// Styling
	SplashImageURL string `json:"splash_image_url,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`

	// Pre-event content block
	BackgroundBannerImageURL string `json:"background_banner_image_url,omitempty"`
	BannerTextColor          string `json:"banner_text_color,omitempty"`
	WelcomeText              string `gorm:"type:text" json:"welcome_text,omitempty"`

	// During-event content block
	DuringBackgroundBannerImageURL string `json:"during_background_banner_image_url,omitempty"`
	DuringBannerTextColor          string `json:"during_banner_text_color,omitempty"`
	DuringWelcomeText              string `gorm:"type:text" json:"during_welcome_text,omitempty"`

	// Post-event content block
	PostBackgroundBannerImageURL string `json:"post_background_banner_image_url,omitempty"`
	PostBannerTextColor          string `json:"post_banner_text_color,omitempty"`
	PostWelcomeText              string `gorm:"type:text" json:"post_welcome_text,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventWithDetails is the assembled read: the event row composed with its
// assigned admins and content collections, each fetched independently.
type EventWithDetails struct {
	Event
	AssignedAdmins    []Admin             `json:"assigned_admins"`
	EventIntro        []EventIntro        `json:"event_intro"`
	PreEventExplore   []PreEventExplore   `json:"pre_event_explore"`
	PreEventHappening []PreEventHappening `json:"pre_event_happening"`
	EventSessions     []EventSession      `json:"event_sessions"`
	EventDays         []EventDay          `json:"event_days"`
}

type EventDay struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"event_id"`
	Date        *time.Time `json:"date,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	SortOrder   int        `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EventSession struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"event_id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	VenueName   string     `json:"venue_name,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	SortOrder   int        `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EventIntro struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID     uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"not null" json:"image_url"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PreEventExplore struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	Name      string    `gorm:"not null" json:"name"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type PreEventHappening struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	AltText   string    `json:"alt_text,omitempty"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// AppUser is a mobile end-user, scoped per event: the same phone number may
// exist under several events as distinct rows.
type AppUser struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_app_user_phone" json:"event_id"`
	CountryCode     string    `gorm:"not null;uniqueIndex:idx_app_user_phone" json:"country_code"`
	PhoneNumber     string    `gorm:"not null;uniqueIndex:idx_app_user_phone" json:"phone_number"`
	Username        string    `json:"username,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	InstaID         string    `json:"insta_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AppOtp holds the single live OTP per (event, country_code, phone_number).
// The unique index backs the ON CONFLICT replace on issuance.
type AppOtp struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_live_otp" json:"event_id"`
	CountryCode string    `gorm:"not null;uniqueIndex:idx_live_otp" json:"country_code"`
	PhoneNumber string    `gorm:"not null;uniqueIndex:idx_live_otp" json:"phone_number"`
	Username    string    `json:"username,omitempty"`
	Otp         string    `gorm:"type:varchar(4);not null" json:"-"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	IsVerified  bool      `gorm:"default:false" json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AppDevice is upserted by its natural key (user_id, event_id, fcm_token).
type AppDevice struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_app_device" json:"user_id"`
	EventID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_app_device" json:"event_id"`
	FcmToken      string    `gorm:"not null;uniqueIndex:idx_app_device" json:"fcm_token"`
	DeviceType    string    `gorm:"type:varchar(10);not null;default:'web'" json:"device_type"` // android|ios|web
	Platform      string    `json:"platform,omitempty"`
	AppVersion    string    `json:"app_version,omitempty"`
	DeviceVersion string    `json:"device_version,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AppProfileSetting is a singleton row of mobile-app profile links and version info.
type AppProfileSetting struct {
	ID                   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserImageURL         string    `json:"user_image_url,omitempty"`
	AboutUsURL           string    `json:"about_us_url,omitempty"`
	PrivacyPolicyURL     string    `json:"privacy_policy_url,omitempty"`
	TermsAndConditionURL string    `json:"terms_and_condition_url,omitempty"`
	AppVersion           string    `json:"app_version,omitempty"`
	AppVersionDetail     string    `json:"app_version_detail,omitempty"`
	InstaID              string    `json:"insta_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
