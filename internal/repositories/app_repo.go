package repositories

import (
	"time"

	"event-admin-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppRepository interface {
	// ReplaceOtp installs otp as the single live OTP for its
	// (event, country_code, phone_number) key in one statement.
	ReplaceOtp(otp *models.AppOtp) error
	// ConsumeOtp marks the matching live OTP verified. Returns false when no
	// row matches, whether the code was wrong, already consumed, or expired.
	ConsumeOtp(eventID uuid.UUID, countryCode, phoneNumber, code string, now time.Time) (bool, error)
	CountLiveOtps(eventID uuid.UUID, countryCode, phoneNumber string, now time.Time) (int64, error)

	GetUser(eventID uuid.UUID, countryCode, phoneNumber string) (*models.AppUser, error)
	GetUserByID(id uuid.UUID) (*models.AppUser, error)
	CreateUser(user *models.AppUser) error
	UpdateUser(id uuid.UUID, updates map[string]interface{}) (*models.AppUser, error)

	// UpsertDevice inserts or refreshes the device row keyed by
	// (user_id, event_id, fcm_token) and returns the current row.
	UpsertDevice(device *models.AppDevice) (*models.AppDevice, error)

	GetProfileSettings() (*models.AppProfileSetting, error)
}

type appRepo struct {
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) AppRepository {
	return &appRepo{db: db}
}

func (r *appRepo) ReplaceOtp(otp *models.AppOtp) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "event_id"}, {Name: "country_code"}, {Name: "phone_number"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"username", "otp", "expires_at", "is_verified", "updated_at",
		}),
	}).Create(otp).Error
}

func (r *appRepo) ConsumeOtp(eventID uuid.UUID, countryCode, phoneNumber, code string, now time.Time) (bool, error) {
	result := r.db.Model(&models.AppOtp{}).
		Where("event_id = ? AND country_code = ? AND phone_number = ? AND otp = ? AND is_verified = ? AND expires_at > ?",
			eventID, countryCode, phoneNumber, code, false, now).
		Update("is_verified", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *appRepo) CountLiveOtps(eventID uuid.UUID, countryCode, phoneNumber string, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.AppOtp{}).
		Where("event_id = ? AND country_code = ? AND phone_number = ? AND is_verified = ? AND expires_at > ?",
			eventID, countryCode, phoneNumber, false, now).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *appRepo) GetUser(eventID uuid.UUID, countryCode, phoneNumber string) (*models.AppUser, error) {
	var user models.AppUser
	err := r.db.Where("event_id = ? AND country_code = ? AND phone_number = ?",
		eventID, countryCode, phoneNumber).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *appRepo) GetUserByID(id uuid.UUID) (*models.AppUser, error) {
	var user models.AppUser
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *appRepo) CreateUser(user *models.AppUser) error {
	return r.db.Create(user).Error
}

func (r *appRepo) UpdateUser(id uuid.UUID, updates map[string]interface{}) (*models.AppUser, error) {
	if len(updates) > 0 {
		result := r.db.Model(&models.AppUser{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetUserByID(id)
}

func (r *appRepo) UpsertDevice(device *models.AppDevice) (*models.AppDevice, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "event_id"}, {Name: "fcm_token"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"platform":       device.Platform,
			"device_type":    device.DeviceType,
			"app_version":    gorm.Expr("COALESCE(NULLIF(EXCLUDED.app_version, ''), app_devices.app_version)"),
			"device_version": gorm.Expr("COALESCE(NULLIF(EXCLUDED.device_version, ''), app_devices.device_version)"),
			"updated_at":     time.Now(),
		}),
	}).Create(device).Error
	if err != nil {
		return nil, err
	}

	var current models.AppDevice
	err = r.db.Where("user_id = ? AND event_id = ? AND fcm_token = ?",
		device.UserID, device.EventID, device.FcmToken).First(&current).Error
	if err != nil {
		return nil, err
	}
	return &current, nil
}

func (r *appRepo) GetProfileSettings() (*models.AppProfileSetting, error) {
	var settings models.AppProfileSetting
	if err := r.db.Order("created_at ASC").First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
