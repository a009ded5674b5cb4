package services

import (
	"testing"
	"time"

	"event-admin-backend/internal/models"
	"event-admin-backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOtpService(t *testing.T) (*OtpService, *repositories.Repository) {
	t.Helper()
	repo := newTestRepository()
	eventSvc := NewEventService(repo, testConfig())
	return NewOtpService(repo, eventSvc, testConfig()), repo
}

func seedLoginEvent(t *testing.T, repo *repositories.Repository) *models.Event {
	t.Helper()
	event := &models.Event{
		ID:        uuid.New(),
		EventID:   "EVT-1700000000000-ABCDEFG",
		Name:      "Summit",
		LoginCode: "SUMMIT24",
		Status:    models.EventStatusActive,
		IsEnabled: true,
	}
	require.NoError(t, repo.EventRepo.CreateEvent(event))
	return event
}

func TestRequestOTP(t *testing.T) {
	svc, repo := newOtpService(t)
	event := seedLoginEvent(t, repo)

	t.Run("issues a 4-digit code with a 10 minute ttl", func(t *testing.T) {
		result, err := svc.RequestOTP(RequestOTPInput{
			CountryCode: "+94",
			PhoneNumber: "771234567",
			EventCode:   event.LoginCode,
		})
		require.NoError(t, err)
		assert.Regexp(t, `^\d{4}$`, result.Otp)
		assert.Equal(t, 600, result.ExpiresIn)
	})

	t.Run("second request supersedes the first", func(t *testing.T) {
		first, err := svc.RequestOTP(RequestOTPInput{
			CountryCode: "+94", PhoneNumber: "770000001", EventCode: event.LoginCode,
		})
		require.NoError(t, err)
		second, err := svc.RequestOTP(RequestOTPInput{
			CountryCode: "+94", PhoneNumber: "770000001", EventCode: event.LoginCode,
		})
		require.NoError(t, err)

		count, err := repo.AppRepo.CountLiveOtps(event.ID, "+94", "770000001", time.Now())
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		// Only the latest code is consumable. With random codes first and
		// second may collide, so only assert the stale-code failure when they
		// differ.
		if first.Otp != second.Otp {
			_, err = svc.VerifyOTP(VerifyOTPInput{
				CountryCode: "+94", PhoneNumber: "770000001",
				EventCode: event.LoginCode, Otp: first.Otp,
			})
			assert.ErrorIs(t, err, ErrUnauthenticated)
		}
	})

	t.Run("non-numeric phone", func(t *testing.T) {
		_, err := svc.RequestOTP(RequestOTPInput{
			CountryCode: "+94", PhoneNumber: "77-12345", EventCode: event.LoginCode,
		})
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("unknown event code", func(t *testing.T) {
		_, err := svc.RequestOTP(RequestOTPInput{
			CountryCode: "+94", PhoneNumber: "771234567", EventCode: "NOPE",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("disabled event rejects logins", func(t *testing.T) {
		_, err := repo.EventRepo.UpdateEvent(event.ID, map[string]interface{}{"is_enabled": false})
		require.NoError(t, err)
		defer func() {
			_, err := repo.EventRepo.UpdateEvent(event.ID, map[string]interface{}{"is_enabled": true})
			require.NoError(t, err)
		}()

		_, err = svc.RequestOTP(RequestOTPInput{
			CountryCode: "+94", PhoneNumber: "771234567", EventCode: event.LoginCode,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("inactive event rejects logins", func(t *testing.T) {
		_, err := repo.EventRepo.UpdateEvent(event.ID, map[string]interface{}{"status": models.EventStatusCompleted})
		require.NoError(t, err)
		defer func() {
			_, err := repo.EventRepo.UpdateEvent(event.ID, map[string]interface{}{"status": models.EventStatusActive})
			require.NoError(t, err)
		}()

		_, err = svc.RequestOTP(RequestOTPInput{
			CountryCode: "+94", PhoneNumber: "771234567", EventCode: event.LoginCode,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestVerifyOTP(t *testing.T) {
	svc, repo := newOtpService(t)
	event := seedLoginEvent(t, repo)

	request := func(t *testing.T, phone string) string {
		t.Helper()
		result, err := svc.RequestOTP(RequestOTPInput{
			CountryCode: "+94", PhoneNumber: phone, EventCode: event.LoginCode,
		})
		require.NoError(t, err)
		return result.Otp
	}

	t.Run("creates the user and returns branding fallbacks", func(t *testing.T) {
		code := request(t, "771111111")
		result, err := svc.VerifyOTP(VerifyOTPInput{
			CountryCode: "+94", PhoneNumber: "771111111",
			EventCode: event.LoginCode, Otp: code, Username: "Kasun",
		})
		require.NoError(t, err)

		assert.Equal(t, "Kasun", result.User.Name)
		assert.Equal(t, "+94771111111", result.User.OtpPhoneNo)
		assert.Equal(t, event.EventID, result.Event.EventID)
		assert.Equal(t, event.LoginCode, result.Event.EventLoginCode)
		assert.Equal(t, "#5550B7", result.Event.PrimaryColor)
		assert.Equal(t, "#FFFFFF", result.Event.SecondaryColor)
		assert.Nil(t, result.Device)

		user, err := repo.AppRepo.GetUser(event.ID, "+94", "771111111")
		require.NoError(t, err)
		assert.Equal(t, result.User.UserID, user.ID)
	})

	t.Run("event colors win over fallbacks", func(t *testing.T) {
		_, err := repo.EventRepo.UpdateEvent(event.ID, map[string]interface{}{
			"primary_color": "#112233", "secondary_color": "#445566",
		})
		require.NoError(t, err)
		defer func() {
			_, err := repo.EventRepo.UpdateEvent(event.ID, map[string]interface{}{
				"primary_color": "", "secondary_color": "",
			})
			require.NoError(t, err)
		}()

		code := request(t, "772222222")
		result, err := svc.VerifyOTP(VerifyOTPInput{
			CountryCode: "+94", PhoneNumber: "772222222",
			EventCode: event.LoginCode, Otp: code,
		})
		require.NoError(t, err)
		assert.Equal(t, "#112233", result.Event.PrimaryColor)
		assert.Equal(t, "#445566", result.Event.SecondaryColor)
	})

	t.Run("registers the device when token and platform are present", func(t *testing.T) {
		code := request(t, "773333333")
		result, err := svc.VerifyOTP(VerifyOTPInput{
			CountryCode: "+94", PhoneNumber: "773333333",
			EventCode: event.LoginCode, Otp: code,
			FcmToken: "fcm-abc", Platform: "Android 14", AppVersion: "1.2.0",
		})
		require.NoError(t, err)
		require.NotNil(t, result.Device)
		assert.Equal(t, models.DeviceTypeAndroid, result.Device.DeviceType)
		assert.Equal(t, "fcm-abc", result.Device.Token)
		assert.Equal(t, "1.2.0", result.Device.Version)
	})

	t.Run("wrong code", func(t *testing.T) {
		code := request(t, "774444444")
		wrong := "0000"
		if code == wrong {
			wrong = "9999"
		}
		_, err := svc.VerifyOTP(VerifyOTPInput{
			CountryCode: "+94", PhoneNumber: "774444444",
			EventCode: event.LoginCode, Otp: wrong,
		})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("second verify with the same code fails", func(t *testing.T) {
		code := request(t, "775555555")
		in := VerifyOTPInput{
			CountryCode: "+94", PhoneNumber: "775555555",
			EventCode: event.LoginCode, Otp: code,
		}
		_, err := svc.VerifyOTP(in)
		require.NoError(t, err)
		_, err = svc.VerifyOTP(in)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("expired code is never accepted", func(t *testing.T) {
		require.NoError(t, repo.AppRepo.ReplaceOtp(&models.AppOtp{
			ID:          uuid.New(),
			EventID:     event.ID,
			CountryCode: "+94",
			PhoneNumber: "776666666",
			Otp:         "1234",
			ExpiresAt:   time.Now().Add(-time.Minute),
		}))

		_, err := svc.VerifyOTP(VerifyOTPInput{
			CountryCode: "+94", PhoneNumber: "776666666",
			EventCode: event.LoginCode, Otp: "1234",
		})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("malformed otp fails before lookup", func(t *testing.T) {
		_, err := svc.VerifyOTP(VerifyOTPInput{
			CountryCode: "+94", PhoneNumber: "771111111",
			EventCode: event.LoginCode, Otp: "12a4",
		})
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("new username updates the existing user", func(t *testing.T) {
		code := request(t, "771111111")
		result, err := svc.VerifyOTP(VerifyOTPInput{
			CountryCode: "+94", PhoneNumber: "771111111",
			EventCode: event.LoginCode, Otp: code, Username: "Nuwan",
		})
		require.NoError(t, err)
		assert.Equal(t, "Nuwan", result.User.Name)
	})
}

func TestDeriveDeviceType(t *testing.T) {
	cases := map[string]string{
		"Android 14":        models.DeviceTypeAndroid,
		"android":           models.DeviceTypeAndroid,
		"iOS 17.2":          models.DeviceTypeIOS,
		"iPhone 15 Pro":     models.DeviceTypeIOS,
		"iPad Air":          models.DeviceTypeIOS,
		"Windows 11 Chrome": models.DeviceTypeWeb,
		"":                  models.DeviceTypeWeb,
	}
	for platform, want := range cases {
		assert.Equal(t, want, DeriveDeviceType(platform), "platform %q", platform)
	}
}
