package handlers

import (
	"event-admin-backend/internal/services"
	"event-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AppLogin issues an OTP for the mobile client. SMS dispatch is delegated to
// an external gateway, so the code rides back in the response body.
func (h *Handler) AppLogin(c *fiber.Ctx) error {
	req := c.Locals("validatedBody").(*services.RequestOTPInput)

	result, err := h.otpSvc.RequestOTP(*req)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"otp":        result.Otp,
		"message":    "OTP sent successfully",
		"expires_in": result.ExpiresIn,
	})
}

func (h *Handler) AppVerifyOtp(c *fiber.Ctx) error {
	req := c.Locals("validatedBody").(*services.VerifyOTPInput)

	result, err := h.otpSvc.VerifyOTP(*req)
	if err != nil {
		return appRespondErr(c, err)
	}
	return utils.AppSuccess(c, result, "OTP verified successfully")
}

func (h *Handler) AppProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		return utils.Error(c, "user_id is required", fiber.StatusBadRequest)
	}

	profile, err := h.appSvc.GetProfile(userID)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, profile, "")
}

type appEditProfileRequest struct {
	UserID          uuid.UUID `json:"user_id"`
	Username        *string   `json:"username"`
	ProfileImageURL *string   `json:"profile_image_url"`
	InstaID         *string   `json:"insta_id"`
}

func (h *Handler) AppEditProfile(c *fiber.Ctx) error {
	var req appEditProfileRequest
	if err := c.BodyParser(&req); err != nil || req.UserID == uuid.Nil {
		return utils.Error(c, "user_id is required", fiber.StatusBadRequest)
	}

	user, err := h.appSvc.EditProfile(req.UserID, services.EditProfileRequest{
		Username:        req.Username,
		ProfileImageURL: req.ProfileImageURL,
		InstaID:         req.InstaID,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, user, "Profile updated")
}

type appVenueDetailsRequest struct {
	UserID  string `json:"user_id"`
	EventID string `json:"event_id"`
}

// AppVenueDetails accepts user and event keys from the query string, the
// body, or the X-User-Id / X-Event-Id headers, in that order.
func (h *Handler) AppVenueDetails(c *fiber.Ctx) error {
	var body appVenueDetailsRequest
	_ = c.BodyParser(&body)

	rawUser := firstNonEmpty(c.Query("user_id"), body.UserID, c.Get("X-User-Id"))
	eventKey := firstNonEmpty(c.Query("event_id"), body.EventID, c.Get("X-Event-Id"))

	userID, err := uuid.Parse(rawUser)
	if err != nil {
		return utils.AppError(c, "user_id is required", fiber.StatusBadRequest)
	}
	if eventKey == "" {
		return utils.AppError(c, "event_id is required", fiber.StatusBadRequest)
	}

	venue, err := h.appSvc.VenueDetails(userID, eventKey)
	if err != nil {
		return appRespondErr(c, err)
	}
	return utils.AppSuccess(c, venue, "Venue details")
}

type appInfoRequest struct {
	UserID        *uuid.UUID `json:"user_id"`
	EventID       string     `json:"event_id"`
	FcmToken      string     `json:"fcm_token"`
	Platform      string     `json:"platform"`
	AppVersion    string     `json:"app_version"`
	DeviceVersion string     `json:"device_version"`
}

func (h *Handler) AppInfo(c *fiber.Ctx) error {
	var req appInfoRequest
	_ = c.BodyParser(&req)

	info, err := h.appSvc.GetInfo(services.AppInfoRequest{
		UserID:        req.UserID,
		EventCode:     req.EventID,
		FcmToken:      req.FcmToken,
		Platform:      req.Platform,
		AppVersion:    req.AppVersion,
		DeviceVersion: req.DeviceVersion,
	})
	if err != nil {
		return appRespondErr(c, err)
	}
	return utils.AppSuccess(c, info, "App info")
}

func (h *Handler) AppGetLoginCode(c *fiber.Ctx) error {
	eventKey := c.Query("event_id")
	if eventKey == "" {
		return utils.Error(c, "event_id is required", fiber.StatusBadRequest)
	}

	bundle, err := h.appSvc.GetLoginCode(eventKey)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"event_id":   bundle.EventID,
		"event_name": bundle.EventName,
		"login_code": bundle.LoginCode,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
