package handlers

import (
	"time"

	"event-admin-backend/internal/middleware"
	"event-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role"`
}

// SetupStatus reports whether the first-run setup flow is still open.
func (h *Handler) SetupStatus(c *fiber.Ctx) error {
	needed, err := h.authSvc.SetupNeeded()
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, fiber.Map{"setup_needed": needed}, "")
}

// CreateSuperAdmin bootstraps the first account; closed once any admin exists.
func (h *Handler) CreateSuperAdmin(c *fiber.Ctx) error {
	req := c.Locals("validatedBody").(*createAdminRequest)

	admin, err := h.authSvc.CreateSuperAdmin(req.Email, req.Password, req.Name)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, admin, "Super admin created", fiber.StatusCreated)
}

// Login authenticates the admin and sets the session cookie.
func (h *Handler) Login(c *fiber.Ctx) error {
	req := c.Locals("validatedBody").(*loginRequest)

	result, err := h.authSvc.Login(req.Email, req.Password, c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return respondErr(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    result.Token,
		Expires:  result.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.cfg.Env == "production",
		Path:     "/",
	})

	return utils.Success(c, result, "Login successful")
}

// Logout revokes the presented session and clears the cookie.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if sessionID, ok := middleware.SessionIDFromContext(c); ok {
		if err := h.authSvc.Logout(sessionID); err != nil {
			return respondErr(c, err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return utils.Success(c, nil, "Logged out")
}

// Me returns the authenticated admin.
func (h *Handler) Me(c *fiber.Ctx) error {
	admin := middleware.AdminFromContext(c)
	if admin == nil {
		return utils.Error(c, "Unauthorized", fiber.StatusUnauthorized)
	}
	return utils.Success(c, admin, "")
}
