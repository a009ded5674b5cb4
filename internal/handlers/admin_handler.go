package handlers

import (
	"event-admin-backend/internal/middleware"
	"event-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (h *Handler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.authSvc.ListAdmins(middleware.AdminFromContext(c))
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, admins, "")
}

func (h *Handler) CreateAdmin(c *fiber.Ctx) error {
	req := c.Locals("validatedBody").(*createAdminRequest)

	admin, err := h.authSvc.CreateAdmin(middleware.AdminFromContext(c), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, admin, "Admin created", fiber.StatusCreated)
}

func (h *Handler) DeleteAdmin(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Invalid admin id", fiber.StatusBadRequest)
	}

	if err := h.authSvc.DeleteAdmin(middleware.AdminFromContext(c), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Admin deleted")
}
