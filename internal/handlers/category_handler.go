package handlers

import (
	"event-admin-backend/internal/middleware"
	"event-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type categoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categorySvc.ListCategories(middleware.AdminFromContext(c))
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, categories, "")
}

func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	name, description := "", ""
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}

	category, err := h.categorySvc.CreateCategory(middleware.AdminFromContext(c), name, description)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, category, "Category created", fiber.StatusCreated)
}

func (h *Handler) GetCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Invalid category id", fiber.StatusBadRequest)
	}

	category, err := h.categorySvc.GetCategory(middleware.AdminFromContext(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, category, "")
}

func (h *Handler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Invalid category id", fiber.StatusBadRequest)
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	category, err := h.categorySvc.UpdateCategory(middleware.AdminFromContext(c), id, req.Name, req.Description)
	if err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, category, "Category updated")
}

func (h *Handler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Error(c, "Invalid category id", fiber.StatusBadRequest)
	}
	if err := h.categorySvc.DeleteCategory(middleware.AdminFromContext(c), id); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Category deleted")
}
