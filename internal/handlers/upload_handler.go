package handlers

import (
	"event-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadImage accepts a multipart form with file, category, and an optional
// filename base, and returns the stored image's public path.
func (h *Handler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.Error(c, "file is required", fiber.StatusBadRequest)
	}

	category := c.FormValue("category")
	if err := utils.ValidateImageCategory(category); err != nil {
		return utils.Error(c, err.Error(), fiber.StatusBadRequest)
	}

	if h.cfg.MaxUploadSize > 0 && file.Size > h.cfg.MaxUploadSize {
		return utils.Error(c, "file is too large", fiber.StatusBadRequest)
	}

	ext, err := utils.ValidateImageFile(file)
	if err != nil {
		return utils.Error(c, err.Error(), fiber.StatusBadRequest)
	}

	filename := utils.GenerateImageFilename(c.FormValue("filename"), ext)
	path, err := utils.SaveImage(file, h.cfg.UploadDir, category, filename)
	if err != nil {
		return respondErr(c, err)
	}

	return utils.Success(c, fiber.Map{"path": path}, "Image uploaded", fiber.StatusCreated)
}

type deleteImageRequest struct {
	Path string `json:"path"`
}

// DeleteImage removes a previously uploaded image. Deleting a missing file
// succeeds.
func (h *Handler) DeleteImage(c *fiber.Ctx) error {
	var req deleteImageRequest
	if err := c.BodyParser(&req); err != nil || req.Path == "" {
		return utils.Error(c, "path is required", fiber.StatusBadRequest)
	}

	if err := utils.DeleteImage(h.cfg.UploadDir, req.Path); err != nil {
		return respondErr(c, err)
	}
	return utils.Success(c, nil, "Image deleted")
}
