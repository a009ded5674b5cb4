package utils

import "github.com/gofiber/fiber/v2"

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *fiber.Ctx, data interface{}, message string, statusCode ...int) error {
	code := fiber.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	return c.Status(code).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *fiber.Ctx, message string, statusCode ...int) error {
	code := fiber.StatusBadRequest
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	return c.Status(code).JSON(Response{
		Success: false,
		Error:   message,
	})
}

// AppResponse is the mobile envelope: status 1 on success, 0 on failure,
// layered on top of the HTTP status code.
type AppResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func AppSuccess(c *fiber.Ctx, data interface{}, message string) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(fiber.StatusOK).JSON(AppResponse{
		Status:  1,
		Message: message,
		Data:    data,
	})
}

func AppError(c *fiber.Ctx, message string, statusCode int) error {
	return c.Status(statusCode).JSON(AppResponse{
		Status:  0,
		Message: message,
		Data:    fiber.Map{},
	})
}
