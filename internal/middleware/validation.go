package middleware

import (
	"reflect"

	"event-admin-backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateBody parses and validates the request body into a fresh instance of
// dest's type, storing it in locals under "validatedBody".
func ValidateBody(dest interface{}) fiber.Handler {
	destType := reflect.TypeOf(dest).Elem()
	return func(c *fiber.Ctx) error {
		body := reflect.New(destType).Interface()
		if err := c.BodyParser(body); err != nil {
			return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
		}

		if err := validate.Struct(body); err != nil {
			validationErrors := err.(validator.ValidationErrors)
			firstError := validationErrors[0]

			var errorMessage string
			switch firstError.Tag() {
			case "required":
				errorMessage = firstError.Field() + " is required"
			case "email":
				errorMessage = "Invalid email format"
			case "min":
				errorMessage = firstError.Field() + " is too short"
			case "max":
				errorMessage = firstError.Field() + " is too long"
			case "uuid":
				errorMessage = "Invalid UUID format"
			default:
				errorMessage = "Validation failed for " + firstError.Field()
			}

			return utils.Error(c, errorMessage, fiber.StatusBadRequest)
		}

		c.Locals("validatedBody", body)
		return c.Next()
	}
}
