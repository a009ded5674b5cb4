package middleware

import (
	"event-admin-backend/internal/config"
	"event-admin-backend/internal/models"
	"event-admin-backend/internal/services"
	"event-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "admin_session"

// SessionMiddleware verifies the signed cookie, then resolves the sid claim
// against the session store. Handlers downstream read the admin from locals.
func SessionMiddleware(cfg *config.Config, authSvc *services.AuthService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(cfg.JWTSecret),
		TokenLookup:  "cookie:" + SessionCookieName,
		ContextKey:   "session_token",
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token := c.Locals("session_token").(*jwt.Token)
			claims := token.Claims.(jwt.MapClaims)

			sid, _ := claims["sid"].(string)
			sessionID, err := uuid.Parse(sid)
			if err != nil {
				return utils.Error(c, "Unauthorized", fiber.StatusUnauthorized)
			}

			admin, err := authSvc.ResolveSession(sessionID)
			if err != nil {
				return utils.Error(c, "Unauthorized", services.HTTPStatus(err))
			}

			c.Locals("admin", admin)
			c.Locals("session_id", sessionID)
			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return utils.Error(c, "Unauthorized", fiber.StatusUnauthorized)
}

// AdminFromContext returns the admin resolved by SessionMiddleware, or nil on
// unauthenticated routes.
func AdminFromContext(c *fiber.Ctx) *models.Admin {
	admin, _ := c.Locals("admin").(*models.Admin)
	return admin
}

// SessionIDFromContext returns the session id behind the presented cookie.
func SessionIDFromContext(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals("session_id").(uuid.UUID)
	return id, ok
}
