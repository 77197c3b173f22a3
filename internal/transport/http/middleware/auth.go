package middleware

import (
	"net/http"
	"strings"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/token"

	"github.com/gofiber/fiber/v2"
)

const callerIDKey = "caller_id"

// Auth validates the Bearer access token and stores the caller id in locals.
func Auth(tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return unauthorized(c)
		}

		userID, tokenType, err := tokens.Parse(raw)
		if err != nil || tokenType != token.TypeAccess {
			return unauthorized(c)
		}

		c.Locals(callerIDKey, userID)
		return c.Next()
	}
}

// CallerID returns the authenticated user id stored by Auth.
func CallerID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(callerIDKey).(int64)
	return id
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: entities.ErrUnauthorized.Error(),
	})
}
