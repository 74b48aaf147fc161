package middleware

import (
	"strings"

	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	ExpeditionIDKey     = "expeditionID" // fiber.Ctx locals key
)

// Protected requires a valid expedition token and stores its expedition ID in the request locals.
func Protected(tokens service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing", nil)
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer", nil)
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty", nil)
		}

		claims, err := tokens.Validate(c.UserContext(), tokenString)
		if err != nil {
			return err
		}

		c.Locals(ExpeditionIDKey, claims.ExpeditionID)
		return c.Next()
	}
}

// ExpeditionID returns the expedition authenticated by Protected.
func ExpeditionID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(ExpeditionIDKey).(string)
	if !ok || id == "" {
		return "", domain.NewUnauthorizedError("expedition is not authenticated", nil)
	}
	return id, nil
}
