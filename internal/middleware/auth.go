// Package middleware provides authentication and logging middleware for the application.
package middleware

import (
	"context"
	"strings"

	"gatorkut/internal/auth"
	"gatorkut/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired returns a middleware that enforces authentication for
// protected routes. The Authorization header must be exactly
// "Bearer <token>"; the scheme is matched case-sensitively. On success the
// decoded identity is stored in Locals ("userID", "username") and in the
// request context for the rest of the pipeline.
func AuthRequired(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization header required"))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid authorization header format"))
		}

		identity, err := tokens.Verify(parts[1])
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		c.Locals("userID", identity.UserID)
		c.Locals("username", identity.Username)

		ctx := context.WithValue(c.UserContext(), UserIDKey, identity.UserID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
