package middleware

import (
	"context"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AdminChecker reports whether the user with the given email holds the
// admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AdminMiddleware must run after AuthMiddleware. The role is looked up on
// every request because tokens do not carry it and are not reissued when it
// changes.
func AdminMiddleware(users AdminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, err := users.IsAdmin(c.UserContext(), CallerEmail(c))
		if err != nil {
			return err
		}
		if !ok {
			return models.NewForbidden("forbidden access")
		}
		return c.Next()
	}
}
