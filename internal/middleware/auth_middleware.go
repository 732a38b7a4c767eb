package middleware

import (
	"strings"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"github.com/arzan03/ArtistryCamp/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware.
const (
	LocalClaims = "claims"
	LocalEmail  = "email"
)

// TokenVerifier decodes a bearer token.
type TokenVerifier interface {
	Verify(token string) (services.Claims, error)
}

// AuthMiddleware requires an Authorization header of the form
// "Bearer <token>" and stores the decoded claims and caller email in the
// request locals.
func AuthMiddleware(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return models.NewUnauthorized("unauthorized access")
		}

		// The token is the second field; "Bearer" itself is not checked.
		fields := strings.Fields(header)
		if len(fields) < 2 {
			return models.NewUnauthorized("unauthorized access")
		}

		claims, err := tokens.Verify(fields[1])
		if err != nil {
			return models.NewUnauthorized("unauthorized access")
		}

		c.Locals(LocalClaims, claims)
		c.Locals(LocalEmail, services.EmailFromClaims(claims))
		return c.Next()
	}
}

// CallerEmail returns the email of the authenticated caller, or "" when
// AuthMiddleware did not run.
func CallerEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(LocalEmail).(string)
	return email
}
