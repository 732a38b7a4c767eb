package handlers

import (
	"github.com/arzan03/ArtistryCamp/internal/models"
	"github.com/gofiber/fiber/v2"
)

// IssueToken signs whatever claims the client posts. The email claim is the
// only one the server relies on, so it must be present.
func (h *Handler) IssueToken(c *fiber.Ctx) error {
	claims := map[string]any{}
	if err := c.BodyParser(&claims); err != nil {
		return models.NewBadRequest("invalid request body")
	}
	if email, _ := claims["email"].(string); email == "" {
		return models.NewBadRequest("email is required")
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		return models.NewInternal(err)
	}
	h.metrics.RecordTokenIssued()
	return c.JSON(fiber.Map{"token": token})
}
