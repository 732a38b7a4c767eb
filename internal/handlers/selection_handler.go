package handlers

import (
	"github.com/arzan03/ArtistryCamp/internal/middleware"
	"github.com/arzan03/ArtistryCamp/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) SelectClass(c *fiber.Ctx) error {
	var sel models.Selection
	if err := c.BodyParser(&sel); err != nil {
		return models.NewBadRequest("invalid request body")
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.selections.Select(ctx, sel)
	if err != nil {
		return err
	}
	h.metrics.RecordSelection()
	return c.JSON(res)
}

// ListSelections serves GET /selected?email=. Without the query parameter
// it answers an empty list.
func (h *Handler) ListSelections(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	selections, err := h.selections.ListByEmail(ctx, c.Query("email"), middleware.CallerEmail(c))
	if err != nil {
		return err
	}
	return c.JSON(selections)
}
