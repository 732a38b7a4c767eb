package handlers

import (
	"github.com/arzan03/ArtistryCamp/internal/middleware"
	"github.com/arzan03/ArtistryCamp/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) RegisterUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return models.NewBadRequest("invalid request body")
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.users.RegisterIfAbsent(ctx, user)
	if err != nil {
		return err
	}
	if res.Exists {
		return c.JSON(fiber.Map{"message": "user already exists"})
	}
	h.metrics.RecordRegistration()
	return c.JSON(res.Inserted)
}

func (h *Handler) UpsertUser(c *fiber.Ctx) error {
	var profile models.Profile
	if err := c.BodyParser(&profile); err != nil {
		return models.NewBadRequest("invalid request body")
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.users.UpsertByEmail(ctx, c.Params("email"), profile)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	users, err := h.users.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (h *Handler) ListInstructors(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	users, err := h.users.ListInstructors(ctx)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// CheckAdmin answers {"admin": bool}. Callers only learn their own role;
// asking about another email answers false.
func (h *Handler) CheckAdmin(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.CallerEmail(c) {
		return c.JSON(fiber.Map{"admin": false})
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	ok, err := h.users.IsAdmin(ctx, email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admin": ok})
}

// CheckInstructor answers {"instructor": bool} with the same self-only rule
// as CheckAdmin.
func (h *Handler) CheckInstructor(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.CallerEmail(c) {
		return c.JSON(fiber.Map{"instructor": false})
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	ok, err := h.users.IsInstructor(ctx, email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"instructor": ok})
}

func (h *Handler) MakeAdmin(c *fiber.Ctx) error {
	return h.setRole(c, models.RoleAdmin)
}

func (h *Handler) MakeInstructor(c *fiber.Ctx) error {
	return h.setRole(c, models.RoleInstructor)
}

func (h *Handler) setRole(c *fiber.Ctx, role string) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.users.SetRole(ctx, c.Params("id"), role)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
