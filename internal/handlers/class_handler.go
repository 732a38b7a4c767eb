package handlers

import (
	"strings"

	"github.com/arzan03/ArtistryCamp/internal/middleware"
	"github.com/arzan03/ArtistryCamp/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) SubmitClass(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return models.NewBadRequest("invalid request body")
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.classes.Submit(ctx, class)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *Handler) ListClasses(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	classes, err := h.classes.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(classes)
}

func (h *Handler) ListApprovedClasses(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	classes, err := h.classes.ListApproved(ctx)
	if err != nil {
		return err
	}
	return c.JSON(classes)
}

func (h *Handler) ListInstructorClasses(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	classes, err := h.classes.ListByInstructor(ctx, c.Params("email"), middleware.CallerEmail(c))
	if err != nil {
		return err
	}
	return c.JSON(classes)
}

func (h *Handler) ApproveClass(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.classes.Approve(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	h.recordStatusChange(res, models.StatusApproved)
	return c.JSON(res)
}

func (h *Handler) DenyClass(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.classes.Deny(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	h.recordStatusChange(res, models.StatusDenied)
	return c.JSON(res)
}

func (h *Handler) recordStatusChange(res models.UpdateResult, status string) {
	if res.ModifiedCount > 0 {
		h.metrics.RecordStatusChange(status)
	}
}

type feedbackRequest struct {
	Feedback string `json:"feedback"`
}

func (h *Handler) AttachFeedback(c *fiber.Ctx) error {
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return models.NewBadRequest("invalid request body")
	}
	if strings.TrimSpace(req.Feedback) == "" {
		return models.NewBadRequest("feedback is required")
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.classes.AttachFeedback(ctx, c.Params("id"), req.Feedback)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// UploadClassImage stores the multipart "image" field and returns its URL
// for use as a class's classImage.
func (h *Handler) UploadClassImage(c *fiber.Ctx) error {
	if h.images == nil {
		return models.NewUnavailable("image storage is not configured")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.NewBadRequest("image file is required")
	}
	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return models.NewBadRequest("file must be an image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.NewBadRequest("failed to open file")
	}
	defer file.Close()

	ctx, cancel := h.ctx(c)
	defer cancel()

	url, err := h.images.Upload(ctx, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		return models.NewInternal(err)
	}
	return c.JSON(fiber.Map{"url": url})
}
