package handlers

import (
	"context"
	"log/slog"

	"github.com/arzan03/ArtistryCamp/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// Health probes every configured dependency in parallel. Any failing probe
// turns the response into 503 and is reported as "failed"; the cause only
// goes to the log.
func (h *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	tasks := make([]utils.ParallelTask[struct{}], len(h.checks))
	for i, check := range h.checks {
		ping := check.Ping
		tasks[i] = func(ctx context.Context) (struct{}, error) {
			return struct{}{}, ping(ctx)
		}
	}
	_, errs := utils.RunParallelTasks(ctx, tasks)

	status := fiber.StatusOK
	report := fiber.Map{}
	for i, check := range h.checks {
		if errs[i] != nil {
			status = fiber.StatusServiceUnavailable
			slog.Error("health check failed",
				slog.String("check", check.Name),
				slog.String("error", errs[i].Error()),
			)
			report[check.Name] = "failed"
			continue
		}
		report[check.Name] = "ok"
	}
	return c.Status(status).JSON(fiber.Map{"status": statusText(status), "checks": report})
}

func statusText(status int) string {
	if status == fiber.StatusOK {
		return "ok"
	}
	return "unavailable"
}
