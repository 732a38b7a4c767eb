package handlers

import (
	"context"
	"io"
	"time"

	"github.com/arzan03/ArtistryCamp/internal/metrics"
	"github.com/arzan03/ArtistryCamp/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// ImageUploader stores an uploaded class image and returns its URL.
type ImageUploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)
}

// HealthCheck probes one dependency for /healthz.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// Deps are the collaborators the routes are built from. Images may be nil,
// which answers image uploads with 503.
type Deps struct {
	Tokens     *services.TokenService
	Users      *services.UserDirectory
	Classes    *services.ClassRegistry
	Selections *services.SelectionLedger
	Images     ImageUploader

	Metrics      *metrics.Collector
	Gatherer     prometheus.Gatherer
	HealthChecks []HealthCheck

	DBTimeout    time.Duration
	JWTRateLimit int
	CorsOrigins  string
	AccessLog    bool
}

type Handler struct {
	tokens     *services.TokenService
	users      *services.UserDirectory
	classes    *services.ClassRegistry
	selections *services.SelectionLedger
	images     ImageUploader
	metrics    *metrics.Collector
	checks     []HealthCheck
	timeout    time.Duration
}

func newHandler(d Deps) *Handler {
	return &Handler{
		tokens:     d.Tokens,
		users:      d.Users,
		classes:    d.Classes,
		selections: d.Selections,
		images:     d.Images,
		metrics:    d.Metrics,
		checks:     d.HealthChecks,
		timeout:    d.DBTimeout,
	}
}

// ctx bounds a datastore call by the configured timeout.
func (h *Handler) ctx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// Root is the liveness text response.
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.SendString("Artistry Server is running..")
}
