// Package metrics collects Prometheus metrics for the HTTP surface and the
// class workflow.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	tokensIssued  prometheus.Counter
	statusChanges *prometheus.CounterVec
	selections    prometheus.Counter
	registrations prometheus.Counter
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "artistry_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "artistry_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "artistry_tokens_issued_total",
			Help: "Access tokens issued.",
		}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "artistry_class_status_changes_total",
			Help: "Class approval decisions by target status.",
		}, []string{"status"}),
		selections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "artistry_selections_total",
			Help: "Class selections recorded.",
		}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "artistry_user_registrations_total",
			Help: "New users inserted through self-registration.",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.tokensIssued,
		c.statusChanges,
		c.selections,
		c.registrations,
	)
	return c
}

// Middleware records request count and latency. The route label is the
// registered pattern, not the raw path, to keep cardinality bounded.
func (c *Collector) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		// A returned error is rendered later by the app's error handler, so
		// the response status is not final yet.
		status := ctx.Response().StatusCode()
		if err != nil {
			status = statusOf(err)
		}
		route := ctx.Route().Path
		method := ctx.Method()

		c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		c.latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// RecordTokenIssued counts an issued token. Like the other Record methods
// it is a no-op on a nil Collector.
func (c *Collector) RecordTokenIssued() {
	if c == nil {
		return
	}
	c.tokensIssued.Inc()
}

func (c *Collector) RecordStatusChange(status string) {
	if c == nil {
		return
	}
	c.statusChanges.WithLabelValues(status).Inc()
}

func (c *Collector) RecordSelection() {
	if c == nil {
		return
	}
	c.selections.Inc()
}

func (c *Collector) RecordRegistration() {
	if c == nil {
		return
	}
	c.registrations.Inc()
}

// TokensIssued exposes the issued-token counter.
func (c *Collector) TokensIssued() prometheus.Counter {
	return c.tokensIssued
}

// StatusChanges exposes the status-change counter for one target status.
func (c *Collector) StatusChanges(status string) prometheus.Counter {
	return c.statusChanges.WithLabelValues(status)
}

func statusOf(err error) int {
	var appErr *models.AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		return appErr.StatusCode()
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// Handler serves the scrape endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
