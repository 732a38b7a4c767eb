package handlers

import (
	"github.com/arzan03/ArtistryCamp/internal/metrics"
	"github.com/arzan03/ArtistryCamp/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// NewApp builds the Fiber app with the global middleware chain and every
// route registered.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "artistry-camp",
		ErrorHandler: middleware.ErrorHandler,
		UnescapePath: true,
		Immutable:    true,
	})

	app.Use(middleware.Recovery())
	app.Use(middleware.RequestID())
	if d.AccessLog {
		app.Use(middleware.AccessLog())
	}
	app.Use(middleware.Cors(d.CorsOrigins))
	if d.Metrics != nil {
		app.Use(d.Metrics.Middleware())
	}

	Register(app, d)
	return app
}

// Register mounts the API routes on app.
func Register(app *fiber.App, d Deps) {
	h := newHandler(d)
	auth := middleware.AuthMiddleware(d.Tokens)
	admin := middleware.AdminMiddleware(d.Users)

	app.Get("/", h.Root)
	app.Get("/healthz", h.Health)
	if d.Gatherer != nil {
		app.Get("/metrics", metrics.Handler(d.Gatherer))
	}

	rateLimit := d.JWTRateLimit
	if rateLimit <= 0 {
		rateLimit = 30
	}
	app.Post("/jwt", middleware.TokenRateLimiter(rateLimit), h.IssueToken)

	users := app.Group("/users")
	users.Post("/", h.RegisterUser)
	users.Get("/", auth, admin, h.ListUsers)
	users.Get("/instructors", h.ListInstructors)
	users.Get("/admin/:email", auth, h.CheckAdmin)
	users.Get("/instructor/:email", auth, h.CheckInstructor)
	users.Patch("/admin/:id", h.MakeAdmin)
	users.Patch("/instructor/:id", h.MakeInstructor)
	users.Put("/:email", h.UpsertUser)

	classes := app.Group("/classes")
	classes.Post("/", h.SubmitClass)
	classes.Get("/", h.ListClasses)
	classes.Post("/image", auth, h.UploadClassImage)
	classes.Get("/approve", h.ListApprovedClasses)
	classes.Patch("/approve/:id", h.ApproveClass)
	classes.Patch("/deny/:id", h.DenyClass)
	classes.Patch("/feedback/:id", h.AttachFeedback)
	classes.Get("/instructor/:email", auth, h.ListInstructorClasses)

	selected := app.Group("/selected")
	selected.Post("/", h.SelectClass)
	selected.Get("/", auth, h.ListSelections)
}
