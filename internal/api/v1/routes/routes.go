package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fabforge/fabquote/internal/api/v1/handlers"
)

// SetupRoutes configures all the v1 routes
func SetupRoutes(router fiber.Router, sessions *handlers.SessionHandler, quotes *handlers.QuoteHandler) {
	// Quote-session pipeline routes
	s := router.Group("/sessions")
	s.Post("/", sessions.StartSession)
	s.Get("/:id", sessions.GetStatus)
	s.Post("/:id/answers", sessions.SubmitAnswers)
	s.Delete("/:id/answers/:field", sessions.RetractAnswer)
	s.Post("/:id/photo", sessions.AttachPhoto)
	s.Post("/:id/calculate", sessions.Calculate)
	s.Post("/:id/estimate", sessions.Estimate)
	s.Post("/:id/price", sessions.Price)

	// Frozen-quote routes
	q := router.Group("/quotes")
	q.Get("/", quotes.List)
	q.Get("/:id", quotes.Get)
	q.Get("/:id/pdf", quotes.PDF)
	q.Post("/:id/markup", quotes.RecalculateMarkup)
	q.Post("/:id/status", quotes.UpdateStatus)
	q.Post("/:id/actuals", quotes.RecordActuals)
}

// Register registers the v1 routes
func Register(app *fiber.App, sessions *handlers.SessionHandler, quotes *handlers.QuoteHandler) {
	// API v1 routes
	v1Group := app.Group("/api/v1")
	SetupRoutes(v1Group, sessions, quotes)
}
