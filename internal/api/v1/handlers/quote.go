package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fabforge/fabquote/internal/api/v1/services"
	"github.com/fabforge/fabquote/internal/db/models"
)

// QuoteHandler handles frozen-quote HTTP requests
type QuoteHandler struct {
	service *services.QuoteService
}

// NewQuoteHandler creates a new quote handler instance
func NewQuoteHandler(service *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// MarkupRequest is the request body for a markup change
type MarkupRequest struct {
	MarkupPct int `json:"markup_pct"`
}

// StatusRequest is the request body for a quote status change
type StatusRequest struct {
	Status string `json:"status"`
}

// ActualsRequest is the request body for recording real job hours
type ActualsRequest struct {
	ActualHours  float64            `json:"actual_hours"`
	ProcessHours map[string]float64 `json:"process_hours,omitempty"`
	Notes        string             `json:"notes,omitempty"`
}

// Get returns a quote by ID.
func (h *QuoteHandler) Get(c *fiber.Ctx) error {
	id, err := quoteID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid quote id"))
	}

	result, err := h.service.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(success(result))
}

// List returns stored quotes, newest first.
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	opts := &models.ListOptions{
		Limit:  c.QueryInt("limit", models.DefaultLimit),
		Offset: c.QueryInt("offset", 0),
	}
	results, err := h.service.List(c.Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(success(results))
}

// RecalculateMarkup changes the selected markup on a frozen quote.
func (h *QuoteHandler) RecalculateMarkup(c *fiber.Ctx) error {
	id, err := quoteID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid quote id"))
	}
	var req MarkupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}

	result, err := h.service.RecalculateMarkup(c.Context(), id, req.MarkupPct)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(success(result))
}

// UpdateStatus moves a quote through its lifecycle.
func (h *QuoteHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := quoteID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid quote id"))
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}
	status, err := models.ParseQuoteStatus(req.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	if err := h.service.UpdateStatus(c.Context(), id, status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(success(fiber.Map{"quote_id": id, "status": status.String()}))
}

// PDF streams the rendered quote document.
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	id, err := quoteID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid quote id"))
	}

	out, filename, err := h.service.RenderPDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(out)
}

// RecordActuals stores the real hours a completed job took.
func (h *QuoteHandler) RecordActuals(c *fiber.Ctx) error {
	id, err := quoteID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid quote id"))
	}
	var req ActualsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}
	if req.ActualHours <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("actual_hours must be positive"))
	}

	record, err := h.service.RecordActual(c.Context(), id, req.ActualHours, req.ProcessHours, req.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(success(record))
}

func quoteID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
