// Package handlers contains the fiber HTTP handlers for the quoting API.
package handlers

import (
	"encoding/base64"

	"github.com/gofiber/fiber/v2"

	"github.com/fabforge/fabquote/internal/api/v1/services"
)

// SessionHandler handles quote-session HTTP requests
type SessionHandler struct {
	service *services.SessionService
}

// NewSessionHandler creates a new session handler instance
func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// StartSessionRequest is the request body for starting a session
type StartSessionRequest struct {
	Description string `json:"description"`
	JobType     string `json:"job_type,omitempty"`
}

// SubmitAnswersRequest is the request body for answer submission
type SubmitAnswersRequest struct {
	Answers map[string]string `json:"answers"`
}

// AttachPhotoRequest is the request body for photo analysis
type AttachPhotoRequest struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Note        string `json:"note,omitempty"`
}

// PriceRequest is the request body for the price stage
type PriceRequest struct {
	MarkupPct int `json:"markup_pct"`
}

// StartSession creates a new quote session from a free-text description.
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	var req StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}
	if req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("description is required"))
	}

	result, err := h.service.StartSession(c.Context(), req.Description, req.JobType)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(success(result))
}

// GetStatus returns the current state of a session.
func (h *SessionHandler) GetStatus(c *fiber.Ctx) error {
	result, err := h.service.Status(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(success(result))
}

// SubmitAnswers merges answers into a session.
func (h *SessionHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}
	if len(req.Answers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("answers are required"))
	}

	result, err := h.service.SubmitAnswers(c.Context(), c.Params("id"), req.Answers)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(success(result))
}

// RetractAnswer removes one answered field from a session.
func (h *SessionHandler) RetractAnswer(c *fiber.Ctx) error {
	field := c.Params("field")
	if field == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("field is required"))
	}

	result, err := h.service.RetractAnswer(c.Context(), c.Params("id"), field)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(success(result))
}

// AttachPhoto runs vision extraction on an uploaded job photo.
func (h *SessionHandler) AttachPhoto(c *fiber.Ctx) error {
	var req AttachPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}
	if req.ImageBase64 == "" || req.MimeType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("image_base64 and mime_type are required"))
	}
	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("image_base64 is not valid base64"))
	}

	result, err := h.service.AttachPhoto(c.Context(), c.Params("id"), image, req.MimeType, req.Note)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(success(result))
}

// Calculate runs the calculation stage on a completed session.
func (h *SessionHandler) Calculate(c *fiber.Ctx) error {
	result, err := h.service.Calculate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(success(result))
}

// Estimate runs the labor and finishing stage on a calculated session.
func (h *SessionHandler) Estimate(c *fiber.Ctx) error {
	result, err := h.service.Estimate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(success(result))
}

// Price runs the pricing stage and creates the frozen quote.
func (h *SessionHandler) Price(c *fiber.Ctx) error {
	var req PriceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}

	result, err := h.service.PriceSession(c.Context(), c.Params("id"), req.MarkupPct)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(success(result))
}
