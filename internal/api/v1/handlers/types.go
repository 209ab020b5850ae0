package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fabforge/fabquote/internal/api/v1/services"
)

type Slug string

const (
	SuccessSlug      Slug = "success"
	ErrorSlug        Slug = "error"
	InvalidInputSlug Slug = "invalid-input"
	NotFoundSlug     Slug = "not-found"
	WrongStageSlug   Slug = "wrong-stage"
	ServerErrorSlug  Slug = "server-error"
)

type Response struct {
	Slug  Slug        `json:"slug"`
	Error string      `json:"error"`
	Data  interface{} `json:"data"`
}

func success(data interface{}) Response {
	return Response{
		Slug: SuccessSlug,
		Data: data,
	}
}

func errInvalidInput(msg string) Response {
	return Response{
		Slug:  InvalidInputSlug,
		Error: msg,
	}
}

func errServer(msg string) Response {
	return Response{
		Slug:  ServerErrorSlug,
		Error: msg,
	}
}

func errGeneral(msg string) Response {
	return Response{
		Slug:  ErrorSlug,
		Error: msg,
	}
}

// respondError maps service errors onto HTTP statuses. Missing records are
// 404, pipeline-order violations are 409, everything else is 500.
func respondError(c *fiber.Ctx, err error) error {
	var wrongStage *services.WrongStageError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(Response{Slug: NotFoundSlug, Error: err.Error()})
	case errors.As(err, &wrongStage):
		return c.Status(fiber.StatusConflict).JSON(Response{Slug: WrongStageSlug, Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(errServer(err.Error()))
	}
}
