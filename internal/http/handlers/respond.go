package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"catalogo/internal/services"
)

// Meta is the pagination block of the envelope.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(c *fiber.Ctx, code int, data any) error {
	return c.Status(code).JSON(envelope{Status: "success", Data: data})
}

func okList(c *fiber.Ctx, data any, meta Meta) error {
	return c.Status(fiber.StatusOK).JSON(envelope{Status: "success", Data: data, Meta: &meta})
}

func fail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(envelope{Status: "error", Message: message})
}

// ErrorHandler renders every error escaping a handler as the uniform
// envelope. Wired into fiber.Config.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return fail(c, code, err.Error())
}

// svcErr maps service-layer errors onto HTTP statuses. notFoundMsg names the
// entity, the rest of the taxonomy carries its own message.
func svcErr(err error, notFoundMsg string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.NewError(fiber.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, services.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, "Usuario ya existe")
	case errors.Is(err, services.ErrBadCreds):
		return fiber.NewError(fiber.StatusUnauthorized, "Credenciales inválidas")
	default:
		return err
	}
}
