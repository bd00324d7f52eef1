package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "catalogo/internal/log"
	"catalogo/internal/repos"
)

// BrandHandler serves the public read-only brand list.
type BrandHandler struct {
	Brands *repos.BrandRepo
}

// GET /marcas
func (h *BrandHandler) List(c *fiber.Ctx) error {
	brands, err := h.Brands.List()
	if err != nil {
		applog.Error(c, "marcas.list.fail", err, nil)
		return err
	}
	return ok(c, fiber.StatusOK, brands)
}
