package handlers

import (
	"github.com/gofiber/fiber/v2"

	"catalogo/internal/listing"
	applog "catalogo/internal/log"
	"catalogo/internal/services"
)

type ProductHandler struct {
	Products *services.ProductService
}

// GET /productos
func (h *ProductHandler) List(c *fiber.Ctx) error {
	params := listing.ParseParams(func(k string) string { return c.Query(k) })
	page, err := h.Products.List(params)
	if err != nil {
		applog.Error(c, "productos.list.fail", err, nil)
		return err
	}
	return okList(c, page.Items, Meta{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
}

// GET /productos/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	p, err := h.Products.Get(int64(id))
	if err != nil {
		return svcErr(err, "Producto no encontrado")
	}
	return ok(c, fiber.StatusOK, p)
}

// POST /productos (admin)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	p, err := h.Products.Create(in)
	if err != nil {
		return svcErr(err, "Producto no encontrado")
	}
	applog.Audit(c, "productos.create", map[string]any{"id": p.ID, "nombre": p.Nombre})
	return ok(c, fiber.StatusCreated, p)
}

// PUT /productos/:id (admin)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	p, err := h.Products.Update(int64(id), in)
	if err != nil {
		return svcErr(err, "Producto no encontrado")
	}
	applog.Audit(c, "productos.update", map[string]any{"id": p.ID})
	return ok(c, fiber.StatusOK, p)
}

// DELETE /productos/:id (admin)
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	if err := h.Products.Delete(int64(id)); err != nil {
		return svcErr(err, "Producto no encontrado")
	}
	applog.Audit(c, "productos.delete", map[string]any{"id": id})
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Producto eliminado"})
}
