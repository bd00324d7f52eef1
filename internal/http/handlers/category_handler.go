package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "catalogo/internal/log"
	"catalogo/internal/services"
)

type CategoryHandler struct {
	Categories *services.CategoryService
}

type categoryRequest struct {
	Nombre string `json:"nombre"`
}

// GET /categorias
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Categories.List()
	if err != nil {
		applog.Error(c, "categorias.list.fail", err, nil)
		return err
	}
	return ok(c, fiber.StatusOK, cats)
}

// POST /categorias (admin)
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var body categoryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	cat, err := h.Categories.Create(body.Nombre)
	if err != nil {
		return svcErr(err, "Categoría no encontrada")
	}
	applog.Audit(c, "categorias.create", map[string]any{"id": cat.ID, "nombre": cat.Nombre})
	return ok(c, fiber.StatusCreated, cat)
}

// PUT /categorias/:id (admin)
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	var body categoryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	cat, err := h.Categories.Update(int64(id), body.Nombre)
	if err != nil {
		return svcErr(err, "Categoría no encontrada")
	}
	applog.Audit(c, "categorias.update", map[string]any{"id": cat.ID})
	return ok(c, fiber.StatusOK, cat)
}

// DELETE /categorias/:id (admin)
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	if err := h.Categories.Delete(int64(id)); err != nil {
		return svcErr(err, "Categoría no encontrada")
	}
	applog.Audit(c, "categorias.delete", map[string]any{"id": id})
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Categoría eliminada"})
}
