package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "catalogo/internal/log"
	"catalogo/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

type loginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// POST /auth/register (admin)
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	u, err := h.Auth.Register(body.Usuario, body.Password, body.Rol)
	if err != nil {
		return svcErr(err, "Usuario no encontrado")
	}
	applog.Audit(c, "auth.register", map[string]any{"nuevo_usuario": u.Usuario, "rol": u.Rol})
	return ok(c, fiber.StatusCreated, fiber.Map{"usuario": u.Usuario, "rol": u.Rol})
}

// POST /auth/login (public)
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	token, u, err := h.Auth.Login(body.Usuario, body.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"usuario": body.Usuario})
		return svcErr(err, "Usuario no encontrado")
	}
	applog.Info(c, "auth.login.ok", map[string]any{"usuario": u.Usuario})
	return ok(c, fiber.StatusOK, fiber.Map{"token": token, "usuario": u.Usuario, "rol": u.Rol})
}

// GET /auth/me (any authenticated) — debug aid, echoes the decoded claims.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)
	if claims == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token inválido o expirado")
	}
	return ok(c, fiber.StatusOK, fiber.Map{
		"user_id": claims.UserID,
		"usuario": claims.Usuario,
		"rol":     claims.Rol,
		"exp":     claims.ExpiresAt.Unix(),
	})
}
