package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"catalogo/internal/auth"
	applog "catalogo/internal/log"
)

const (
	CtxClaimsKey  = "claims"
	CtxUsuarioKey = "usuario"
)

// RequireAuth extracts and verifies the Bearer token, storing the decoded
// claims in Locals for the role gate and the handlers behind it.
func RequireAuth(tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Falta el header Authorization")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Formato esperado: 'Bearer <token>'")
		}
		claims, err := tokens.Parse(parts[1])
		if err != nil {
			applog.Security(c, "auth.token.invalid", nil)
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido o expirado")
		}
		c.Locals(CtxClaimsKey, claims)
		c.Locals(CtxUsuarioKey, claims.Usuario)
		return c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated role
// is in the route's declared set. Must run after RequireAuth.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido o expirado")
		}
		for _, r := range roles {
			if r == claims.Rol {
				return c.Next()
			}
		}
		applog.Security(c, "access.denied.role", map[string]any{"rol": claims.Rol})
		return fiber.NewError(fiber.StatusForbidden, "No autorizado")
	}
}

func ClaimsFrom(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(CtxClaimsKey).(*auth.Claims)
	return claims
}
