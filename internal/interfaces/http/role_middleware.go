package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/indicavende/indicavende-api/internal/application/dto"
)

// RequireRole devolve um middleware que autoriza o acesso só aos papéis
// listados. Deve ser usado DEPOIS do AuthMiddleware (precisa do papel em
// Locals).
//
// Comportamento:
//   - 401 Unauthorized → sem papel no contexto (identidade não resolvida).
//   - 403 Forbidden    → papel resolvido mas fora da lista permitida.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "papel não encontrado no contexto",
			})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "papel sem permissão para esta operação",
		})
	}
}
