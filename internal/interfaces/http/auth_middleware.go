package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/indicavende/indicavende-api/internal/application/dto"
	"github.com/indicavende/indicavende-api/internal/domain/entity"
)

// Header de identidade por requisição. O valor é um email opaco resolvido
// contra a base de usuários; não há vínculo criptográfico com a credencial,
// contrato preservado do sistema de referência. Um mecanismo real de
// credencial entra trocando o IdentityResolver, sem tocar nas regras de
// papel/estado.
const identityHeader = "X-User-Email"

// Locals keys para o usuário autenticado no Fiber.
const (
	LocalUser     = "current_user"
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
)

// IdentityResolver resolve o token de identidade (email) para um User.
// Implementado por *auth.AuthUseCase.
type IdentityResolver interface {
	ResolveIdentity(email string) (*entity.User, error)
}

// AuthMiddleware resolve o header X-User-Email e carrega o usuário em
// c.Locals. Header ausente ou email desconhecido → 401 (não autenticado,
// distinto do 403 de papel insuficiente).
func AuthMiddleware(resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Get(identityHeader)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_IDENTITY", Message: "header " + identityHeader + " requerido"})
		}
		user, err := resolver.ResolveIdentity(email)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNKNOWN_IDENTITY", Message: "usuário não encontrado"})
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserRole, user.Role)
		return c.Next()
	}
}

// CurrentUser devolve o usuário do contexto (depois do AuthMiddleware).
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetUserID devolve o ID do usuário do contexto.
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devolve o papel do usuário do contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalUserRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
