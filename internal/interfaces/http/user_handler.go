package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/indicavende/indicavende-api/internal/application/dto"
	"github.com/indicavende/indicavende-api/internal/application/usecase"
	"github.com/indicavende/indicavende-api/internal/domain"
)

// UserHandler trata as listagens de usuários (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler constrói o handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar todos os usuários (gestor)
// @Tags         users
// @Security     Identity
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetRole(c))
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(out)
}

// ListVendedores godoc
// @Summary      Listar o roster de vendedores
// @Tags         users
// @Security     Identity
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /vendedores [get]
func (h *UserHandler) ListVendedores(c *fiber.Ctx) error {
	out, err := h.uc.ListVendedores(GetRole(c))
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(out)
}

func userError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidade não resolvida"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
