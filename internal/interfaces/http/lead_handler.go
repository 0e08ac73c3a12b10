package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/indicavende/indicavende-api/internal/application/dto"
	"github.com/indicavende/indicavende-api/internal/application/usecase"
	"github.com/indicavende/indicavende-api/internal/domain"
)

// LeadHandler trata as requisições HTTP de leads (protegido).
type LeadHandler struct {
	uc *usecase.LeadUseCase
}

// NewLeadHandler constrói o handler.
func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create godoc
// @Summary      Criar lead (indicador)
// @Tags         leads
// @Security     Identity
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "Dados do lead"
// @Success      201   {object}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(CurrentUser(c), in)
	if err != nil {
		return leadError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar leads visíveis ao ator
// @Tags         leads
// @Security     Identity
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Limite"  default(100)
// @Success      200    {array}  dto.LeadResponse
// @Router       /leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Skip:  c.QueryInt("skip", 0),
		Limit: c.QueryInt("limit", 100),
	}
	out, err := h.uc.List(CurrentUser(c), page)
	if err != nil {
		return leadError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar status/observação de um lead (vendedor ou gestor)
// @Tags         leads
// @Security     Identity
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID do lead"
// @Param        body  body  dto.UpdateLeadRequest  true  "status e observação opcional"
// @Success      200   {object}  dto.LeadResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateStatus(CurrentUser(c), id, in)
	if err != nil {
		return leadError(c, err)
	}
	return c.JSON(out)
}

// leadError traduz os erros de domínio do pipeline para HTTP.
func leadError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidade não resolvida"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sem permissão para esta operação"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos obrigatórios ausentes ou status fora do enum"})
	case domain.ErrLeadNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "LEAD_NOT_FOUND", Message: "lead não encontrado"})
	case domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "vendedor não encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
