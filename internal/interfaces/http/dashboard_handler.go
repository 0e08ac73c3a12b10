package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/indicavende/indicavende-api/internal/application/analytics"
	"github.com/indicavende/indicavende-api/internal/application/dto"
	"github.com/indicavende/indicavende-api/internal/domain"
)

// DashboardHandler trata o endpoint de estatísticas do gestor.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estatísticas agregadas dos leads visíveis (gestor)
// @Tags         dashboard
// @Security     Identity
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /dashboard/stats [get]
//
// Resposta: contagens por desfecho, taxa de conversão, leads por dia e
// estatísticas descritivas da série diária (com IC de 95% quando há pelo
// menos 2 dias de dados).
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(CurrentUser(c))
	if err != nil {
		switch err {
		case domain.ErrUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidade não resolvida"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "dashboard disponível apenas para o gestor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
