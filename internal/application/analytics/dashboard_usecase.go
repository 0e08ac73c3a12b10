// Package analytics agrega o conjunto de leads visível em indicadores do
// dashboard: contagens por desfecho, taxa de conversão e estatísticas da
// série de leads por dia.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/indicavende/indicavende-api/internal/application/dto"
	"github.com/indicavende/indicavende-api/internal/domain/entity"
	"github.com/indicavende/indicavende-api/internal/domain/policy"
	"github.com/indicavende/indicavende-api/internal/domain/stats"
)

const conversionScale = 4 // casas decimais da taxa de conversão

// dayLayout agrupa por dia-calendário em UTC: a política de fuso é única e
// aplicada de forma consistente, independente do fuso do servidor.
const dayLayout = "2006-01-02"

// LeadSource entrega o conjunto de leads já filtrado pela política de
// visibilidade do ator. Implementado por *usecase.LeadUseCase.
type LeadSource interface {
	VisibleLeads(actor *entity.User) ([]*entity.Lead, error)
}

// DashboardUseCase monta o DashboardStatsDTO para o gestor.
type DashboardUseCase struct {
	leads LeadSource
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(leads LeadSource) *DashboardUseCase {
	return &DashboardUseCase{leads: leads}
}

// GetStats autoriza o ator, busca o conjunto visível e agrega.
func (uc *DashboardUseCase) GetStats(actor *entity.User) (*dto.DashboardStatsDTO, error) {
	role := ""
	if actor != nil {
		role = actor.Role
	}
	if err := policy.Authorize(role, policy.OpViewDashboard); err != nil {
		return nil, err
	}
	leads, err := uc.leads.VisibleLeads(actor)
	if err != nil {
		return nil, err
	}
	return Aggregate(leads), nil
}

// Aggregate computa os agregados sobre um conjunto de leads já escopado.
// Função pura: determinística, sem efeitos colaterais, barata o bastante
// para recomputar a cada chamada (nenhum cache).
func Aggregate(leads []*entity.Lead) *dto.DashboardStatsDTO {
	out := &dto.DashboardStatsDTO{
		TotalLeads:     len(leads),
		ConversionRate: decimal.Zero,
		LeadsPerDay:    []dto.DailyCountDTO{},
	}

	byDay := make(map[string]int)
	for _, l := range leads {
		switch l.Status {
		case entity.StatusClosed:
			out.Closed++
		case entity.StatusLost:
			out.Lost++
		}
		byDay[l.CreatedAt.UTC().Format(dayLayout)]++
	}
	out.InProgress = out.TotalLeads - out.Closed - out.Lost

	// taxa de conversão = fechados/total; 0 quando não há leads (nunca erro
	// de divisão)
	if out.TotalLeads > 0 {
		out.ConversionRate = decimal.NewFromInt(int64(out.Closed)).
			Div(decimal.NewFromInt(int64(out.TotalLeads))).
			Round(conversionScale)
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)

	series := make([]float64, 0, len(days))
	for _, d := range days {
		out.LeadsPerDay = append(out.LeadsPerDay, dto.DailyCountDTO{Date: d, Count: byDay[d]})
		series = append(series, float64(byDay[d]))
	}
	out.DailyStats = describeSeries(series)
	return out
}

func describeSeries(series []float64) dto.DailyStatsDTO {
	s := stats.Describe(series)
	out := dto.DailyStatsDTO{
		Mean:     s.Mean,
		Median:   s.Median,
		Mode:     s.Mode,
		StdDev:   s.StdDev,
		Min:      s.Min,
		Max:      s.Max,
		Skewness: s.Skewness,
		Kurtosis: s.Kurtosis,
	}
	if s.ConfidenceInterval != nil {
		out.ConfidenceInterval = &dto.ConfidenceIntervalDTO{
			Lower: s.ConfidenceInterval.Lower,
			Upper: s.ConfidenceInterval.Upper,
		}
	}
	return out
}
