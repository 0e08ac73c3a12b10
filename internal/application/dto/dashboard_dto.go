package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO resposta de GET /dashboard/stats.
// Agregados sobre o conjunto de leads visível ao ator; o serviço de
// agregação nunca aplica filtro próprio de visibilidade.
type DashboardStatsDTO struct {
	TotalLeads     int             `json:"total_leads"`
	Closed         int             `json:"closed"`
	Lost           int             `json:"lost"`
	InProgress     int             `json:"in_progress"`     // total - closed - lost
	ConversionRate decimal.Decimal `json:"conversion_rate"` // closed/total; 0 quando total é 0
	LeadsPerDay    []DailyCountDTO `json:"leads_per_day"`   // por data de criação (UTC), ordem cronológica
	DailyStats     DailyStatsDTO   `json:"daily_stats"`     // descritivas da série leads/dia
}

// DailyCountDTO contagem de leads criados num dia-calendário (UTC).
type DailyCountDTO struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// DailyStatsDTO estatísticas descritivas da série de leads por dia.
// ConfidenceInterval é nulo quando a série tem menos de 2 pontos.
type DailyStatsDTO struct {
	Mean               float64                `json:"mean"`
	Median             float64                `json:"median"`
	Mode               float64                `json:"mode"`
	StdDev             float64                `json:"std_dev"`
	Min                float64                `json:"min"`
	Max                float64                `json:"max"`
	Skewness           float64                `json:"skewness"`
	Kurtosis           float64                `json:"kurtosis"`
	ConfidenceInterval *ConfidenceIntervalDTO `json:"confidence_interval"`
}

// ConfidenceIntervalDTO intervalo de confiança de 95% para a média diária
// (t de Student, n-1 graus de liberdade).
type ConfidenceIntervalDTO struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}
