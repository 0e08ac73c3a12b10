package dto

import "time"

// CreateLeadRequest entrada de criação de lead pelo indicador.
// Não existe campo de status aqui de propósito: o status inicial é sempre
// "new", imposto pelo caso de uso; qualquer status no corpo é ignorado.
type CreateLeadRequest struct {
	ClientName  string `json:"client_name" validate:"required,min=1,max=100"`
	Phone       string `json:"phone" validate:"required,max=20"`
	CityState   string `json:"city_state" validate:"required,max=100"`
	Observation string `json:"observation" validate:"omitempty"`
	VendedorID  string `json:"vendedor_id" validate:"required,uuid"`
}

// UpdateLeadRequest atualização parcial de status/observação.
// Observation como ponteiro distingue "ausente" (nil → mantém o texto
// anterior) de "string vazia" (zera o campo).
type UpdateLeadRequest struct {
	Status      string  `json:"status" validate:"required,oneof=new in_contact in_negotiation closed lost"`
	Observation *string `json:"observation" validate:"omitempty"`
}

// LeadResponse saída de um lead; updated_at é nulo até a primeira
// atualização.
type LeadResponse struct {
	ID          string     `json:"id"`
	ClientName  string     `json:"client_name"`
	Phone       string     `json:"phone"`
	CityState   string     `json:"city_state"`
	Observation string     `json:"observation"`
	Status      string     `json:"status"`
	IndicadorID string     `json:"indicador_id"`
	VendedorID  string     `json:"vendedor_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
