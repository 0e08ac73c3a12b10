package dto

// PageRequest paginação por offset para listagens (skip/limit).
type PageRequest struct {
	Limit int `query:"limit" validate:"min=1,max=1000"`
	Skip  int `query:"skip" validate:"min=0"`
}

// DefaultPage aplica os valores padrão do contrato: limit 100, skip 0.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
