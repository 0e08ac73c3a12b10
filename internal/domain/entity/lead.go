package entity

import "time"

// Status do pipeline de um Lead. A ordem conceitual é
// new → in_contact → in_negotiation → {closed | lost}, mas o grafo de
// transições NÃO é imposto: qualquer status pode ser gravado a partir de
// qualquer outro, inclusive saindo de closed/lost. Essa permissividade é
// uma lacuna conhecida herdada do comportamento observado, não uma escolha
// deliberada; quem portar isto para um cenário mais estrito deve introduzir
// uma tabela de transições aqui.
const (
	StatusNew           = "new"
	StatusInContact     = "in_contact"
	StatusInNegotiation = "in_negotiation"
	StatusClosed        = "closed"
	StatusLost          = "lost"
)

// ValidStatus informa se s pertence ao enum de status.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusInContact, StatusInNegotiation, StatusClosed, StatusLost:
		return true
	}
	return false
}

// Lead é uma indicação de cliente percorrendo o pipeline de vendas.
// Duas associações independentes para User: IndicadorID (quem originou) e
// VendedorID (quem trabalha o lead). Os campos de identidade do cliente
// (nome, telefone, cidade) são imutáveis após a criação; só status e
// observação mudam depois.
type Lead struct {
	ID          string
	ClientName  string
	Phone       string
	CityState   string
	Observation string
	Status      string
	IndicadorID string
	VendedorID  string
	CreatedAt   time.Time
	UpdatedAt   *time.Time // nulo até a primeira atualização de status
}
