package repository

import (
	"time"

	"github.com/indicavende/indicavende-api/internal/domain/entity"
)

// LeadRepository define o porto de persistência para Lead.
//
// Filtros de visibilidade acontecem por subconjunto de linhas (quais leads),
// nunca por coluna: toda listagem devolve o registro completo.
// UpdateStatus devolve (nil, nil) quando o lead não existe.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	// ListAll pagina por offset; ordem determinística (created_at, id).
	ListAll(limit, offset int) ([]*entity.Lead, error)
	ListByIndicador(indicadorID string) ([]*entity.Lead, error)
	ListByVendedor(vendedorID string) ([]*entity.Lead, error)
	// UpdateStatus grava status e updatedAt; observation nil preserva o texto
	// anterior (atualização parcial), ponteiro para "" zera o campo.
	UpdateStatus(id, status string, observation *string, updatedAt time.Time) (*entity.Lead, error)
}
