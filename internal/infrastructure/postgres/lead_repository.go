package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/indicavende/indicavende-api/internal/domain/entity"
	"github.com/indicavende/indicavende-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

const leadColumns = `id, client_name, phone, city_state, observation, status,
		indicador_id, vendedor_id, created_at, updated_at`

// LeadRepo implementação do porto LeadRepository sobre PostgreSQL.
// As escritas são atômicas por linha (um comando por mutação); com updates
// concorrentes no mesmo lead vale o último gravado para o par
// status+observação.
type LeadRepo struct {
	pool *pgxpool.Pool
}

// NewLeadRepository constrói o adaptador de persistência de leads.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepo {
	return &LeadRepo{pool: pool}
}

// Create persiste um novo lead (status e carimbos já definidos pelo caso de
// uso).
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, client_name, phone, city_state, observation, status,
			indicador_id, vendedor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		lead.ID, lead.ClientName, lead.Phone, lead.CityState, lead.Observation,
		lead.Status, lead.IndicadorID, lead.VendedorID, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtém um lead por ID; (nil, nil) quando não existe.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	var l entity.Lead
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.ClientName, &l.Phone, &l.CityState, &l.Observation, &l.Status,
		&l.IndicadorID, &l.VendedorID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// ListAll pagina por offset em ordem determinística (created_at, id).
// A ordem de inserção é estável mas não contratual, então fixamos uma.
func (r *LeadRepo) ListAll(limit, offset int) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		ORDER BY created_at, id LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListByIndicador lista os leads originados pelo indicador.
func (r *LeadRepo) ListByIndicador(indicadorID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		WHERE indicador_id = $1 ORDER BY created_at, id`
	return r.queryMany(query, indicadorID)
}

// ListByVendedor lista os leads atribuídos ao vendedor.
func (r *LeadRepo) ListByVendedor(vendedorID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		WHERE vendedor_id = $1 ORDER BY created_at, id`
	return r.queryMany(query, vendedorID)
}

// UpdateStatus grava status/observação/updated_at numa única instrução e
// devolve a linha resultante; (nil, nil) quando o lead não existe.
// COALESCE implementa a atualização parcial: observation NULL (ausente no
// pedido) preserva o texto anterior, string vazia sobrescreve.
func (r *LeadRepo) UpdateStatus(id, status string, observation *string, updatedAt time.Time) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET status = $2, observation = COALESCE($3, observation), updated_at = $4
		WHERE id = $1
		RETURNING ` + leadColumns
	var l entity.Lead
	err := r.pool.QueryRow(context.Background(), query, id, status, observation, updatedAt).Scan(
		&l.ID, &l.ClientName, &l.Phone, &l.CityState, &l.Observation, &l.Status,
		&l.IndicadorID, &l.VendedorID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update lead status: %w", err)
	}
	return &l, nil
}

func (r *LeadRepo) queryMany(query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(
			&l.ID, &l.ClientName, &l.Phone, &l.CityState, &l.Observation, &l.Status,
			&l.IndicadorID, &l.VendedorID, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
