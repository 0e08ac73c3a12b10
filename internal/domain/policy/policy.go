// Package policy concentra as regras de autorização por papel: quais
// operações cada papel pode executar e qual subconjunto de leads enxerga.
// É uma tabela de capacidades fixa, não uma hierarquia de papéis.
package policy

import (
	"github.com/indicavende/indicavende-api/internal/domain"
	"github.com/indicavende/indicavende-api/internal/domain/entity"
)

// Operation identifica uma operação autorizável.
type Operation string

const (
	OpCreateLead     Operation = "create_lead"
	OpListLeads      Operation = "list_leads"
	OpUpdateLead     Operation = "update_lead"
	OpListUsers      Operation = "list_users"
	OpListVendedores Operation = "list_vendedores"
	OpViewDashboard  Operation = "view_dashboard"
)

// Scope define o subconjunto de leads visível em listagens.
type Scope int

const (
	ScopeNone     Scope = iota // papel sem acesso a listagem
	ScopeOwn                   // somente leads originados pelo ator (indicador)
	ScopeAssigned              // somente leads atribuídos ao ator (vendedor)
	ScopeAll                   // todos os leads (gestor)
)

// capabilities: papel → operações permitidas. A checagem de OpUpdateLead é
// propositalmente grossa: verifica apenas o papel, nunca se o lead está
// atribuído ao vendedor que atualiza: qualquer vendedor pode atualizar
// qualquer lead. Comportamento reproduzido literalmente do sistema de
// referência; provável lacuna de escopo, não "corrigir" sem confirmar a
// intenção.
var capabilities = map[string]map[Operation]bool{
	entity.RoleIndicador: {
		OpCreateLead:     true,
		OpListLeads:      true,
		OpListVendedores: true,
	},
	entity.RoleVendedor: {
		OpListLeads:      true,
		OpUpdateLead:     true,
		OpListVendedores: true,
	},
	entity.RoleGestor: {
		OpListLeads:      true,
		OpUpdateLead:     true,
		OpListUsers:      true,
		OpListVendedores: true,
		OpViewDashboard:  true,
	},
}

// Authorize decide permitir/negar a operação para o papel dado.
// Papel vazio ou desconhecido → ErrUnauthorized (identidade não resolvida,
// distinto de proibido); papel conhecido sem a capacidade → ErrForbidden.
func Authorize(role string, op Operation) error {
	if role == "" {
		return domain.ErrUnauthorized
	}
	caps, ok := capabilities[role]
	if !ok {
		return domain.ErrUnauthorized
	}
	if !caps[op] {
		return domain.ErrForbidden
	}
	return nil
}

// ListScope devolve o escopo de visibilidade de listagem do papel.
func ListScope(role string) Scope {
	switch role {
	case entity.RoleGestor:
		return ScopeAll
	case entity.RoleVendedor:
		return ScopeAssigned
	case entity.RoleIndicador:
		return ScopeOwn
	}
	return ScopeNone
}
