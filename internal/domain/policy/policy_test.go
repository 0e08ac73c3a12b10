package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/indicavende/indicavende-api/internal/domain"
	"github.com/indicavende/indicavende-api/internal/domain/entity"
	"github.com/indicavende/indicavende-api/internal/domain/policy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabela de capacidades: cada papel contra cada operação.
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_TabelaDeCapacidades(t *testing.T) {
	cases := []struct {
		role string
		op   policy.Operation
		want error
	}{
		// indicador: cria leads e lista os próprios; nunca atualiza
		{entity.RoleIndicador, policy.OpCreateLead, nil},
		{entity.RoleIndicador, policy.OpListLeads, nil},
		{entity.RoleIndicador, policy.OpListVendedores, nil},
		{entity.RoleIndicador, policy.OpUpdateLead, domain.ErrForbidden},
		{entity.RoleIndicador, policy.OpListUsers, domain.ErrForbidden},
		{entity.RoleIndicador, policy.OpViewDashboard, domain.ErrForbidden},

		// vendedor: lista os atribuídos e atualiza; nunca cria
		{entity.RoleVendedor, policy.OpCreateLead, domain.ErrForbidden},
		{entity.RoleVendedor, policy.OpListLeads, nil},
		{entity.RoleVendedor, policy.OpUpdateLead, nil},
		{entity.RoleVendedor, policy.OpListUsers, domain.ErrForbidden},
		{entity.RoleVendedor, policy.OpListVendedores, nil},

		// gestor: tudo exceto criar lead (criação é sempre do indicador)
		{entity.RoleGestor, policy.OpCreateLead, domain.ErrForbidden},
		{entity.RoleGestor, policy.OpListLeads, nil},
		{entity.RoleGestor, policy.OpUpdateLead, nil},
		{entity.RoleGestor, policy.OpListUsers, nil},
		{entity.RoleGestor, policy.OpListVendedores, nil},
		{entity.RoleGestor, policy.OpViewDashboard, nil},
	}
	for _, c := range cases {
		got := policy.Authorize(c.role, c.op)
		assert.Equal(t, c.want, got, "papel=%s op=%s", c.role, c.op)
	}
}

// Identidade não resolvida (papel vazio ou desconhecido) deve ser distinta
// de proibido: ErrUnauthorized, nunca ErrForbidden.
func TestAuthorize_PapelDesconhecido(t *testing.T) {
	assert.ErrorIs(t, policy.Authorize("", policy.OpListLeads), domain.ErrUnauthorized)
	assert.ErrorIs(t, policy.Authorize("admin", policy.OpListLeads), domain.ErrUnauthorized)
}

func TestListScope_PorPapel(t *testing.T) {
	assert.Equal(t, policy.ScopeAll, policy.ListScope(entity.RoleGestor))
	assert.Equal(t, policy.ScopeAssigned, policy.ListScope(entity.RoleVendedor))
	assert.Equal(t, policy.ScopeOwn, policy.ListScope(entity.RoleIndicador))
	assert.Equal(t, policy.ScopeNone, policy.ListScope("outro"))
}
