package entity

import "time"

// Papéis válidos para User. Sem hierarquia: a autorização é por
// correspondência exata contra a tabela de capacidades em domain/policy.
const (
	RoleGestor    = "gestor"    // gerente: visão e edição globais
	RoleVendedor  = "vendedor"  // trabalha os leads atribuídos a ele
	RoleIndicador = "indicador" // origina leads, vê só os próprios
)

// ValidRole informa se s é um dos três papéis conhecidos.
func ValidRole(s string) bool {
	return s == RoleGestor || s == RoleVendedor || s == RoleIndicador
}

// User representa um usuário do sistema. O email é a chave de identidade
// (único global); o papel é imutável após o cadastro, não existe operação
// de troca de papel.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca em texto plano após persistir
	Role         string // gestor, vendedor, indicador
	CreatedAt    time.Time
}
