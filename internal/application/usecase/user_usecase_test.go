package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indicavende/indicavende-api/internal/application/usecase"
	"github.com/indicavende/indicavende-api/internal/domain"
	"github.com/indicavende/indicavende-api/internal/domain/entity"
)

func rosterRepo() *fakeUserRepo {
	return newFakeUserRepo(
		&entity.User{ID: "g1", Name: "Alice", Email: "alice@x.me", Role: entity.RoleGestor},
		&entity.User{ID: "v1", Name: "Ana", Email: "ana@x.me", Role: entity.RoleVendedor},
		&entity.User{ID: "v2", Name: "Caio", Email: "caio@x.me", Role: entity.RoleVendedor},
		&entity.User{ID: "i1", Name: "Bento", Email: "bento@x.me", Role: entity.RoleIndicador},
	)
}

// Somente o gestor lista o cadastro completo de usuários.
func TestUserList_SomenteGestor(t *testing.T) {
	uc := usecase.NewUserUseCase(rosterRepo())

	out, err := uc.List(entity.RoleGestor)
	require.NoError(t, err)
	assert.Len(t, out, 4)

	_, err = uc.List(entity.RoleVendedor)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.List(entity.RoleIndicador)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.List("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// O roster de vendedores é visível a qualquer papel autenticado e só
// inclui usuários com papel vendedor.
func TestUserListVendedores_TodosOsPapeis(t *testing.T) {
	uc := usecase.NewUserUseCase(rosterRepo())

	for _, role := range []string{entity.RoleGestor, entity.RoleVendedor, entity.RoleIndicador} {
		out, err := uc.ListVendedores(role)
		require.NoError(t, err, "papel %s", role)
		require.Len(t, out, 2)
		for _, u := range out {
			assert.Equal(t, entity.RoleVendedor, u.Role)
		}
	}

	_, err := uc.ListVendedores("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
