package usecase

import (
	"github.com/indicavende/indicavende-api/internal/application/dto"
	"github.com/indicavende/indicavende-api/internal/domain/entity"
	"github.com/indicavende/indicavende-api/internal/domain/policy"
	"github.com/indicavende/indicavende-api/internal/domain/repository"
)

// UserUseCase listagens de usuários com autorização por papel.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso com o porto de persistência.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devolve todos os usuários; restrito ao gestor.
func (uc *UserUseCase) List(actorRole string) ([]*dto.UserResponse, error) {
	if err := policy.Authorize(actorRole, policy.OpListUsers); err != nil {
		return nil, err
	}
	users, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return usersToResponse(users), nil
}

// ListVendedores devolve o roster de vendedores; qualquer papel autenticado
// pode consultar (o indicador precisa escolher o vendedor ao criar o lead).
func (uc *UserUseCase) ListVendedores(actorRole string) ([]*dto.UserResponse, error) {
	if err := policy.Authorize(actorRole, policy.OpListVendedores); err != nil {
		return nil, err
	}
	users, err := uc.repo.ListByRole(entity.RoleVendedor)
	if err != nil {
		return nil, err
	}
	return usersToResponse(users), nil
}

func usersToResponse(users []*entity.User) []*dto.UserResponse {
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, &dto.UserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}
