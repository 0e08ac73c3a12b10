package repository

import "github.com/indicavende/indicavende-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
// Buscas que não encontram nada devolvem (nil, nil), não erro.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ListAll() ([]*entity.User, error)
	ListByRole(role string) ([]*entity.User, error)
}
