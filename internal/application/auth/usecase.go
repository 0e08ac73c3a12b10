// Package auth contém os casos de uso de cadastro, login e resolução de
// identidade. A identidade por requisição chega como um email opaco
// (header X-User-Email); este pacote só resolve o email para um User. A
// validação criptográfica do token é fronteira plugável, fora do núcleo.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/indicavende/indicavende-api/internal/application/dto"
	"github.com/indicavende/indicavende-api/internal/domain"
	"github.com/indicavende/indicavende-api/internal/domain/entity"
	"github.com/indicavende/indicavende-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticação: registro, login, identidade.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Register cria um usuário: valida papel, hasheia a senha com bcrypt e
// persiste. Devolve ErrEmailAlreadyExists sem mutação se o email já existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/senha e devolve o usuário. O contrato original não
// emite token; a sessão do cliente guarda o email e o reapresenta a cada
// requisição.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user), nil
}

// ResolveIdentity resolve o email apresentado no header para um User.
// Email vazio ou desconhecido → ErrUnauthorized (não autenticado, distinto
// de proibido).
func (uc *AuthUseCase) ResolveIdentity(email string) (*entity.User, error) {
	if email == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// Seed cadastra os usuários de demonstração, pulando emails já existentes.
// Devolve quantos foram criados.
func (uc *AuthUseCase) Seed() (int, error) {
	seed := []dto.RegisterRequest{
		{Name: "Admin", Email: "admin@indicavende.me", Password: "admin123", Role: entity.RoleGestor},
		{Name: "Juliano", Email: "juliano@indicavende.me", Password: "seller123", Role: entity.RoleVendedor},
		{Name: "Pedro", Email: "pedro@indicavende.me", Password: "indicator123", Role: entity.RoleIndicador},
		{Name: "Daniela", Email: "daniela@indicavende.me", Password: "seller123", Role: entity.RoleVendedor},
	}
	created := 0
	for _, in := range seed {
		_, err := uc.Register(in)
		if err == domain.ErrEmailAlreadyExists {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
