package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/indicavende/indicavende-api/internal/application/dto"
	"github.com/indicavende/indicavende-api/internal/domain"
	"github.com/indicavende/indicavende-api/internal/domain/entity"
	"github.com/indicavende/indicavende-api/internal/domain/policy"
	"github.com/indicavende/indicavende-api/internal/domain/repository"
)

// LeadUseCase regras de negócio do pipeline de leads: criação pelo
// indicador, listagem com escopo por papel e atualização de status.
type LeadUseCase struct {
	leadRepo repository.LeadRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewLeadUseCase constrói o caso de uso com os portos de persistência.
func NewLeadUseCase(leadRepo repository.LeadRepository, userRepo repository.UserRepository) *LeadUseCase {
	return &LeadUseCase{leadRepo: leadRepo, userRepo: userRepo, now: time.Now}
}

// Create registra um lead em nome do indicador autenticado. O status inicial
// é sempre "new" (qualquer status vindo do chamador é ignorado) e o
// vendedor indicado precisa existir com papel de vendedor.
func (uc *LeadUseCase) Create(actor *entity.User, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.Authorize(actor.Role, policy.OpCreateLead); err != nil {
		return nil, err
	}
	if in.ClientName == "" || in.Phone == "" || in.CityState == "" || in.VendedorID == "" {
		return nil, domain.ErrInvalidInput
	}
	vendedor, err := uc.userRepo.GetByID(in.VendedorID)
	if err != nil {
		return nil, err
	}
	if vendedor == nil || vendedor.Role != entity.RoleVendedor {
		return nil, domain.ErrUserNotFound
	}
	lead := &entity.Lead{
		ID:          uuid.New().String(),
		ClientName:  in.ClientName,
		Phone:       in.Phone,
		CityState:   in.CityState,
		Observation: in.Observation,
		Status:      entity.StatusNew,
		IndicadorID: actor.ID,
		VendedorID:  in.VendedorID,
		CreatedAt:   uc.now(),
	}
	if err := uc.leadRepo.Create(lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// List devolve os leads visíveis ao ator segundo o escopo do papel:
// gestor → todos (paginado), vendedor → atribuídos, indicador → próprios.
func (uc *LeadUseCase) List(actor *entity.User, page dto.PageRequest) ([]*dto.LeadResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.Authorize(actor.Role, policy.OpListLeads); err != nil {
		return nil, err
	}
	page.DefaultPage()

	var (
		leads []*entity.Lead
		err   error
	)
	switch policy.ListScope(actor.Role) {
	case policy.ScopeAll:
		leads, err = uc.leadRepo.ListAll(page.Limit, page.Skip)
	case policy.ScopeAssigned:
		leads, err = uc.leadRepo.ListByVendedor(actor.ID)
	case policy.ScopeOwn:
		leads, err = uc.leadRepo.ListByIndicador(actor.ID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return leadsToResponse(leads), nil
}

// VisibleLeads devolve o conjunto de leads do escopo do ator sem paginação,
// insumo do serviço de agregação (o agregador nunca filtra por conta
// própria).
func (uc *LeadUseCase) VisibleLeads(actor *entity.User) ([]*entity.Lead, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	switch policy.ListScope(actor.Role) {
	case policy.ScopeAll:
		// limite alto o bastante para o dashboard; mesmo contrato do ListAll
		return uc.leadRepo.ListAll(1_000_000, 0)
	case policy.ScopeAssigned:
		return uc.leadRepo.ListByVendedor(actor.ID)
	case policy.ScopeOwn:
		return uc.leadRepo.ListByIndicador(actor.ID)
	}
	return nil, domain.ErrForbidden
}

// UpdateStatus muda status/observação de um lead. A autorização é por papel
// apenas (vendedor ou gestor); não se verifica se o lead está atribuído ao
// vendedor; ver nota na tabela de capacidades em domain/policy.
// Observation nil preserva o texto anterior; ponteiro para "" zera.
func (uc *LeadUseCase) UpdateStatus(actor *entity.User, leadID string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.Authorize(actor.Role, policy.OpUpdateLead); err != nil {
		return nil, err
	}
	if !entity.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	lead, err := uc.leadRepo.UpdateStatus(leadID, in.Status, in.Observation, uc.now())
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrLeadNotFound
	}
	return toLeadResponse(lead), nil
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	return &dto.LeadResponse{
		ID:          l.ID,
		ClientName:  l.ClientName,
		Phone:       l.Phone,
		CityState:   l.CityState,
		Observation: l.Observation,
		Status:      l.Status,
		IndicadorID: l.IndicadorID,
		VendedorID:  l.VendedorID,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func leadsToResponse(leads []*entity.Lead) []*dto.LeadResponse {
	out := make([]*dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}
	return out
}
