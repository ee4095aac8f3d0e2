package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

// ProviderUseCase administración de proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// Create crea un proveedor en estado activo.
func (uc *ProviderUseCase) Create(ctx context.Context, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	now := time.Now()
	provider := &entity.Provider{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    entity.StatusActivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProviderUseCase) GetByID(ctx context.Context, id string) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	return toProviderResponse(provider), nil
}

// List lista proveedores, opcionalmente por estado.
func (uc *ProviderUseCase) List(ctx context.Context, status string) ([]dto.ProviderResponse, error) {
	list, err := uc.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProviderResponse(p))
	}
	return items, nil
}

// Update actualiza los datos de un proveedor.
func (uc *ProviderUseCase) Update(ctx context.Context, id string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		provider.Name = *in.Name
	}
	if in.Phone != nil {
		provider.Phone = *in.Phone
	}
	if in.Email != nil {
		provider.Email = *in.Email
	}
	provider.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// SetStatus activa o inactiva un proveedor.
func (uc *ProviderUseCase) SetStatus(ctx context.Context, id, status string) (*dto.ProviderResponse, error) {
	if status != entity.StatusActivo && status != entity.StatusInactivo {
		return nil, domain.ErrInvalidInput
	}
	provider, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	if provider.Status != status {
		if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		provider.Status = status
	}
	return toProviderResponse(provider), nil
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	if p == nil {
		return nil
	}
	return &dto.ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Email:     p.Email,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
