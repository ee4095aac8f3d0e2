package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lacigarreria/tienda-api/internal/application/cart"
	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

// AddressUseCase direcciones guardadas del cliente y selección para checkout.
type AddressUseCase struct {
	repo      repository.AddressRepository
	selection cart.SelectionStore
}

// NewAddressUseCase construye el caso de uso.
func NewAddressUseCase(repo repository.AddressRepository, selection cart.SelectionStore) *AddressUseCase {
	return &AddressUseCase{repo: repo, selection: selection}
}

// Create guarda una dirección nueva del usuario.
func (uc *AddressUseCase) Create(ctx context.Context, userID string, in dto.CreateAddressRequest) (*dto.AddressResponse, error) {
	address := &entity.Address{
		ID:        uuid.New().String(),
		UserID:    userID,
		Label:     in.Label,
		Line:      in.Line,
		City:      in.City,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, address); err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

// List lista las direcciones del usuario.
func (uc *AddressUseCase) List(ctx context.Context, userID string) ([]dto.AddressResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AddressResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAddressResponse(a))
	}
	return items, nil
}

// Delete elimina una dirección del usuario. Si era la seleccionada para
// el checkout, la selección también se limpia.
func (uc *AddressUseCase) Delete(ctx context.Context, userID, addressID string) error {
	address, err := uc.repo.GetByID(ctx, addressID)
	if err != nil {
		return err
	}
	if address == nil || address.UserID != userID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, addressID, userID); err != nil {
		return err
	}
	selected, err := uc.selection.GetSelection(ctx, userID)
	if err == nil && selected == addressID {
		_ = uc.selection.ClearSelection(ctx, userID)
	}
	return nil
}

// Select marca la dirección a usar en el próximo checkout. La dirección
// debe pertenecer al usuario.
func (uc *AddressUseCase) Select(ctx context.Context, userID, addressID string) error {
	address, err := uc.repo.GetByID(ctx, addressID)
	if err != nil {
		return err
	}
	if address == nil || address.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.selection.SetSelection(ctx, userID, addressID)
}

func toAddressResponse(a *entity.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		ID:        a.ID,
		Label:     a.Label,
		Line:      a.Line,
		City:      a.City,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
	}
}
