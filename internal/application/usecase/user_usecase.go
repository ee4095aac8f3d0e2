package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lacigarreria/tienda-api/internal/application/auth"
	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo administrador).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario con rol explícito (cajero, domiciliario, etc.).
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
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
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		Email:          in.Email,
		PasswordHash:   string(hash),
		Name:           in.Name,
		Phone:          in.Phone,
		Address:        in.Address,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Role:           in.Role,
		Status:         entity.StatusActivo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios, opcionalmente por rol.
func (uc *UserUseCase) List(ctx context.Context, role string) ([]dto.UserResponse, error) {
	if role != "" && !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, role)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// ListCouriers lista domiciliarios activos (para asignar pedidos).
func (uc *UserUseCase) ListCouriers(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByRole(ctx, entity.RoleDomiciliario)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// Update actualiza datos del usuario. El email no cambia por esta vía.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.DocumentType != nil {
		user.DocumentType = *in.DocumentType
	}
	if in.DocumentNumber != nil {
		user.DocumentNumber = *in.DocumentNumber
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// SetStatus activa o inactiva un usuario. Un usuario inactivo pierde el
// acceso en el siguiente login.
func (uc *UserUseCase) SetStatus(ctx context.Context, id, status string) (*dto.UserResponse, error) {
	if status != entity.StatusActivo && status != entity.StatusInactivo {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if user.Status != status {
		if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		user.Status = status
	}
	return auth.ToUserResponse(user), nil
}
