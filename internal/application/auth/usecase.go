package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/domain"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
	"github.com/lacigarreria/tienda-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un cliente: hashea password con bcrypt y persiste.
// El registro público nunca acepta rol; todo registro entra como "cliente".
// Devuelve ErrEmailAlreadyExists si el email ya está tomado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
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
		Role:           entity.RoleCliente,
		Status:         entity.StatusActivo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Un usuario inactivo no puede iniciar sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActivo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse arma la respuesta pública de un usuario.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Phone:          u.Phone,
		Address:        u.Address,
		DocumentType:   u.DocumentType,
		DocumentNumber: u.DocumentNumber,
		Role:           u.Role,
		Status:         u.Status,
		CreatedAt:      u.CreatedAt,
	}
}
