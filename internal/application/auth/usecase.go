package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/domain"
	"github.com/jhondav/agencia-api/internal/domain/entity"
	"github.com/jhondav/agencia-api/internal/domain/repository"
	"github.com/jhondav/agencia-api/internal/domain/space"
	"github.com/jhondav/agencia-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login. Al loguear
// resuelve el espacio inicial y los permitidos con el mapeo rol → espacios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	rsm      space.RoleSpaceMap
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, rsm space.RoleSpaceMap, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, rsm: rsm, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: valida el rol contra el mapeo, hashea el
// password con bcrypt y persiste. ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := space.Role(in.Role)
	if role == "" {
		role = space.RoleSales
	}
	// Un rol fuera del conjunto enumerado no se acepta: seguiría vivo en
	// cada token emitido y rompería el control de espacios aguas abajo.
	if _, err := uc.rsm.PermittedSpaces(role); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:              uuid.New().String(),
		Email:           in.Email,
		PasswordHash:    string(hash),
		Name:            name,
		Role:            role,
		AccountID:       in.AccountID,
		VendorContactID: in.VendorContactID,
		Status:          "active",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera el JWT y devuelve token + usuario +
// espacio inicial resuelto por rol (nunca "internal" sin verificar).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	permitted, err := uc.rsm.PermittedSpaces(user.Role)
	if err != nil {
		// Rol corrupto en DB: se rechaza el login en lugar de emitir un
		// token que luego fallaría en cada verificación de espacio.
		return nil, err
	}
	initial, err := uc.rsm.DefaultSpaceFor(user.Role)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Options{
		UserID:          user.ID,
		Role:            string(user.Role),
		AccountID:       user.AccountID,
		VendorContactID: user.VendorContactID,
	})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:           token,
		User:            *toUserResponse(user),
		ActiveSpace:     string(initial),
		PermittedSpaces: spacesToStrings(permitted),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            string(u.Role),
		AccountID:       u.AccountID,
		VendorContactID: u.VendorContactID,
		Status:          u.Status,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func spacesToStrings(ss []space.Space) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}
