package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
	"github.com/jhoicas/revenue-api/pkg/jwt"
)

// refreshTokenBytes tamaño del refresh token antes de codificar en base64.
const refreshTokenBytes = 96

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret       string
	ExpMinutes   int
	Issuer       string
	RefreshHours int
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y cierre de sesión.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokenRepo repository.RefreshTokenRepository, jwtCfg JWTConfig) *AuthUseCase {
	if jwtCfg.ExpMinutes <= 0 {
		jwtCfg.ExpMinutes = 30
	}
	if jwtCfg.RefreshHours <= 0 {
		jwtCfg.RefreshHours = 2
	}
	return &AuthUseCase{userRepo: userRepo, tokenRepo: tokenRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol "user" (password con bcrypt) y emite el par de tokens.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issue(ctx, user, now)
}

// CreateAdmin crea un usuario administrador. Lo usa revenuectl.
func (uc *AuthUseCase) CreateAdmin(ctx context.Context, username, password string) error {
	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	return uc.userRepo.Create(ctx, &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Login verifica username/password y emite el par de tokens.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verificar password: %w", err)
	}
	return uc.issue(ctx, user, time.Now())
}

// Refresh revoca el refresh token recibido y emite un par nuevo (rotación).
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	now := time.Now()
	rt, err := uc.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if rt == nil || !rt.Usable(now) {
		return nil, domain.ErrInvalidRefreshToken
	}
	user, err := uc.userRepo.GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidRefreshToken
	}
	if err := uc.tokenRepo.Revoke(ctx, rt.ID); err != nil {
		return nil, err
	}
	return uc.issue(ctx, user, now)
}

// SignOut revoca un refresh token no revocado.
func (uc *AuthUseCase) SignOut(ctx context.Context, refreshToken string) error {
	rt, err := uc.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if rt == nil || rt.IsRevoked {
		return domain.ErrInvalidRefreshToken
	}
	return uc.tokenRepo.Revoke(ctx, rt.ID)
}

// SignOutAll revoca todos los refresh tokens del usuario.
func (uc *AuthUseCase) SignOutAll(ctx context.Context, userID string) error {
	return uc.tokenRepo.RevokeAllForUser(ctx, userID)
}

func (uc *AuthUseCase) issue(ctx context.Context, user *entity.User, now time.Time) (*dto.AuthResponse, error) {
	access, err := jwt.Generate(jwt.Options{
		Secret: uc.jwtCfg.Secret,
		Issuer: uc.jwtCfg.Issuer,
		TTL:    time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute,
		Now:    func() time.Time { return now },
	}, jwt.Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, err
	}
	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	rt := &entity.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.RefreshHours) * time.Hour),
		CreatedAt: now,
	}
	if err := uc.tokenRepo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return &dto.AuthResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func newRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generar refresh token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
