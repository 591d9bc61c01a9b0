package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/domain"
	"github.com/hounsa/agrisuivi/internal/domain/entity"
	"github.com/hounsa/agrisuivi/internal/domain/repository"
	"github.com/hounsa/agrisuivi/pkg/jwt"
)

// JWTConfig configuration pour la génération du jeton de session.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase cas d'usage d'authentification : inscription, connexion, résolution de session.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construit le cas d'usage.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crée un utilisateur : hash bcrypt du mot de passe puis persistance.
// Retourne ErrEmailAlreadyExists ou ErrUsernameTaken si l'identité est déjà prise.
// La validation de forme des champs est faite en amont (dto.RegisterForm.Validate).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterForm) (*entity.User, error) {
	if existing, _ := uc.userRepo.GetByEmail(ctx, in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, _ := uc.userRepo.GetByUsername(ctx, in.Username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		IsActive:     true,
		IsAdmin:      false,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login vérifie email/mot de passe et génère le jeton de session.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginForm) (string, *entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return "", nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Resolve transforme un jeton de session en utilisateur.
// Un jeton absent, invalide ou expiré donne (nil, nil) : l'état anonyme, jamais une erreur.
func (uc *AuthUseCase) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}
	userID, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, nil
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, nil
	}
	if !user.IsActive {
		return nil, nil
	}
	return user, nil
}

// SessionTTL durée de vie du cookie de session, alignée sur l'expiration du jeton.
func (uc *AuthUseCase) SessionTTL() time.Duration {
	return time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
}
