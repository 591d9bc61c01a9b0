package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hounsa/agrisuivi/internal/application/auth"
	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/domain"
	"github.com/hounsa/agrisuivi/internal/domain/entity"
)

// fakeUserRepo implémentation en mémoire du port UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User // par ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "agrisuivi-test"}
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		ID:           "00000000-0000-0000-0000-00000000000" + string(rune('1'+len(repo.users))),
		Username:     "user" + email,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     active,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestRegister_CreeUnCompteActif(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	user, err := uc.Register(context.Background(), dto.RegisterForm{
		Username:        "awa_codjo",
		Email:           "awa@agrisuivi.bj",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "secret123", user.PasswordHash, "le mot de passe doit être haché")
}

func TestRegister_EmailDejaPris(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "awa@agrisuivi.bj", "secret123", true)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterForm{
		Username: "autre", Email: "awa@agrisuivi.bj", Password: "secret123", ConfirmPassword: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_UsernameDejaPris(t *testing.T) {
	repo := newFakeUserRepo()
	existing := seedUser(t, repo, "awa@agrisuivi.bj", "secret123", true)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterForm{
		Username: existing.Username, Email: "autre@agrisuivi.bj", Password: "secret123", ConfirmPassword: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLogin_IdentifiantsValides(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "awa@agrisuivi.bj", "secret123", true)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	token, user, err := uc.Login(context.Background(), dto.LoginForm{Email: "awa@agrisuivi.bj", Password: "secret123"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
}

func TestLogin_EmailInconnu(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	_, _, err := uc.Login(context.Background(), dto.LoginForm{Email: "inconnu@agrisuivi.bj", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_MauvaisMotDePasse(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "awa@agrisuivi.bj", "secret123", true)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, _, err := uc.Login(context.Background(), dto.LoginForm{Email: "awa@agrisuivi.bj", Password: "mauvais"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CompteDesactive(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "awa@agrisuivi.bj", "secret123", false)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, _, err := uc.Login(context.Background(), dto.LoginForm{Email: "awa@agrisuivi.bj", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestResolve_JetonValide(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "awa@agrisuivi.bj", "secret123", true)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	token, expected, err := uc.Login(context.Background(), dto.LoginForm{Email: "awa@agrisuivi.bj", Password: "secret123"})
	require.NoError(t, err)

	user, err := uc.Resolve(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, expected.ID, user.ID)
}

// Tout jeton inutilisable donne l'état anonyme, jamais une erreur.
func TestResolve_DegradeEnAnonyme(t *testing.T) {
	repo := newFakeUserRepo()
	inactive := seedUser(t, repo, "inactif@agrisuivi.bj", "secret123", true)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	token, _, err := uc.Login(context.Background(), dto.LoginForm{Email: inactive.Email, Password: "secret123"})
	require.NoError(t, err)
	inactive.IsActive = false

	cases := map[string]string{
		"jeton vide":            "",
		"jeton illisible":       "pas-un-jwt",
		"utilisateur désactivé": token,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			user, err := uc.Resolve(context.Background(), tok)
			assert.NoError(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestSessionTTL_AligneeSurLExpiration(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTConfig())
	assert.Equal(t, time.Hour, uc.SessionTTL())
}
