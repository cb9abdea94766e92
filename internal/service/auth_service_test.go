package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/richei-group/richei-backend/internal/config"
	"github.com/richei-group/richei-backend/internal/repository"
	"github.com/richei-group/richei-backend/internal/types"
)

type fakeUserRepo struct {
	usersByEmail map[string]*repository.User
	usersByID    map[string]*repository.User
	tokens       map[string]*repository.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByEmail: map[string]*repository.User{},
		usersByID:    map[string]*repository.User{},
		tokens:       map[string]*repository.RefreshToken{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *repository.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*repository.User, error) {
	return f.usersByID[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*repository.User, error) {
	return f.usersByEmail[email], nil
}

func (f *fakeUserRepo) SaveRefreshToken(_ context.Context, rt *repository.RefreshToken) error {
	f.tokens[rt.Token] = rt
	return nil
}

func (f *fakeUserRepo) FindRefreshToken(_ context.Context, token string) (*repository.RefreshToken, error) {
	return f.tokens[token], nil
}

func (f *fakeUserRepo) DeleteRefreshToken(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpiry: 1, RefreshExpiry: 7}
}

func TestAuthService_RegisterDefaultsToInvestor(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)

	user, access, refresh, err := svc.Register(context.Background(), "Amaka Obi", "amaka@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, types.RoleInvestor, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Contains(t, repo.tokens, refresh)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)

	_, _, _, err := svc.Register(context.Background(), "Amaka Obi", "amaka@example.com", "password123")
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), "Someone Else", "amaka@example.com", "password456")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_LoginAndRoleClaim(t *testing.T) {
	repo := newFakeUserRepo()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	repo.Create(context.Background(), &repository.User{
		ID: "u-1", Email: "admin@richei.africa", Password: string(hashed),
		Name: "Richei Admin", Role: types.RoleAdmin,
	})
	svc := NewAuthService(testConfig(), repo)

	user, access, _, err := svc.Login(context.Background(), "admin@richei.africa", "password123")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	token, err := svc.ValidateToken(access)
	require.NoError(t, err)

	userID, err := svc.GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)

	role, err := svc.GetRoleFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, role)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	repo.Create(context.Background(), &repository.User{
		ID: "u-1", Email: "amaka@example.com", Password: string(hashed), Role: types.RoleInvestor,
	})
	svc := NewAuthService(testConfig(), repo)

	_, _, _, err := svc.Login(context.Background(), "amaka@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)

	_, _, refresh, err := svc.Register(context.Background(), "Amaka Obi", "amaka@example.com", "password123")
	require.NoError(t, err)

	access2, refresh2, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access2)
	assert.NotEqual(t, refresh, refresh2)
	assert.NotContains(t, repo.tokens, refresh)
	assert.Contains(t, repo.tokens, refresh2)
}

func TestAuthService_RefreshExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	repo.tokens["stale"] = &repository.RefreshToken{
		Token: "stale", UserID: "u-1", ExpiresAt: time.Now().Add(-time.Hour),
	}
	svc := NewAuthService(testConfig(), repo)

	_, _, err := svc.RefreshToken(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotContains(t, repo.tokens, "stale")
}
