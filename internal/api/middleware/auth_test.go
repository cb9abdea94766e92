package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/richei-group/richei-backend/internal/config"
	"github.com/richei-group/richei-backend/internal/repository"
	"github.com/richei-group/richei-backend/internal/service"
	"github.com/richei-group/richei-backend/internal/types"
)

type stubUserRepo struct {
	users  map[string]*repository.User
	tokens map[string]*repository.RefreshToken
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:  make(map[string]*repository.User),
		tokens: make(map[string]*repository.RefreshToken),
	}
}

func (r *stubUserRepo) Create(ctx context.Context, user *repository.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id string) (*repository.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) SaveRefreshToken(ctx context.Context, rt *repository.RefreshToken) error {
	r.tokens[rt.Token] = rt
	return nil
}

func (r *stubUserRepo) FindRefreshToken(ctx context.Context, token string) (*repository.RefreshToken, error) {
	if rt, ok := r.tokens[token]; ok {
		return rt, nil
	}
	return nil, nil
}

func (r *stubUserRepo) DeleteRefreshToken(ctx context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     1,
		RefreshExpiry: 1,
	}
}

// setupRouter mirrors the route layout: the investor listing sits behind
// AuthMiddleware alone, admin routes behind AuthMiddleware plus RequireAdmin.
func setupRouter(authSvc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c), "role": GetRole(c)})
	}

	r.GET("/projects", AuthMiddleware(authSvc), ok)

	admin := r.Group("/admin")
	admin.Use(AuthMiddleware(authSvc), RequireAdmin())
	admin.GET("/projects", ok)

	return r
}

func seedAdmin(t *testing.T, repo *stubUserRepo) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &repository.User{
		ID:       "admin-1",
		Email:    "admin@richei.africa",
		Password: string(hashed),
		Name:     "Richei Admin",
		Role:     types.RoleAdmin,
	}))
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	authSvc := service.NewAuthService(testConfig(), newStubUserRepo())
	r := setupRouter(authSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	authSvc := service.NewAuthService(testConfig(), newStubUserRepo())
	r := setupRouter(authSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvestorCanListButNotReachAdminRoutes(t *testing.T) {
	repo := newStubUserRepo()
	authSvc := service.NewAuthService(testConfig(), repo)
	r := setupRouter(authSvc)

	_, accessToken, _, err := authSvc.Register(context.Background(), "Amaka Obi", "amaka@example.com", "password123")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminCanReachAdminRoutes(t *testing.T) {
	repo := newStubUserRepo()
	authSvc := service.NewAuthService(testConfig(), repo)
	r := setupRouter(authSvc)

	seedAdmin(t, repo)
	_, accessToken, _, err := authSvc.Login(context.Background(), "admin@richei.africa", "password123")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	authSvc := service.NewAuthService(testConfig(), newStubUserRepo())
	r := setupRouter(authSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
