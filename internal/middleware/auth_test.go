package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo satisfies just enough of the repository for the gate.
type stubUserRepo struct {
	user *model.UserProfile
	err  error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	return s.user, s.err
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	return s.user, s.err
}

func (s *stubUserRepo) List(ctx context.Context) ([]model.UserProfile, error) { return nil, s.err }

func (s *stubUserRepo) Create(ctx context.Context, user *model.UserProfile) error { return s.err }

func (s *stubUserRepo) UpdateRoleByEmail(ctx context.Context, email, role string) (bool, error) {
	return false, s.err
}

func signToken(t *testing.T, secret string, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func adminRouter(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(repo)

	router := gin.New()
	router.GET("/admin/ping", m.RequireAuth(), m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	userID := uuid.New()

	t.Run("missing header is rejected", func(t *testing.T) {
		router := adminRouter(&stubUserRepo{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with the wrong secret is rejected", func(t *testing.T) {
		router := adminRouter(&stubUserRepo{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", userID.String()))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		router := adminRouter(&stubUserRepo{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	userID := uuid.New()

	doRequest := func(t *testing.T, repo *stubUserRepo) *httptest.ResponseRecorder {
		t.Helper()
		router := adminRouter(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", userID.String()))
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("admin passes", func(t *testing.T) {
		w := doRequest(t, &stubUserRepo{
			user: &model.UserProfile{ID: userID, Role: model.RoleAdmin},
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("regular user is rejected", func(t *testing.T) {
		w := doRequest(t, &stubUserRepo{
			user: &model.UserProfile{ID: userID, Role: model.RoleUser},
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		w := doRequest(t, &stubUserRepo{})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("store failure fails closed", func(t *testing.T) {
		w := doRequest(t, &stubUserRepo{err: errors.New("connection refused")})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "admin access required")
	})

	t.Run("non-uuid subject is rejected", func(t *testing.T) {
		router := adminRouter(&stubUserRepo{
			user: &model.UserProfile{ID: userID, Role: model.RoleAdmin},
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "someone"))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
