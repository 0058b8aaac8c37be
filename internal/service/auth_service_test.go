package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/model"
	"github.com/robokitlab/catalog-api/internal/repository"
	"github.com/robokitlab/catalog-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email, password, role string) *model.UserProfile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.UserProfile{Email: email, PasswordHash: string(hash), Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestAuthLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, db := setupService(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	user := seedUser(t, db, "teacher@example.com", "correct-horse", model.RoleAdmin)

	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		result, err := svc.Login(ctx, dto.LoginInput{Email: "teacher@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, user.ID, result.User.ID)
		assert.Positive(t, result.ExpiresIn)

		claims := &jwt.RegisteredClaims{}
		_, err = jwt.ParseWithClaims(result.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.Subject)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		_, err := svc.Login(ctx, dto.LoginInput{Email: "teacher@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("unknown email is unauthorized, not 404", func(t *testing.T) {
		_, err := svc.Login(ctx, dto.LoginInput{Email: "nobody@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		_, err := svc.Login(ctx, dto.LoginInput{Email: "not-an-email", Password: "whatever"})
		var verr *apperror.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "email")
	})
}
