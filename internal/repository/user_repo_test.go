package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFinders_AbsentIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("FindByID unknown id", func(t *testing.T) {
		user, err := repo.FindByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("FindByEmail unknown email", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("FindByID known id", func(t *testing.T) {
		seeded := &model.UserProfile{
			Email:        "editor@example.com",
			PasswordHash: "x",
			Role:         model.RoleUser,
		}
		require.NoError(t, repo.Create(ctx, seeded))

		user, err := repo.FindByID(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "editor@example.com", user.Email)
	})
}

func TestUserUpdateRoleByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seeded := &model.UserProfile{
		Email:        "pending@example.com",
		PasswordHash: "x",
		Role:         model.RoleUser,
	}
	require.NoError(t, repo.Create(ctx, seeded))

	t.Run("known email promotes and reports found", func(t *testing.T) {
		found, err := repo.UpdateRoleByEmail(ctx, "pending@example.com", model.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, found)

		user, err := repo.FindByEmail(ctx, "pending@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})

	t.Run("unknown email reports not found", func(t *testing.T) {
		found, err := repo.UpdateRoleByEmail(ctx, "ghost@example.com", model.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
