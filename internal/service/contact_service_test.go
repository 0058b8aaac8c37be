package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/repository"
	"github.com/robokitlab/catalog-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactService(t *testing.T) ContactService {
	t.Helper()
	_, db := setupService(t)
	return NewContactService(repository.NewContactRepository(db), nil, time.Minute)
}

func validContact() dto.ContactInput {
	return dto.ContactInput{
		Name:    "Maya Ortiz",
		Email:   "maya@example.com",
		Message: "Do you ship the gearbox kit to schools in bulk?",
	}
}

func TestContactSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("valid submission is stored", func(t *testing.T) {
		svc := setupContactService(t)

		require.NoError(t, svc.Submit(ctx, validContact()))

		stored, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "maya@example.com", stored[0].Email)
	})

	t.Run("invalid payload is rejected with field details", func(t *testing.T) {
		svc := setupContactService(t)

		input := validContact()
		input.Email = "not-an-email"
		input.Message = "too short"

		err := svc.Submit(ctx, input)
		var verr *apperror.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "email")
		assert.Contains(t, verr.Fields, "message")

		stored, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("no limiter configured lets repeat submissions through", func(t *testing.T) {
		svc := setupContactService(t)

		require.NoError(t, svc.Submit(ctx, validContact()))
		require.NoError(t, svc.Submit(ctx, validContact()))

		stored, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, stored, 2)
	})
}
