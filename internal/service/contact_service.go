package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/model"
	"github.com/robokitlab/catalog-api/internal/repository"
	"github.com/robokitlab/catalog-api/internal/validation"
	"github.com/robokitlab/catalog-api/pkg/apperror"
)

type ContactService interface {
	Submit(ctx context.Context, input dto.ContactInput) error
	List(ctx context.Context) ([]model.ContactSubmission, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	rdb         *redis.Client
	limit       time.Duration
}

func NewContactService(contactRepo repository.ContactRepository, rdb *redis.Client, limit time.Duration) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		rdb:         rdb,
		limit:       limit,
	}
}

func (s *contactService) Submit(ctx context.Context, input dto.ContactInput) error {
	if verr := validation.Struct(input); verr != nil {
		return verr
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.rdb, input.Email, "contact", s.limit)
	if err != nil {
		return err
	}
	if !allowed {
		ttl, _ := GetRateLimitTTL(ctx, s.rdb, input.Email, "contact")
		if ttl > 0 {
			return apperror.New(http.StatusTooManyRequests,
				fmt.Sprintf("you already sent a message recently. Please wait %.0f seconds", ttl.Seconds()),
				apperror.ErrRateLimitExceeded)
		}
		return apperror.ErrRateLimitExceeded
	}

	submission := &model.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	return s.contactRepo.Create(ctx, submission)
}

func (s *contactService) List(ctx context.Context) ([]model.ContactSubmission, error) {
	return s.contactRepo.List(ctx)
}
