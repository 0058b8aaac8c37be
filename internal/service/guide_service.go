package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/model"
	"github.com/robokitlab/catalog-api/internal/repository"
	"github.com/robokitlab/catalog-api/internal/validation"
	"github.com/robokitlab/catalog-api/pkg/apperror"
)

type GuideService interface {
	List(ctx context.Context, filter dto.ResourceFilter) ([]model.Guide, error)
	GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*model.Guide, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Guide, error)
	LinkedProductIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	Save(ctx context.Context, input dto.GuideInput) (*model.Guide, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type guideService struct {
	guideRepo repository.GuideRepository
	search    SearchService
}

func NewGuideService(guideRepo repository.GuideRepository, search SearchService) GuideService {
	return &guideService{
		guideRepo: guideRepo,
		search:    search,
	}
}

func (s *guideService) List(ctx context.Context, filter dto.ResourceFilter) ([]model.Guide, error) {
	return s.guideRepo.List(ctx, filter)
}

func (s *guideService) GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*model.Guide, error) {
	guide, err := s.guideRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if guide == nil || (!guide.Published && !includeUnpublished) {
		return nil, apperror.ErrNotFound
	}
	return guide, nil
}

func (s *guideService) GetByID(ctx context.Context, id uuid.UUID) (*model.Guide, error) {
	guide, err := s.guideRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, apperror.ErrNotFound
	}
	return guide, nil
}

func (s *guideService) LinkedProductIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	return s.guideRepo.LinkedProductIDs(ctx, id)
}

func (s *guideService) Save(ctx context.Context, input dto.GuideInput) (*model.Guide, error) {
	if verr := validation.Struct(input); verr != nil {
		return nil, verr
	}

	guide := &model.Guide{
		Slug:       input.Slug,
		Title:      input.Title,
		Summary:    input.Summary,
		Difficulty: input.Difficulty,
		EstMinutes: input.EstMinutes,
		Content:    input.Content,
		Published:  input.Published,
	}
	if input.ID != nil {
		guide.ID = *input.ID
	}

	guide, err := s.guideRepo.Upsert(ctx, guide)
	if err != nil {
		return nil, err
	}

	productIDs := input.ProductIDs
	if productIDs == nil {
		productIDs = []uuid.UUID{}
	}
	if err := s.guideRepo.SetProducts(ctx, guide.ID, productIDs); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexGuide(guide); err != nil {
			log.Printf("failed to index guide %s: %v", guide.ID, err)
		}
	}

	return guide, nil
}

func (s *guideService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.guideRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.search != nil {
		if err := s.search.DeleteGuide(id.String()); err != nil {
			log.Printf("failed to de-index guide %s: %v", id, err)
		}
	}
	return nil
}
