package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/model"
	"github.com/robokitlab/catalog-api/internal/repository"
	"github.com/robokitlab/catalog-api/internal/validation"
)

type TaxonomyService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	SaveCategory(ctx context.Context, input dto.CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListTags(ctx context.Context) ([]model.Tag, error)
	SaveTag(ctx context.Context, input dto.TagInput) (*model.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

type taxonomyService struct {
	taxonomyRepo repository.TaxonomyRepository
}

func NewTaxonomyService(taxonomyRepo repository.TaxonomyRepository) TaxonomyService {
	return &taxonomyService{taxonomyRepo: taxonomyRepo}
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.taxonomyRepo.ListCategories(ctx)
}

func (s *taxonomyService) SaveCategory(ctx context.Context, input dto.CategoryInput) (*model.Category, error) {
	if verr := validation.Struct(input); verr != nil {
		return nil, verr
	}

	category := &model.Category{
		Slug: input.Slug,
		Name: input.Name,
	}
	if input.ID != nil {
		category.ID = *input.ID
	}

	return s.taxonomyRepo.UpsertCategory(ctx, category)
}

func (s *taxonomyService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.taxonomyRepo.DeleteCategory(ctx, id)
}

func (s *taxonomyService) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.taxonomyRepo.ListTags(ctx)
}

func (s *taxonomyService) SaveTag(ctx context.Context, input dto.TagInput) (*model.Tag, error) {
	if verr := validation.Struct(input); verr != nil {
		return nil, verr
	}

	tag := &model.Tag{
		Slug: input.Slug,
		Name: input.Name,
	}
	if input.ID != nil {
		tag.ID = *input.ID
	}

	return s.taxonomyRepo.UpsertTag(ctx, tag)
}

func (s *taxonomyService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return s.taxonomyRepo.DeleteTag(ctx, id)
}
