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

type LessonService interface {
	List(ctx context.Context, filter dto.ResourceFilter) ([]model.Lesson, error)
	GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*model.Lesson, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	LinkedProductIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	Save(ctx context.Context, input dto.LessonInput) (*model.Lesson, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type lessonService struct {
	lessonRepo repository.LessonRepository
	search     SearchService
}

func NewLessonService(lessonRepo repository.LessonRepository, search SearchService) LessonService {
	return &lessonService{
		lessonRepo: lessonRepo,
		search:     search,
	}
}

func (s *lessonService) List(ctx context.Context, filter dto.ResourceFilter) ([]model.Lesson, error) {
	return s.lessonRepo.List(ctx, filter)
}

func (s *lessonService) GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*model.Lesson, error) {
	lesson, err := s.lessonRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if lesson == nil || (!lesson.Published && !includeUnpublished) {
		return nil, apperror.ErrNotFound
	}
	return lesson, nil
}

func (s *lessonService) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	lesson, err := s.lessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, apperror.ErrNotFound
	}
	return lesson, nil
}

func (s *lessonService) LinkedProductIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	return s.lessonRepo.LinkedProductIDs(ctx, id)
}

func (s *lessonService) Save(ctx context.Context, input dto.LessonInput) (*model.Lesson, error) {
	if verr := validation.Struct(input); verr != nil {
		return nil, verr
	}

	// Goal and prerequisite lists keep their submitted order verbatim;
	// absence means empty, never null.
	lesson := &model.Lesson{
		Slug:            input.Slug,
		Title:           input.Title,
		Summary:         input.Summary,
		LearningGoals:   model.StringList(orEmptyStrings(input.LearningGoals)),
		Prerequisites:   model.StringList(orEmptyStrings(input.Prerequisites)),
		DurationMinutes: input.DurationMinutes,
		Content:         input.Content,
		Published:       input.Published,
	}
	if input.ID != nil {
		lesson.ID = *input.ID
	}

	lesson, err := s.lessonRepo.Upsert(ctx, lesson)
	if err != nil {
		return nil, err
	}

	productIDs := input.ProductIDs
	if productIDs == nil {
		productIDs = []uuid.UUID{}
	}
	if err := s.lessonRepo.SetProducts(ctx, lesson.ID, productIDs); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexLesson(lesson); err != nil {
			log.Printf("failed to index lesson %s: %v", lesson.ID, err)
		}
	}

	return lesson, nil
}

func (s *lessonService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.lessonRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.search != nil {
		if err := s.search.DeleteLesson(id.String()); err != nil {
			log.Printf("failed to de-index lesson %s: %v", id, err)
		}
	}
	return nil
}

func orEmptyStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
