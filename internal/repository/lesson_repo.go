package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/model"
	"gorm.io/gorm"
)

type LessonRepository interface {
	List(ctx context.Context, filter dto.ResourceFilter) ([]model.Lesson, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	FindBySlug(ctx context.Context, slug string) (*model.Lesson, error)
	Upsert(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetProducts(ctx context.Context, lessonID uuid.UUID, productIDs []uuid.UUID) error
	LinkedProductIDs(ctx context.Context, lessonID uuid.UUID) ([]uuid.UUID, error)
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) List(ctx context.Context, filter dto.ResourceFilter) ([]model.Lesson, error) {
	query := r.db.WithContext(ctx).Model(&model.Lesson{})

	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(summary) LIKE ?", pattern, pattern)
	}

	var lessons []model.Lesson
	if err := query.Order("updated_at DESC").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *lessonRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lesson).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepository) FindBySlug(ctx context.Context, slug string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&lesson).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepository) Upsert(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error) {
	if lesson.ID == uuid.Nil {
		if err := r.db.WithContext(ctx).Create(lesson).Error; err != nil {
			return nil, err
		}
		return r.FindByID(ctx, lesson.ID)
	}

	updates := map[string]interface{}{
		"slug":             lesson.Slug,
		"title":            lesson.Title,
		"summary":          lesson.Summary,
		"learning_goals":   lesson.LearningGoals,
		"prerequisites":    lesson.Prerequisites,
		"duration_minutes": lesson.DurationMinutes,
		"content":          lesson.Content,
		"published":        lesson.Published,
		"updated_at":       time.Now().UTC(),
	}

	tx := r.db.WithContext(ctx).Model(&model.Lesson{}).
		Where("id = ?", lesson.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).Create(lesson).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, lesson.ID)
}

func (r *lessonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("lesson_id = ?", id).Delete(&model.LessonLink{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Lesson{}).Error
}

func (r *lessonRepository) SetProducts(ctx context.Context, lessonID uuid.UUID, productIDs []uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("lesson_id = ?", lessonID).Delete(&model.LessonLink{}).Error; err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}
	links := make([]model.LessonLink, 0, len(productIDs))
	for _, productID := range productIDs {
		links = append(links, model.LessonLink{LessonID: lessonID, ProductID: productID})
	}
	return db.Create(&links).Error
}

func (r *lessonRepository) LinkedProductIDs(ctx context.Context, lessonID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.LessonLink{}).
		Where("lesson_id = ?", lessonID).Pluck("product_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
