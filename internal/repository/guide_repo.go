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

type GuideRepository interface {
	List(ctx context.Context, filter dto.ResourceFilter) ([]model.Guide, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Guide, error)
	FindBySlug(ctx context.Context, slug string) (*model.Guide, error)
	Upsert(ctx context.Context, guide *model.Guide) (*model.Guide, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetProducts(ctx context.Context, guideID uuid.UUID, productIDs []uuid.UUID) error
	LinkedProductIDs(ctx context.Context, guideID uuid.UUID) ([]uuid.UUID, error)
}

type guideRepository struct {
	db *gorm.DB
}

func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &guideRepository{db: db}
}

func (r *guideRepository) List(ctx context.Context, filter dto.ResourceFilter) ([]model.Guide, error) {
	query := r.db.WithContext(ctx).Model(&model.Guide{})

	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(summary) LIKE ?", pattern, pattern)
	}

	var guides []model.Guide
	if err := query.Order("updated_at DESC").Find(&guides).Error; err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *guideRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Guide, error) {
	var guide model.Guide
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&guide).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (r *guideRepository) FindBySlug(ctx context.Context, slug string) (*model.Guide, error) {
	var guide model.Guide
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&guide).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (r *guideRepository) Upsert(ctx context.Context, guide *model.Guide) (*model.Guide, error) {
	if guide.ID == uuid.Nil {
		if err := r.db.WithContext(ctx).Create(guide).Error; err != nil {
			return nil, err
		}
		return r.FindByID(ctx, guide.ID)
	}

	updates := map[string]interface{}{
		"slug":        guide.Slug,
		"title":       guide.Title,
		"summary":     guide.Summary,
		"difficulty":  guide.Difficulty,
		"est_minutes": guide.EstMinutes,
		"content":     guide.Content,
		"published":   guide.Published,
		"updated_at":  time.Now().UTC(),
	}

	tx := r.db.WithContext(ctx).Model(&model.Guide{}).
		Where("id = ?", guide.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).Create(guide).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, guide.ID)
}

func (r *guideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("guide_id = ?", id).Delete(&model.GuideLink{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Guide{}).Error
}

func (r *guideRepository) SetProducts(ctx context.Context, guideID uuid.UUID, productIDs []uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("guide_id = ?", guideID).Delete(&model.GuideLink{}).Error; err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}
	links := make([]model.GuideLink, 0, len(productIDs))
	for _, productID := range productIDs {
		links = append(links, model.GuideLink{GuideID: guideID, ProductID: productID})
	}
	return db.Create(&links).Error
}

func (r *guideRepository) LinkedProductIDs(ctx context.Context, guideID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.GuideLink{}).
		Where("guide_id = ?", guideID).Pluck("product_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
