package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/model"
	"gorm.io/gorm"
)

// TaxonomyRepository manages categories and tags. Category deletion is
// unconditional; products referencing a deleted category fall back to
// no category via the store constraint.
type TaxonomyRepository interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpsertCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListTags(ctx context.Context) ([]model.Tag, error)
	UpsertTag(ctx context.Context, tag *model.Tag) (*model.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *taxonomyRepository) UpsertCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	db := r.db.WithContext(ctx)
	if category.ID == uuid.Nil {
		if err := db.Create(category).Error; err != nil {
			return nil, err
		}
		return category, nil
	}

	tx := db.Model(&model.Category{}).Where("id = ?", category.ID).Updates(map[string]interface{}{
		"slug": category.Slug,
		"name": category.Name,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		if err := db.Create(category).Error; err != nil {
			return nil, err
		}
	}
	return category, nil
}

func (r *taxonomyRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{}).Error
}

func (r *taxonomyRepository) ListTags(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *taxonomyRepository) UpsertTag(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	db := r.db.WithContext(ctx)
	if tag.ID == uuid.Nil {
		if err := db.Create(tag).Error; err != nil {
			return nil, err
		}
		return tag, nil
	}

	tx := db.Model(&model.Tag{}).Where("id = ?", tag.ID).Updates(map[string]interface{}{
		"slug": tag.Slug,
		"name": tag.Name,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		if err := db.Create(tag).Error; err != nil {
			return nil, err
		}
	}
	return tag, nil
}

// DeleteTag removes the tag and its product links; a tag link has no
// life of its own.
func (r *taxonomyRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("tag_id = ?", id).Delete(&model.ProductTag{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Tag{}).Error
}
