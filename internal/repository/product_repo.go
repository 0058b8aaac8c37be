package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/model"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ProductRepository is the only component that talks to the product
// tables. Lookups return (nil, nil) when the entity does not exist;
// absence is not an error at this layer.
type ProductRepository interface {
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	GetWithRelations(ctx context.Context, id uuid.UUID) (*model.ProductWithRelations, error)
	GetWithRelationsBySlug(ctx context.Context, slug string) (*model.ProductWithRelations, error)
	Upsert(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error

	UpsertSection(ctx context.Context, section *model.ProductSection) error

	SetTags(ctx context.Context, productID uuid.UUID, tagIDs []uuid.UUID) error
	SetGuides(ctx context.Context, productID uuid.UUID, guideIDs []uuid.UUID) error
	SetLessons(ctx context.Context, productID uuid.UUID, lessonIDs []uuid.UUID) error

	UpsertFaq(ctx context.Context, faq *model.Faq) error
	DeleteFaq(ctx context.Context, id uuid.UUID) error
	UpsertYoutube(ctx context.Context, media *model.MediaYoutube) error
	DeleteYoutube(ctx context.Context, id uuid.UUID) error
	UpsertImage(ctx context.Context, media *model.MediaImage) error
	DeleteImage(ctx context.Context, id uuid.UUID) error
	UpsertPdf(ctx context.Context, pdf *model.DownloadPdf) error
	DeletePdf(ctx context.Context, id uuid.UUID) error
	UpsertCad(ctx context.Context, cad *model.CadEmbed) error
	DeleteCad(ctx context.Context, id uuid.UUID) error
	UpsertModel(ctx context.Context, m *model.Model3d) error
	DeleteModel(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	if filter.TeacherFriendly {
		query = query.Where("teacher_friendly = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category_id = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}

	if filter.Tag != "" {
		var productIDs []uuid.UUID
		if err := r.db.WithContext(ctx).
			Model(&model.ProductTag{}).
			Where("tag_id = ?", filter.Tag).
			Pluck("product_id", &productIDs).Error; err != nil {
			return nil, err
		}
		// No matches must mean no results, never an unfiltered list.
		if len(productIDs) == 0 {
			return []model.Product{}, nil
		}
		query = query.Where("id IN ?", productIDs)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(short_description) LIKE ?", pattern, pattern)
	}

	var products []model.Product
	if err := query.Order("updated_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetWithRelationsBySlug(ctx context.Context, slug string) (*model.ProductWithRelations, error) {
	product, err := r.FindBySlug(ctx, slug)
	if err != nil || product == nil {
		return nil, err
	}
	return r.assembleRelations(ctx, product)
}

func (r *productRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*model.ProductWithRelations, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	return r.assembleRelations(ctx, product)
}

// assembleRelations fetches the full aggregate. Link-id lookups run
// first, then every dependent fetch in one concurrent wave; if any
// sub-fetch fails the whole read fails.
func (r *productRepository) assembleRelations(ctx context.Context, product *model.Product) (*model.ProductWithRelations, error) {
	id := product.ID

	var tagIDs, guideIDs, lessonIDs []uuid.UUID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&model.ProductTag{}).
			Where("product_id = ?", id).Pluck("tag_id", &tagIDs).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&model.GuideLink{}).
			Where("product_id = ?", id).Pluck("guide_id", &guideIDs).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&model.LessonLink{}).
			Where("product_id = ?", id).Pluck("lesson_id", &lessonIDs).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &model.ProductWithRelations{
		Product: *product,
		Tags:    []model.Tag{},
		Guides:  []model.Guide{},
		Lessons: []model.Lesson{},
		Faqs:    []model.Faq{},
		Youtube: []model.MediaYoutube{},
		Images:  []model.MediaImage{},
		Pdfs:    []model.DownloadPdf{},
		Cad:     []model.CadEmbed{},
		Models:  []model.Model3d{},
	}

	g, gctx = errgroup.WithContext(ctx)

	g.Go(func() error {
		var section model.ProductSection
		err := r.db.WithContext(gctx).Where("product_id = ?", id).First(&section).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		result.Section = &section
		return nil
	})

	if product.CategoryID != nil {
		g.Go(func() error {
			var category model.Category
			err := r.db.WithContext(gctx).Where("id = ?", *product.CategoryID).First(&category).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			result.Category = &category
			return nil
		})
	}

	if len(tagIDs) > 0 {
		g.Go(func() error {
			return r.db.WithContext(gctx).Where("id IN ?", tagIDs).Find(&result.Tags).Error
		})
	}
	if len(guideIDs) > 0 {
		g.Go(func() error {
			return r.db.WithContext(gctx).Where("id IN ?", guideIDs).Find(&result.Guides).Error
		})
	}
	if len(lessonIDs) > 0 {
		g.Go(func() error {
			return r.db.WithContext(gctx).Where("id IN ?", lessonIDs).Find(&result.Lessons).Error
		})
	}

	g.Go(func() error {
		return r.db.WithContext(gctx).Where("product_id = ?", id).
			Order("order_index ASC").Find(&result.Faqs).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Where("product_id = ?", id).
			Order("order_index ASC").Find(&result.Youtube).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Where("product_id = ?", id).
			Order("order_index ASC").Find(&result.Images).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Where("product_id = ?", id).
			Order("order_index ASC").Find(&result.Pdfs).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Where("product_id = ?", id).
			Order("order_index ASC").Find(&result.Cad).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Where("product_id = ?", id).
			Order("order_index ASC").Find(&result.Models).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// Upsert inserts when the product has no ID, otherwise updates exactly
// the mutable fields. updated_at is refreshed on every write whether or
// not anything else changed.
func (r *productRepository) Upsert(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.ID == uuid.Nil {
		if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
			return nil, err
		}
		return r.FindByID(ctx, product.ID)
	}

	updates := map[string]interface{}{
		"slug":              product.Slug,
		"name":              product.Name,
		"short_description": product.ShortDescription,
		"long_description":  product.LongDescription,
		"category_id":       product.CategoryID,
		"difficulty":        product.Difficulty,
		"teacher_friendly":  product.TeacherFriendly,
		"published":         product.Published,
		"updated_at":        time.Now().UTC(),
	}

	tx := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		// Caller supplied the id; keep it on insert.
		if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
			return nil, err
		}
	}

	return r.FindByID(ctx, product.ID)
}

// Delete removes the product and all of its dependent rows explicitly.
// Link and child tables are cleaned before the base row; no store-level
// cascade is assumed.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)

	cleanup := []interface{}{
		&model.ProductTag{},
		&model.GuideLink{},
		&model.LessonLink{},
		&model.Faq{},
		&model.MediaYoutube{},
		&model.MediaImage{},
		&model.DownloadPdf{},
		&model.CadEmbed{},
		&model.Model3d{},
		&model.ProductSection{},
	}
	for _, table := range cleanup {
		if err := db.Where("product_id = ?", id).Delete(table).Error; err != nil {
			return err
		}
	}

	return db.Where("id = ?", id).Delete(&model.Product{}).Error
}

// UpsertSection writes the zero-or-one prose row for a product.
func (r *productRepository) UpsertSection(ctx context.Context, section *model.ProductSection) error {
	db := r.db.WithContext(ctx)

	updates := map[string]interface{}{
		"overview":      section.Overview,
		"quickstart":    section.Quickstart,
		"intended_use":  section.IntendedUse,
		"good_practice": section.GoodPractice,
		"bad_practice":  section.BadPractice,
	}
	tx := db.Model(&model.ProductSection{}).
		Where("product_id = ?", section.ProductID).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return db.Create(section).Error
	}
	return nil
}
