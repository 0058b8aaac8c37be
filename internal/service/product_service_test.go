package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/bootstrap"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/model"
	"github.com/robokitlab/catalog-api/internal/repository"
	"github.com/robokitlab/catalog-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupService(t *testing.T) (ProductService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, bootstrap.Migrate(db))

	return NewProductService(repository.NewProductRepository(db), nil), db
}

func validPayload(slug string) dto.ProductSavePayload {
	return dto.ProductSavePayload{
		Product: dto.ProductInput{
			Slug:             slug,
			Name:             "Product " + slug,
			ShortDescription: "A part used in classroom robotics builds",
		},
	}
}

func TestProductSave_RejectsInvalidPayloadBeforeWriting(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	payload := validPayload("Bad Slug Here")
	payload.Product.Slug = "Bad Slug"

	_, err := svc.Save(ctx, payload)
	require.Error(t, err)

	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "slug")

	var count int64
	require.NoError(t, db.Model(&model.Product{}).Count(&count).Error)
	assert.Zero(t, count, "an invalid submission must write nothing")
}

func TestProductSave_InvalidChildBlocksEverything(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	payload := validPayload("camera-mount")
	payload.Faqs = []dto.FaqInput{{Question: "Does it fit the v2 chassis?"}}
	payload.Youtube = []dto.YoutubeInput{{Title: "Demo", YoutubeURL: "not-a-url"}}

	_, err := svc.Save(ctx, payload)
	require.Error(t, err)

	var productCount, faqCount int64
	require.NoError(t, db.Model(&model.Product{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&model.Faq{}).Count(&faqCount).Error)
	assert.Zero(t, productCount)
	assert.Zero(t, faqCount)
}

func TestProductSave_AssignsDenseChildOrder(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	payload := validPayload("robot-gripper")
	payload.Faqs = []dto.FaqInput{
		{Question: "What voltage does it need?"},
		{Question: "Is it metal or plastic?"},
		{Question: "Can it lift a golf ball?"},
	}

	product, err := svc.Save(ctx, payload)
	require.NoError(t, err)

	var faqs []model.Faq
	require.NoError(t, db.Where("product_id = ?", product.ID).Order("order_index ASC").Find(&faqs).Error)
	require.Len(t, faqs, 3)
	for i, faq := range faqs {
		assert.Equal(t, i, faq.OrderIndex)
	}
	assert.Equal(t, "What voltage does it need?", faqs[0].Question)
	assert.Equal(t, "Can it lift a golf ball?", faqs[2].Question)

	t.Run("resubmitting reordered keeps indices dense", func(t *testing.T) {
		resubmit := validPayload("robot-gripper")
		resubmit.Product.ID = &product.ID
		resubmit.Faqs = []dto.FaqInput{
			{ID: &faqs[2].ID, Question: faqs[2].Question},
			{ID: &faqs[0].ID, Question: faqs[0].Question},
		}
		resubmit.Removed.Faqs = []uuid.UUID{faqs[1].ID}

		_, err := svc.Save(ctx, resubmit)
		require.NoError(t, err)

		var after []model.Faq
		require.NoError(t, db.Where("product_id = ?", product.ID).Order("order_index ASC").Find(&after).Error)
		require.Len(t, after, 2)
		assert.Equal(t, "Can it lift a golf ball?", after[0].Question)
		assert.Equal(t, 0, after[0].OrderIndex)
		assert.Equal(t, "What voltage does it need?", after[1].Question)
		assert.Equal(t, 1, after[1].OrderIndex)
	})
}

func TestProductSave_AppliesDefaultsForChildEnums(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	payload := validPayload("stepper-driver")
	payload.Pdfs = []dto.PdfInput{{Title: "Pinout", StoragePath: "pdfs/pinout.pdf"}}
	payload.Models = []dto.ModelInput{{Title: "Housing", StoragePath: "models/housing.glb"}}

	product, err := svc.Save(ctx, payload)
	require.NoError(t, err)

	var pdf model.DownloadPdf
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&pdf).Error)
	assert.Equal(t, model.PdfKindOther, pdf.Kind)

	var m3d model.Model3d
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&m3d).Error)
	assert.Equal(t, model.ModelFormatGlb, m3d.Format)
}

func TestProductSave_SectionAndLinks(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	guideRepo := repository.NewGuideRepository(db)
	guide, err := guideRepo.Upsert(ctx, &model.Guide{Slug: "assembly", Title: "Assembly guide"})
	require.NoError(t, err)

	payload := validPayload("arm-base")
	payload.Section = &dto.SectionInput{Overview: strPtr("Mounting the arm base")}
	payload.GuideIDs = []uuid.UUID{guide.ID}

	product, err := svc.Save(ctx, payload)
	require.NoError(t, err)

	var section model.ProductSection
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&section).Error)
	assert.Equal(t, "Mounting the arm base", *section.Overview)

	var links []model.GuideLink
	require.NoError(t, db.Where("product_id = ?", product.ID).Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, guide.ID, links[0].GuideID)

	t.Run("omitting links on resubmit clears them", func(t *testing.T) {
		resubmit := validPayload("arm-base")
		resubmit.Product.ID = &product.ID

		_, err := svc.Save(ctx, resubmit)
		require.NoError(t, err)

		var after []model.GuideLink
		require.NoError(t, db.Where("product_id = ?", product.ID).Find(&after).Error)
		assert.Empty(t, after)
	})
}

func TestProductGetBySlug_HidesDrafts(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	payload := validPayload("draft-kit")
	product, err := svc.Save(ctx, payload)
	require.NoError(t, err)
	require.False(t, product.Published)

	_, err = svc.GetBySlug(ctx, "draft-kit", false)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	result, err := svc.GetBySlug(ctx, "draft-kit", true)
	require.NoError(t, err)
	assert.Equal(t, product.ID, result.Product.ID)
}

// Walks the editorial path a new catalog entry takes: file it under a
// fresh category as a draft, confirm the public surface ignores it,
// then publish and confirm it appears with its category attached.
func TestProductPublishLifecycleWithCategory(t *testing.T) {
	svc, db := setupService(t)
	taxonomy := NewTaxonomyService(repository.NewTaxonomyRepository(db))
	ctx := context.Background()

	category, err := taxonomy.SaveCategory(ctx, dto.CategoryInput{
		Slug: "sensors",
		Name: "Sensors",
	})
	require.NoError(t, err)

	payload := validPayload("line-tracker")
	payload.Product.CategoryID = &category.ID
	product, err := svc.Save(ctx, payload)
	require.NoError(t, err)
	require.False(t, product.Published)

	publicList, err := svc.List(ctx, dto.ProductFilter{PublishedOnly: true})
	require.NoError(t, err)
	assert.Empty(t, publicList, "draft must not surface in the public list")

	_, err = svc.GetBySlug(ctx, "line-tracker", false)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	publish := validPayload("line-tracker")
	publish.Product.ID = &product.ID
	publish.Product.CategoryID = &category.ID
	publish.Product.Published = true
	_, err = svc.Save(ctx, publish)
	require.NoError(t, err)

	publicList, err = svc.List(ctx, dto.ProductFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, publicList, 1)
	assert.Equal(t, "line-tracker", publicList[0].Slug)
	require.NotNil(t, publicList[0].CategoryID)
	assert.Equal(t, category.ID, *publicList[0].CategoryID)

	result, err := svc.GetBySlug(ctx, "line-tracker", false)
	require.NoError(t, err)
	require.NotNil(t, result.Category)
	assert.Equal(t, "sensors", result.Category.Slug)

	filtered, err := svc.List(ctx, dto.ProductFilter{
		PublishedOnly: true,
		Category:      category.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "line-tracker", filtered[0].Slug)
}
