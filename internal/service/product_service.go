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

type ProductService interface {
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error)
	GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*model.ProductWithRelations, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProductWithRelations, error)
	Save(ctx context.Context, payload dto.ProductSavePayload) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
	search      SearchService
}

func NewProductService(productRepo repository.ProductRepository, search SearchService) ProductService {
	return &productService{
		productRepo: productRepo,
		search:      search,
	}
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	return s.productRepo.List(ctx, filter)
}

func (s *productService) GetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*model.ProductWithRelations, error) {
	result, err := s.productRepo.GetWithRelationsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apperror.ErrNotFound
	}
	// Drafts don't exist for anonymous consumers.
	if !result.Product.Published && !includeUnpublished {
		return nil, apperror.ErrNotFound
	}
	return result, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.ProductWithRelations, error) {
	result, err := s.productRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apperror.ErrNotFound
	}
	return result, nil
}

// Save applies the whole editor submission in a fixed order: base
// record, section, relation sets, removed children, then surviving
// children re-indexed densely from their list position. The sequence is
// not one transaction; a store failure partway leaves earlier steps
// committed and is surfaced as-is.
func (s *productService) Save(ctx context.Context, payload dto.ProductSavePayload) (*model.Product, error) {
	if verr := s.validate(payload); verr != nil {
		return nil, verr
	}

	product := &model.Product{
		Slug:             payload.Product.Slug,
		Name:             payload.Product.Name,
		ShortDescription: payload.Product.ShortDescription,
		LongDescription:  payload.Product.LongDescription,
		CategoryID:       payload.Product.CategoryID,
		Difficulty:       payload.Product.Difficulty,
		TeacherFriendly:  payload.Product.TeacherFriendly,
		Published:        payload.Product.Published,
	}
	if payload.Product.ID != nil {
		product.ID = *payload.Product.ID
	}

	product, err := s.productRepo.Upsert(ctx, product)
	if err != nil {
		return nil, err
	}

	if payload.Section != nil {
		section := &model.ProductSection{
			ProductID:    product.ID,
			Overview:     payload.Section.Overview,
			Quickstart:   payload.Section.Quickstart,
			IntendedUse:  payload.Section.IntendedUse,
			GoodPractice: payload.Section.GoodPractice,
			BadPractice:  payload.Section.BadPractice,
		}
		if err := s.productRepo.UpsertSection(ctx, section); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.SetTags(ctx, product.ID, orEmpty(payload.TagIDs)); err != nil {
		return nil, err
	}
	if err := s.productRepo.SetGuides(ctx, product.ID, orEmpty(payload.GuideIDs)); err != nil {
		return nil, err
	}
	if err := s.productRepo.SetLessons(ctx, product.ID, orEmpty(payload.LessonIDs)); err != nil {
		return nil, err
	}

	if err := s.deleteRemoved(ctx, payload.Removed); err != nil {
		return nil, err
	}

	if err := s.saveChildren(ctx, product.ID, payload); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexProduct(product); err != nil {
			log.Printf("failed to index product %s: %v", product.ID, err)
		}
	}

	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.search != nil {
		if err := s.search.DeleteProduct(id.String()); err != nil {
			log.Printf("failed to de-index product %s: %v", id, err)
		}
	}
	return nil
}

// validate checks the entire payload before any write happens.
func (s *productService) validate(payload dto.ProductSavePayload) error {
	if verr := validation.Struct(payload.Product); verr != nil {
		return verr
	}
	for _, faq := range payload.Faqs {
		if verr := validation.Struct(faq); verr != nil {
			return verr
		}
	}
	for _, item := range payload.Youtube {
		if verr := validation.Struct(item); verr != nil {
			return verr
		}
	}
	for _, item := range payload.Images {
		if verr := validation.Struct(item); verr != nil {
			return verr
		}
	}
	for _, item := range payload.Pdfs {
		if verr := validation.Struct(item); verr != nil {
			return verr
		}
	}
	for _, item := range payload.Cad {
		if verr := validation.Struct(item); verr != nil {
			return verr
		}
	}
	for _, item := range payload.Models {
		if verr := validation.Struct(item); verr != nil {
			return verr
		}
	}
	return nil
}

// deleteRemoved clears rows the editor dropped; deletions always run
// before the upserts that follow.
func (s *productService) deleteRemoved(ctx context.Context, removed dto.RemovedChildren) error {
	for _, id := range removed.Faqs {
		if err := s.productRepo.DeleteFaq(ctx, id); err != nil {
			return err
		}
	}
	for _, id := range removed.Youtube {
		if err := s.productRepo.DeleteYoutube(ctx, id); err != nil {
			return err
		}
	}
	for _, id := range removed.Images {
		if err := s.productRepo.DeleteImage(ctx, id); err != nil {
			return err
		}
	}
	for _, id := range removed.Pdfs {
		if err := s.productRepo.DeletePdf(ctx, id); err != nil {
			return err
		}
	}
	for _, id := range removed.Cad {
		if err := s.productRepo.DeleteCad(ctx, id); err != nil {
			return err
		}
	}
	for _, id := range removed.Models {
		if err := s.productRepo.DeleteModel(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// saveChildren upserts every submitted child row with a fresh dense
// order index taken from its position in the submitted list.
func (s *productService) saveChildren(ctx context.Context, productID uuid.UUID, payload dto.ProductSavePayload) error {
	for index, input := range payload.Faqs {
		faq := &model.Faq{
			ProductID:  productID,
			Question:   input.Question,
			Answer:     input.Answer,
			OrderIndex: index,
		}
		if input.ID != nil {
			faq.ID = *input.ID
		}
		if err := s.productRepo.UpsertFaq(ctx, faq); err != nil {
			return err
		}
	}

	for index, input := range payload.Youtube {
		media := &model.MediaYoutube{
			ProductID:  productID,
			Title:      input.Title,
			YoutubeURL: input.YoutubeURL,
			OrderIndex: index,
		}
		if input.ID != nil {
			media.ID = *input.ID
		}
		if err := s.productRepo.UpsertYoutube(ctx, media); err != nil {
			return err
		}
	}

	for index, input := range payload.Images {
		media := &model.MediaImage{
			ProductID:   productID,
			Title:       input.Title,
			AltText:     input.AltText,
			Caption:     input.Caption,
			StoragePath: input.StoragePath,
			Width:       input.Width,
			Height:      input.Height,
			OrderIndex:  index,
		}
		if input.ID != nil {
			media.ID = *input.ID
		}
		if err := s.productRepo.UpsertImage(ctx, media); err != nil {
			return err
		}
	}

	for index, input := range payload.Pdfs {
		pdf := &model.DownloadPdf{
			ProductID:   productID,
			Title:       input.Title,
			Description: input.Description,
			Kind:        input.Kind,
			Version:     input.Version,
			StoragePath: input.StoragePath,
			OrderIndex:  index,
		}
		if pdf.Kind == "" {
			pdf.Kind = model.PdfKindOther
		}
		if input.ID != nil {
			pdf.ID = *input.ID
		}
		if err := s.productRepo.UpsertPdf(ctx, pdf); err != nil {
			return err
		}
	}

	for index, input := range payload.Cad {
		cad := &model.CadEmbed{
			ProductID:  productID,
			Title:      input.Title,
			EmbedURL:   input.EmbedURL,
			Notes:      input.Notes,
			OrderIndex: index,
		}
		if input.ID != nil {
			cad.ID = *input.ID
		}
		if err := s.productRepo.UpsertCad(ctx, cad); err != nil {
			return err
		}
	}

	for index, input := range payload.Models {
		m := &model.Model3d{
			ProductID:   productID,
			Title:       input.Title,
			StoragePath: input.StoragePath,
			Format:      input.Format,
			Notes:       input.Notes,
			OrderIndex:  index,
		}
		if m.Format == "" {
			m.Format = model.ModelFormatGlb
		}
		if input.ID != nil {
			m.ID = *input.ID
		}
		if err := s.productRepo.UpsertModel(ctx, m); err != nil {
			return err
		}
	}

	return nil
}

func orEmpty(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
