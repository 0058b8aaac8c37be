package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/model"
)

// Relation setters use full replace-set semantics: every existing link
// for the product is deleted, then the new set is inserted. An empty
// set is valid and leaves zero links.

func (r *productRepository) SetTags(ctx context.Context, productID uuid.UUID, tagIDs []uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("product_id = ?", productID).Delete(&model.ProductTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]model.ProductTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, model.ProductTag{ProductID: productID, TagID: tagID})
	}
	return db.Create(&links).Error
}

func (r *productRepository) SetGuides(ctx context.Context, productID uuid.UUID, guideIDs []uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("product_id = ?", productID).Delete(&model.GuideLink{}).Error; err != nil {
		return err
	}
	if len(guideIDs) == 0 {
		return nil
	}
	links := make([]model.GuideLink, 0, len(guideIDs))
	for _, guideID := range guideIDs {
		links = append(links, model.GuideLink{GuideID: guideID, ProductID: productID})
	}
	return db.Create(&links).Error
}

func (r *productRepository) SetLessons(ctx context.Context, productID uuid.UUID, lessonIDs []uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("product_id = ?", productID).Delete(&model.LessonLink{}).Error; err != nil {
		return err
	}
	if len(lessonIDs) == 0 {
		return nil
	}
	links := make([]model.LessonLink, 0, len(lessonIDs))
	for _, lessonID := range lessonIDs {
		links = append(links, model.LessonLink{LessonID: lessonID, ProductID: productID})
	}
	return db.Create(&links).Error
}

// Child upserts follow the same insert-vs-update convention as the base
// entities: a zero ID inserts, anything else updates in place. The
// caller owns order_index assignment.

func (r *productRepository) UpsertFaq(ctx context.Context, faq *model.Faq) error {
	db := r.db.WithContext(ctx)
	if faq.ID == uuid.Nil {
		return db.Create(faq).Error
	}
	return db.Model(&model.Faq{}).Where("id = ?", faq.ID).Updates(map[string]interface{}{
		"question":    faq.Question,
		"answer":      faq.Answer,
		"order_index": faq.OrderIndex,
	}).Error
}

func (r *productRepository) DeleteFaq(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Faq{}).Error
}

func (r *productRepository) UpsertYoutube(ctx context.Context, media *model.MediaYoutube) error {
	db := r.db.WithContext(ctx)
	if media.ID == uuid.Nil {
		return db.Create(media).Error
	}
	return db.Model(&model.MediaYoutube{}).Where("id = ?", media.ID).Updates(map[string]interface{}{
		"title":       media.Title,
		"youtube_url": media.YoutubeURL,
		"order_index": media.OrderIndex,
	}).Error
}

func (r *productRepository) DeleteYoutube(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MediaYoutube{}).Error
}

func (r *productRepository) UpsertImage(ctx context.Context, media *model.MediaImage) error {
	db := r.db.WithContext(ctx)
	if media.ID == uuid.Nil {
		return db.Create(media).Error
	}
	return db.Model(&model.MediaImage{}).Where("id = ?", media.ID).Updates(map[string]interface{}{
		"title":        media.Title,
		"alt_text":     media.AltText,
		"caption":      media.Caption,
		"storage_path": media.StoragePath,
		"width":        media.Width,
		"height":       media.Height,
		"order_index":  media.OrderIndex,
	}).Error
}

func (r *productRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MediaImage{}).Error
}

func (r *productRepository) UpsertPdf(ctx context.Context, pdf *model.DownloadPdf) error {
	db := r.db.WithContext(ctx)
	if pdf.ID == uuid.Nil {
		return db.Create(pdf).Error
	}
	return db.Model(&model.DownloadPdf{}).Where("id = ?", pdf.ID).Updates(map[string]interface{}{
		"title":        pdf.Title,
		"description":  pdf.Description,
		"kind":         pdf.Kind,
		"version":      pdf.Version,
		"storage_path": pdf.StoragePath,
		"order_index":  pdf.OrderIndex,
	}).Error
}

func (r *productRepository) DeletePdf(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DownloadPdf{}).Error
}

func (r *productRepository) UpsertCad(ctx context.Context, cad *model.CadEmbed) error {
	db := r.db.WithContext(ctx)
	if cad.ID == uuid.Nil {
		return db.Create(cad).Error
	}
	return db.Model(&model.CadEmbed{}).Where("id = ?", cad.ID).Updates(map[string]interface{}{
		"title":       cad.Title,
		"embed_url":   cad.EmbedURL,
		"notes":       cad.Notes,
		"order_index": cad.OrderIndex,
	}).Error
}

func (r *productRepository) DeleteCad(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CadEmbed{}).Error
}

func (r *productRepository) UpsertModel(ctx context.Context, m *model.Model3d) error {
	db := r.db.WithContext(ctx)
	if m.ID == uuid.Nil {
		return db.Create(m).Error
	}
	return db.Model(&model.Model3d{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"title":        m.Title,
		"storage_path": m.StoragePath,
		"format":       m.Format,
		"notes":        m.Notes,
		"order_index":  m.OrderIndex,
	}).Error
}

func (r *productRepository) DeleteModel(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Model3d{}).Error
}
