package repository

import (
	"context"

	"github.com/robokitlab/catalog-api/internal/model"
	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, submission *model.ContactSubmission) error
	List(ctx context.Context) ([]model.ContactSubmission, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, submission *model.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *contactRepository) List(ctx context.Context) ([]model.ContactSubmission, error) {
	var submissions []model.ContactSubmission
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
