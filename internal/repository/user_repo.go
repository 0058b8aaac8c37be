package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*model.UserProfile, error)
	List(ctx context.Context) ([]model.UserProfile, error)
	Create(ctx context.Context, user *model.UserProfile) error
	UpdateRoleByEmail(ctx context.Context, email, role string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	var user model.UserProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	var user model.UserProfile
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.UserProfile, error) {
	var users []model.UserProfile
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.UserProfile) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// UpdateRoleByEmail reports whether a profile with that email existed.
func (r *userRepository) UpdateRoleByEmail(ctx context.Context, email, role string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.UserProfile{}).
		Where("email = ?", email).Update("role", role)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
