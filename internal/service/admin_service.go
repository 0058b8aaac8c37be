package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/model"
	"github.com/robokitlab/catalog-api/internal/repository"
	"github.com/robokitlab/catalog-api/internal/validation"
	"github.com/robokitlab/catalog-api/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

// AdminService covers the dashboard's account management: listing
// profiles, inviting a new admin, and promoting an existing account.
type AdminService interface {
	ListUsers(ctx context.Context) ([]model.UserProfile, error)
	InviteAdmin(ctx context.Context, input dto.InviteInput) (*model.UserProfile, string, error)
	PromoteByEmail(ctx context.Context, input dto.PromoteInput) error
}

type adminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.UserProfile, error) {
	return s.userRepo.List(ctx)
}

// InviteAdmin creates an admin profile with a generated temporary
// password, returned once so the caller can hand it to the invitee.
func (s *adminService) InviteAdmin(ctx context.Context, input dto.InviteInput) (*model.UserProfile, string, error) {
	if verr := validation.Struct(input); verr != nil {
		return nil, "", verr
	}

	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperror.New(http.StatusBadRequest, "an account with that email already exists", apperror.ErrBadRequest)
	}

	tempPassword, err := generatePassword()
	if err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.UserProfile{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	return user, tempPassword, nil
}

func (s *adminService) PromoteByEmail(ctx context.Context, input dto.PromoteInput) error {
	if verr := validation.Struct(input); verr != nil {
		return verr
	}

	found, err := s.userRepo.UpdateRoleByEmail(ctx, input.Email, model.RoleAdmin)
	if err != nil {
		return err
	}
	if !found {
		return apperror.New(http.StatusNotFound, "no pending account found for that email", apperror.ErrNotFound)
	}
	return nil
}

func generatePassword() (string, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
