package dto

import "github.com/robokitlab/catalog-api/internal/model"

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	ExpiresIn   int64              `json:"expires_in"`
	User        *model.UserProfile `json:"user"`
}

type InviteInput struct {
	Email string `json:"email" validate:"required,email"`
}

type PromoteInput struct {
	Email string `json:"email" validate:"required,email"`
}
