package dto

import "github.com/google/uuid"

type CategoryInput struct {
	ID   *uuid.UUID `json:"id"`
	Slug string     `json:"slug" validate:"required,slug"`
	Name string     `json:"name" validate:"required,min=2"`
}

type TagInput struct {
	ID   *uuid.UUID `json:"id"`
	Slug string     `json:"slug" validate:"required,slug"`
	Name string     `json:"name" validate:"required,min=2"`
}
