package dto

import "github.com/google/uuid"

type GuideInput struct {
	ID         *uuid.UUID  `json:"id"`
	Slug       string      `json:"slug" validate:"required,slug"`
	Title      string      `json:"title" validate:"required,min=2"`
	Summary    *string     `json:"summary"`
	Difficulty *string     `json:"difficulty"`
	EstMinutes *int        `json:"est_minutes" validate:"omitempty,gt=0"`
	Content    *string     `json:"content_md"`
	Published  bool        `json:"published"`
	ProductIDs []uuid.UUID `json:"product_ids"`
}

type LessonInput struct {
	ID              *uuid.UUID  `json:"id"`
	Slug            string      `json:"slug" validate:"required,slug"`
	Title           string      `json:"title" validate:"required,min=2"`
	Summary         *string     `json:"summary"`
	LearningGoals   []string    `json:"learning_goals"`
	Prerequisites   []string    `json:"prerequisites"`
	DurationMinutes *int        `json:"duration_minutes" validate:"omitempty,gt=0"`
	Content         *string     `json:"content_md"`
	Published       bool        `json:"published"`
	ProductIDs      []uuid.UUID `json:"product_ids"`
}

type ResourceFilter struct {
	Search        string `form:"search"`
	PublishedOnly bool   `form:"-"`
}
