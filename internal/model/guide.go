package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Guide struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug       string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Summary    *string   `gorm:"type:text" json:"summary"`
	Difficulty *string   `gorm:"size:50" json:"difficulty"`
	EstMinutes *int      `json:"est_minutes"`
	Content    *string   `gorm:"type:text" json:"content_md"`
	Published  bool      `gorm:"default:false" json:"published"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g *Guide) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID, err = uuid.NewV7()
	}
	return
}

// GuideLink relates a guide to a product. The product reference is
// required; a link row never exists without one.
type GuideLink struct {
	GuideID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"guide_id"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey" json:"product_id"`
}

func (GuideLink) TableName() string { return "guide_links" }
