package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name string    `gorm:"size:100;not null" json:"name"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

func (Category) TableName() string { return "categories" }

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name string    `gorm:"size:100;not null" json:"name"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID, err = uuid.NewV7()
	}
	return
}

func (Tag) TableName() string { return "tags" }

// ProductTag links products and tags; identity is the pair itself.
type ProductTag struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey" json:"product_id"`
	TagID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"tag_id"`
}

func (ProductTag) TableName() string { return "product_tags" }
