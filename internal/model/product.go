package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Slug             string     `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	ShortDescription string     `gorm:"type:text;not null" json:"short_description"`
	LongDescription  *string    `gorm:"type:text" json:"long_description_md"`
	CategoryID       *uuid.UUID `gorm:"type:uuid" json:"category_id"`
	Category         *Category  `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Difficulty       *string    `gorm:"size:50" json:"difficulty"`
	TeacherFriendly  bool       `gorm:"default:false" json:"teacher_friendly"`
	Published        bool       `gorm:"default:false" json:"published"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}

// ProductSection holds the long-form prose blocks of a product page.
// Zero-or-one row per product, keyed by the product id.
type ProductSection struct {
	ProductID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"product_id"`
	Overview     *string   `gorm:"type:text" json:"overview_md"`
	Quickstart   *string   `gorm:"type:text" json:"quickstart_md"`
	IntendedUse  *string   `gorm:"type:text" json:"intended_use_md"`
	GoodPractice *string   `gorm:"type:text" json:"good_practice_md"`
	BadPractice  *string   `gorm:"type:text" json:"bad_practice_md"`
}

func (ProductSection) TableName() string { return "product_sections" }

type Faq struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     *string   `gorm:"type:text" json:"answer_md"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
}

func (f *Faq) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID, err = uuid.NewV7()
	}
	return
}

func (Faq) TableName() string { return "faqs" }

type MediaYoutube struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	YoutubeURL string    `gorm:"type:text;not null" json:"youtube_url"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
}

func (m *MediaYoutube) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID, err = uuid.NewV7()
	}
	return
}

func (MediaYoutube) TableName() string { return "media_youtube" }

type MediaImage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID   uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Title       *string   `gorm:"size:255" json:"title"`
	AltText     *string   `gorm:"size:255" json:"alt_text"`
	Caption     *string   `gorm:"type:text" json:"caption"`
	StoragePath string    `gorm:"type:text;not null" json:"storage_path"`
	Width       *int      `json:"width"`
	Height      *int      `json:"height"`
	OrderIndex  int       `gorm:"not null;default:0" json:"order_index"`
}

func (m *MediaImage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID, err = uuid.NewV7()
	}
	return
}

func (MediaImage) TableName() string { return "media_images" }

// Allowed values for DownloadPdf.Kind.
const (
	PdfKindDatasheet = "datasheet"
	PdfKindManual    = "manual"
	PdfKindDiagram   = "diagram"
	PdfKindOther     = "other"
)

type DownloadPdf struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID   uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Kind        string    `gorm:"size:20;not null;default:other" json:"kind"`
	Version     *string   `gorm:"size:50" json:"version"`
	StoragePath string    `gorm:"type:text;not null" json:"storage_path"`
	OrderIndex  int       `gorm:"not null;default:0" json:"order_index"`
}

func (d *DownloadPdf) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID, err = uuid.NewV7()
	}
	return
}

func (DownloadPdf) TableName() string { return "downloads_pdfs" }

type CadEmbed struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	EmbedURL   string    `gorm:"type:text;not null" json:"embed_url"`
	Notes      *string   `gorm:"type:text" json:"notes_md"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
}

func (c *CadEmbed) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

func (CadEmbed) TableName() string { return "cad_embeds" }

// Allowed values for Model3d.Format.
const (
	ModelFormatGlb   = "glb"
	ModelFormatGltf  = "gltf"
	ModelFormatObj   = "obj"
	ModelFormatStl   = "stl"
	ModelFormatOther = "other"
)

type Model3d struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID   uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	StoragePath string    `gorm:"type:text;not null" json:"storage_path"`
	Format      string    `gorm:"size:10;not null;default:glb" json:"format"`
	Notes       *string   `gorm:"type:text" json:"notes_md"`
	OrderIndex  int       `gorm:"not null;default:0" json:"order_index"`
}

func (m *Model3d) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID, err = uuid.NewV7()
	}
	return
}

func (Model3d) TableName() string { return "models_3d" }

// ProductWithRelations is the full aggregate a product detail page needs,
// assembled by the repository in one logical read.
type ProductWithRelations struct {
	Product  Product         `json:"product"`
	Section  *ProductSection `json:"section"`
	Category *Category       `json:"category"`
	Tags     []Tag           `json:"tags"`
	Guides   []Guide         `json:"guides"`
	Lessons  []Lesson        `json:"lessons"`
	Faqs     []Faq           `json:"faqs"`
	Youtube  []MediaYoutube  `json:"youtube"`
	Images   []MediaImage    `json:"images"`
	Pdfs     []DownloadPdf   `json:"pdfs"`
	Cad      []CadEmbed      `json:"cad"`
	Models   []Model3d       `json:"models"`
}
