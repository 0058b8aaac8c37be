package dto

import "github.com/google/uuid"

// ProductInput mirrors the admin product form. An absent ID means
// insert; a present one means update.
type ProductInput struct {
	ID               *uuid.UUID `json:"id"`
	Slug             string     `json:"slug" validate:"required,slug"`
	Name             string     `json:"name" validate:"required,min=2"`
	ShortDescription string     `json:"short_description" validate:"required,min=10"`
	LongDescription  *string    `json:"long_description_md"`
	CategoryID       *uuid.UUID `json:"category_id"`
	Difficulty       *string    `json:"difficulty"`
	TeacherFriendly  bool       `json:"teacher_friendly"`
	Published        bool       `json:"published"`
}

type SectionInput struct {
	Overview     *string `json:"overview_md"`
	Quickstart   *string `json:"quickstart_md"`
	IntendedUse  *string `json:"intended_use_md"`
	GoodPractice *string `json:"good_practice_md"`
	BadPractice  *string `json:"bad_practice_md"`
}

type FaqInput struct {
	ID       *uuid.UUID `json:"id"`
	Question string     `json:"question" validate:"required,min=2"`
	Answer   *string    `json:"answer_md"`
}

type YoutubeInput struct {
	ID         *uuid.UUID `json:"id"`
	Title      string     `json:"title" validate:"required,min=2"`
	YoutubeURL string     `json:"youtube_url" validate:"required,url"`
}

type ImageInput struct {
	ID          *uuid.UUID `json:"id"`
	Title       *string    `json:"title"`
	AltText     *string    `json:"alt_text"`
	Caption     *string    `json:"caption"`
	StoragePath string     `json:"storage_path" validate:"required,min=2"`
	Width       *int       `json:"width"`
	Height      *int       `json:"height"`
}

type PdfInput struct {
	ID          *uuid.UUID `json:"id"`
	Title       string     `json:"title" validate:"required,min=2"`
	Description *string    `json:"description"`
	Kind        string     `json:"kind" validate:"omitempty,oneof=datasheet manual diagram other"`
	Version     *string    `json:"version"`
	StoragePath string     `json:"storage_path" validate:"required,min=2"`
}

type CadInput struct {
	ID       *uuid.UUID `json:"id"`
	Title    string     `json:"title" validate:"required,min=2"`
	EmbedURL string     `json:"embed_url" validate:"required,url"`
	Notes    *string    `json:"notes_md"`
}

type ModelInput struct {
	ID          *uuid.UUID `json:"id"`
	Title       string     `json:"title" validate:"required,min=2"`
	StoragePath string     `json:"storage_path" validate:"required,min=2"`
	Format      string     `json:"format" validate:"omitempty,oneof=glb gltf obj stl other"`
	Notes       *string    `json:"notes_md"`
}

// RemovedChildren lists child rows the editor deleted. Deletions are
// applied before upserts on the save path.
type RemovedChildren struct {
	Faqs    []uuid.UUID `json:"faqs"`
	Youtube []uuid.UUID `json:"youtube"`
	Images  []uuid.UUID `json:"images"`
	Pdfs    []uuid.UUID `json:"pdfs"`
	Cad     []uuid.UUID `json:"cad"`
	Models  []uuid.UUID `json:"models"`
}

// ProductSavePayload is the whole admin editor submission: base record,
// section prose, relation sets, and every child collection in display
// order. Child order indices are reassigned densely from list position.
type ProductSavePayload struct {
	Product   ProductInput    `json:"product"`
	Section   *SectionInput   `json:"section"`
	TagIDs    []uuid.UUID     `json:"tag_ids"`
	GuideIDs  []uuid.UUID     `json:"guide_ids"`
	LessonIDs []uuid.UUID     `json:"lesson_ids"`
	Faqs      []FaqInput      `json:"faqs"`
	Youtube   []YoutubeInput  `json:"youtube"`
	Images    []ImageInput    `json:"images"`
	Pdfs      []PdfInput      `json:"pdfs"`
	Cad       []CadInput      `json:"cad"`
	Models    []ModelInput    `json:"models"`
	Removed   RemovedChildren `json:"removed"`
}

type ProductFilter struct {
	Search          string `form:"search"`
	Category        string `form:"category"`
	Difficulty      string `form:"difficulty"`
	Tag             string `form:"tag"`
	TeacherFriendly bool   `form:"teacher_friendly"`
	PublishedOnly   bool   `form:"-"`
}
