package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList persists an ordered list of strings as a single JSON text
// column. Order is preserved exactly as submitted.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

type Lesson struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Slug            string     `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Summary         *string    `gorm:"type:text" json:"summary"`
	LearningGoals   StringList `gorm:"type:text" json:"learning_goals_json"`
	Prerequisites   StringList `gorm:"type:text" json:"prerequisites_json"`
	DurationMinutes *int       `json:"duration_minutes"`
	Content         *string    `gorm:"type:text" json:"content_md"`
	Published       bool       `gorm:"default:false" json:"published"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID, err = uuid.NewV7()
	}
	return
}

// LessonLink relates a lesson to a product. Same shape and policy as
// GuideLink: the product reference is required.
type LessonLink struct {
	LessonID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey" json:"product_id"`
}

func (LessonLink) TableName() string { return "lesson_links" }
