package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TeacherID   string    `gorm:"size:64;not null;index" json:"teacher_id"`
	FullName    string    `gorm:"size:255;not null" json:"full_name"`
	Username    string    `gorm:"size:255" json:"username"`
	Level       string    `gorm:"size:50;not null" json:"level"`
	Description *string   `gorm:"type:text" json:"description"`
	IsRegular   bool      `gorm:"column:isregular;default:false" json:"isregular"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
