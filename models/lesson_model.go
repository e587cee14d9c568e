package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LessonStatusUpcoming  = "Upcoming"
	LessonStatusCancelled = "Cancelled"
	LessonStatusCompleted = "Completed"

	PaymentStatusPaid    = "Paid"
	PaymentStatusNotPaid = "Not Paid"
)

// Lesson is a scheduled session between a teacher and one of their students.
// Every mutable field is nullable: an update replaces the whole field set, so
// an absent field is written as NULL rather than left unchanged.
//
// ReasonForCancellation is only meaningful while Status is "Cancelled"; the
// lesson handlers clear it on any write that leaves a different status.
type Lesson struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TeacherID             string     `gorm:"size:64;not null;index" json:"teacher_id"`
	StudentID             *uuid.UUID `gorm:"type:uuid;index" json:"student_id"`
	Type                  *string    `gorm:"size:50" json:"type"`
	LessonLink            *string    `gorm:"column:lessonlink;size:255" json:"lessonlink"`
	Duration              *int       `json:"duration"`
	TimeSlot              *time.Time `json:"time_slot"`
	Status                *string    `gorm:"size:20" json:"status"`
	PaymentStatus         *string    `gorm:"size:20" json:"payment_status"`
	ReasonForCancellation *string    `gorm:"column:reasonforcancellation;type:text" json:"reasonforcancellation"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Teacher *User    `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
