package models

import "time"

const (
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User mirrors an account at the identity provider. The ID is the provider's
// stable identifier, so it is a plain string rather than a generated uuid.
type User struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Email    string `gorm:"size:255;not null;unique" json:"email"`
	FullName string `gorm:"size:255" json:"full_name"`
	Role     string `gorm:"size:20;not null;default:'teacher'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
