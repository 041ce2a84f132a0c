package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin         UserRole = "admin"
	RoleRecruiter     UserRole = "recruiter"
	RoleHiringManager UserRole = "hiring_manager"
)

type User struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash        string     `gorm:"type:varchar(255);not null" json:"-"`
	FullName            string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Role                UserRole   `gorm:"type:varchar(50);not null;default:'recruiter'" json:"role"`
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	ResetToken          *string    `gorm:"type:varchar(255);index" json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
