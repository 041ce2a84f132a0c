package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusDraft  JobStatus = "Draft"
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
)

type JobType string

const (
	JobTypeFullTime JobType = "Full-time"
	JobTypeContract JobType = "Contract"
	JobTypeRemote   JobType = "Remote"
)

type Job struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null;index" json:"title"`
	Department      string    `gorm:"type:varchar(100);not null" json:"department"`
	Location        string    `gorm:"type:varchar(255);not null" json:"location"`
	JobType         JobType   `gorm:"type:varchar(50);not null" json:"job_type"`
	Status          JobStatus `gorm:"type:varchar(50);not null;default:'Draft'" json:"status"`
	Description     *string   `gorm:"type:text" json:"description"`
	Requirements    []string  `gorm:"serializer:json" json:"requirements"`
	ApplicantsCount int       `gorm:"not null;default:0" json:"applicants_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
