package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultStage is the pipeline stage assigned to new applications when the
// caller does not supply one. Stages are free-form labels; no transition
// graph is enforced.
const DefaultStage = "Applied"

// Application links a candidate to a job. At most one application may exist
// per (candidate, job) pair; the composite unique index enforces this at the
// storage layer so concurrent creates cannot slip past the pre-check.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_candidate_job;index" json:"candidate_id"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_candidate_job;index" json:"job_id"`
	Stage       string    `gorm:"type:varchar(50);not null;default:'Applied'" json:"stage"`
	AppliedAt   time.Time `gorm:"not null" json:"applied_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	Job       Job       `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	return nil
}
