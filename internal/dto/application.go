package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mettlehq/ats-api/internal/models"
)

// ApplicationDTO represents a candidate-to-job link in API responses
type ApplicationDTO struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uuid.UUID `json:"job_id"`
	Stage       string    `json:"stage"`
	AppliedAt   time.Time `json:"applied_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToApplicationDTO converts an Application model to ApplicationDTO
func ToApplicationDTO(application models.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:          application.ID,
		CandidateID: application.CandidateID,
		JobID:       application.JobID,
		Stage:       application.Stage,
		AppliedAt:   application.AppliedAt,
		CreatedAt:   application.CreatedAt,
		UpdatedAt:   application.UpdatedAt,
	}
}

// ToApplicationDTOs converts a slice of Application models
func ToApplicationDTOs(applications []models.Application) []ApplicationDTO {
	dtos := make([]ApplicationDTO, len(applications))
	for i, application := range applications {
		dtos[i] = ToApplicationDTO(application)
	}
	return dtos
}
