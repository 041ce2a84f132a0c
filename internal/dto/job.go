package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mettlehq/ats-api/internal/models"
)

// JobDTO represents a job posting in API responses
type JobDTO struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Department      string           `json:"department"`
	Location        string           `json:"location"`
	JobType         models.JobType   `json:"job_type"`
	Status          models.JobStatus `json:"status"`
	Description     *string          `json:"description"`
	Requirements    []string         `json:"requirements"`
	ApplicantsCount int              `json:"applicants_count"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ToJobDTO converts a Job model to JobDTO
func ToJobDTO(job models.Job) JobDTO {
	return JobDTO{
		ID:              job.ID,
		Title:           job.Title,
		Department:      job.Department,
		Location:        job.Location,
		JobType:         job.JobType,
		Status:          job.Status,
		Description:     job.Description,
		Requirements:    job.Requirements,
		ApplicantsCount: job.ApplicantsCount,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}

// ToJobDTOs converts a slice of Job models
func ToJobDTOs(jobs []models.Job) []JobDTO {
	dtos := make([]JobDTO, len(jobs))
	for i, job := range jobs {
		dtos[i] = ToJobDTO(job)
	}
	return dtos
}
