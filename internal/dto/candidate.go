package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mettlehq/ats-api/internal/models"
)

// CandidateDTO represents a candidate profile in API responses
type CandidateDTO struct {
	ID              uuid.UUID               `json:"id"`
	Name            string                  `json:"name"`
	Email           string                  `json:"email"`
	Phone           *string                 `json:"phone"`
	PhotoURL        *string                 `json:"photo_url"`
	Role            string                  `json:"role"`
	Source          models.CandidateSource  `json:"source"`
	Status          models.CandidateStatus  `json:"status"`
	Score           int                     `json:"score"`
	Location        *string                 `json:"location"`
	Skills          []string                `json:"skills"`
	Tags            []string                `json:"tags"`
	ExperienceYears int                     `json:"experience_years"`
	Summary         *string                 `json:"summary"`
	ResumeURL       *string                 `json:"resume_url"`
	Experience      []models.WorkExperience `json:"experience"`
	Education       []models.Education      `json:"education"`
	Certifications  []models.Certification  `json:"certifications"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// ToCandidateDTO converts a Candidate model to CandidateDTO
func ToCandidateDTO(candidate models.Candidate) CandidateDTO {
	return CandidateDTO{
		ID:              candidate.ID,
		Name:            candidate.Name,
		Email:           candidate.Email,
		Phone:           candidate.Phone,
		PhotoURL:        candidate.PhotoURL,
		Role:            candidate.Role,
		Source:          candidate.Source,
		Status:          candidate.Status,
		Score:           candidate.Score,
		Location:        candidate.Location,
		Skills:          candidate.Skills,
		Tags:            candidate.Tags,
		ExperienceYears: candidate.ExperienceYears,
		Summary:         candidate.Summary,
		ResumeURL:       candidate.ResumeURL,
		Experience:      candidate.Experience,
		Education:       candidate.Education,
		Certifications:  candidate.Certifications,
		CreatedAt:       candidate.CreatedAt,
		UpdatedAt:       candidate.UpdatedAt,
	}
}

// ToCandidateDTOs converts a slice of Candidate models
func ToCandidateDTOs(candidates []models.Candidate) []CandidateDTO {
	dtos := make([]CandidateDTO, len(candidates))
	for i, candidate := range candidates {
		dtos[i] = ToCandidateDTO(candidate)
	}
	return dtos
}
