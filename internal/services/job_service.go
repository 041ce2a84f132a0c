package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mettlehq/ats-api/internal/models"
	"github.com/mettlehq/ats-api/internal/repository"
)

var ErrJobNotFound = errors.New("job not found")

// JobService handles job posting business logic
type JobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// ListJobsInput represents filters for listing jobs
type ListJobsInput struct {
	Status     *models.JobStatus
	Department *string
	Skip       int
	Limit      int
}

// CreateJobInput represents input for creating a job
type CreateJobInput struct {
	Title        string
	Department   string
	Location     string
	JobType      models.JobType
	Description  *string
	Requirements []string
}

// UpdateJobInput represents input for updating a job. Only non-nil fields are
// applied; the applicants count is not settable through updates.
type UpdateJobInput struct {
	Title        *string
	Department   *string
	Location     *string
	JobType      *models.JobType
	Status       *models.JobStatus
	Description  *string
	Requirements *[]string
}

// ListJobs returns jobs newest-first, optionally filtered by status and department
func (s *JobService) ListJobs(input ListJobsInput) ([]models.Job, error) {
	jobs, err := s.jobRepo.List(repository.JobFilter{
		Status:     input.Status,
		Department: input.Department,
		Skip:       input.Skip,
		Limit:      input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// GetJob returns a job by ID
func (s *JobService) GetJob(id uuid.UUID) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return job, nil
}

// CreateJob creates a new posting. New jobs always start as drafts with zero
// applicants, regardless of any caller-supplied status.
func (s *JobService) CreateJob(input CreateJobInput) (*models.Job, error) {
	job := &models.Job{
		Title:           input.Title,
		Department:      input.Department,
		Location:        input.Location,
		JobType:         input.JobType,
		Status:          models.JobStatusDraft,
		Description:     input.Description,
		Requirements:    input.Requirements,
		ApplicantsCount: 0,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return job, nil
}

// UpdateJob applies only the fields the caller supplied; unset fields are
// left untouched.
func (s *JobService) UpdateJob(id uuid.UUID, input UpdateJobInput) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Department != nil {
		job.Department = *input.Department
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.JobType != nil {
		job.JobType = *input.JobType
	}
	if input.Status != nil {
		job.Status = *input.Status
	}
	if input.Description != nil {
		job.Description = input.Description
	}
	if input.Requirements != nil {
		job.Requirements = *input.Requirements
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return job, nil
}

// DeleteJob removes a job and, via cascade, all of its applications
func (s *JobService) DeleteJob(id uuid.UUID) error {
	if _, err := s.jobRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to find job: %w", err)
	}

	if err := s.jobRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return nil
}
