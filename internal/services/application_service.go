package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mettlehq/ats-api/internal/models"
	"github.com/mettlehq/ats-api/internal/repository"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

// ApplicationService owns the pipeline link between candidates and jobs,
// including the job applicants-count invariant.
type ApplicationService struct {
	applicationRepo repository.ApplicationRepository
	jobRepo         repository.JobRepository
	candidateRepo   repository.CandidateRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	candidateRepo repository.CandidateRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
	}
}

// ListApplicationsInput represents filters for listing applications
type ListApplicationsInput struct {
	JobID       *uuid.UUID
	CandidateID *uuid.UUID
	Stage       *string
}

// CreateApplicationInput represents input for linking a candidate to a job
type CreateApplicationInput struct {
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Stage       string
}

// ListApplications returns applications ordered by applied_at descending
func (s *ApplicationService) ListApplications(input ListApplicationsInput) ([]models.Application, error) {
	applications, err := s.applicationRepo.List(repository.ApplicationFilter{
		JobID:       input.JobID,
		CandidateID: input.CandidateID,
		Stage:       input.Stage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// GetApplication returns an application by ID
func (s *ApplicationService) GetApplication(id uuid.UUID) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return application, nil
}

// CreateApplication links a candidate to a job. Both referenced entities must
// exist and the pair must not already be linked. The insert and the job's
// applicants-count increment commit atomically; the composite unique index
// catches any racing duplicate the pre-check missed.
func (s *ApplicationService) CreateApplication(input CreateApplicationInput) (*models.Application, error) {
	if _, err := s.jobRepo.FindByID(input.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if _, err := s.candidateRepo.FindByID(input.CandidateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	if _, err := s.applicationRepo.FindByPair(input.CandidateID, input.JobID); err == nil {
		return nil, ErrDuplicateApplication
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check for existing application: %w", err)
	}

	stage := input.Stage
	if stage == "" {
		stage = models.DefaultStage
	}

	application := &models.Application{
		CandidateID: input.CandidateID,
		JobID:       input.JobID,
		Stage:       stage,
	}

	if err := s.applicationRepo.CreateWithCount(application); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return application, nil
}

// UpdateStage moves an application to a new pipeline stage. Stages carry no
// transition graph; any label is reachable from any other.
func (s *ApplicationService) UpdateStage(id uuid.UUID, stage string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	application.Stage = stage

	if err := s.applicationRepo.Update(application); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	return application, nil
}

// DeleteApplication removes an application and gives back its slot in the
// job's applicants count.
func (s *ApplicationService) DeleteApplication(id uuid.UUID) error {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("failed to find application: %w", err)
	}

	if err := s.applicationRepo.DeleteWithCount(application); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	return nil
}
