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
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrCandidateEmailTaken = errors.New("candidate with this email already exists")
)

// tagLimit caps how many leading skills become tags at creation time.
const tagLimit = 3

// CandidateService handles candidate profile business logic
type CandidateService struct {
	candidateRepo repository.CandidateRepository
}

// NewCandidateService creates a new CandidateService
func NewCandidateService(candidateRepo repository.CandidateRepository) *CandidateService {
	return &CandidateService{candidateRepo: candidateRepo}
}

// ListCandidatesInput represents filters for listing candidates
type ListCandidatesInput struct {
	Status *models.CandidateStatus
	Source *models.CandidateSource
	Skip   int
	Limit  int
}

// CreateCandidateInput represents input for creating a candidate
type CreateCandidateInput struct {
	Name           string
	Email          string
	Phone          *string
	PhotoURL       *string
	Role           string
	Source         models.CandidateSource
	Location       *string
	Skills         []string
	Summary        *string
	ResumeURL      *string
	Experience     []models.WorkExperience
	Education      []models.Education
	Certifications []models.Certification
}

// UpdateCandidateInput represents input for updating a candidate. Unlike
// creation, updates apply supplied fields verbatim: status, score, and tags
// are overwritten rather than re-derived.
type UpdateCandidateInput struct {
	Name           *string
	Email          *string
	Phone          *string
	PhotoURL       *string
	Role           *string
	Source         *models.CandidateSource
	Status         *models.CandidateStatus
	Score          *int
	Location       *string
	Skills         *[]string
	Tags           *[]string
	Summary        *string
	ResumeURL      *string
	Experience     *[]models.WorkExperience
	Education      *[]models.Education
	Certifications *[]models.Certification
}

// ListCandidates returns candidates newest-first, optionally filtered by
// status and source
func (s *CandidateService) ListCandidates(input ListCandidatesInput) ([]models.Candidate, error) {
	candidates, err := s.candidateRepo.List(repository.CandidateFilter{
		Status: input.Status,
		Source: input.Source,
		Skip:   input.Skip,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

// GetCandidate returns a candidate by ID
func (s *CandidateService) GetCandidate(id uuid.UUID) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return candidate, nil
}

// CreateCandidate creates a new candidate profile. Derived fields are
// computed here and only here: tags are the first three skills,
// experience_years counts the supplied work-history entries, and status and
// score start at their defaults whatever the caller sent.
func (s *CandidateService) CreateCandidate(input CreateCandidateInput) (*models.Candidate, error) {
	if _, err := s.candidateRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrCandidateEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	tags := []string{}
	if len(input.Skills) > 0 {
		n := tagLimit
		if len(input.Skills) < n {
			n = len(input.Skills)
		}
		tags = append(tags, input.Skills[:n]...)
	}

	candidate := &models.Candidate{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		PhotoURL:        input.PhotoURL,
		Role:            input.Role,
		Source:          input.Source,
		Status:          models.CandidateStatusNew,
		Score:           0,
		Location:        input.Location,
		Skills:          input.Skills,
		Tags:            tags,
		ExperienceYears: len(input.Experience),
		Summary:         input.Summary,
		ResumeURL:       input.ResumeURL,
		Experience:      input.Experience,
		Education:       input.Education,
		Certifications:  input.Certifications,
	}

	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	return candidate, nil
}

// UpdateCandidate applies only the fields the caller supplied, verbatim.
func (s *CandidateService) UpdateCandidate(id uuid.UUID, input UpdateCandidateInput) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	if input.Name != nil {
		candidate.Name = *input.Name
	}
	if input.Email != nil {
		candidate.Email = *input.Email
	}
	if input.Phone != nil {
		candidate.Phone = input.Phone
	}
	if input.PhotoURL != nil {
		candidate.PhotoURL = input.PhotoURL
	}
	if input.Role != nil {
		candidate.Role = *input.Role
	}
	if input.Source != nil {
		candidate.Source = *input.Source
	}
	if input.Status != nil {
		candidate.Status = *input.Status
	}
	if input.Score != nil {
		candidate.Score = *input.Score
	}
	if input.Location != nil {
		candidate.Location = input.Location
	}
	if input.Skills != nil {
		candidate.Skills = *input.Skills
	}
	if input.Tags != nil {
		candidate.Tags = *input.Tags
	}
	if input.Summary != nil {
		candidate.Summary = input.Summary
	}
	if input.ResumeURL != nil {
		candidate.ResumeURL = input.ResumeURL
	}
	if input.Experience != nil {
		candidate.Experience = *input.Experience
	}
	if input.Education != nil {
		candidate.Education = *input.Education
	}
	if input.Certifications != nil {
		candidate.Certifications = *input.Certifications
	}

	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}

	return candidate, nil
}

// DeleteCandidate removes a candidate and, via cascade, all of their applications
func (s *CandidateService) DeleteCandidate(id uuid.UUID) error {
	if _, err := s.candidateRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCandidateNotFound
		}
		return fmt.Errorf("failed to find candidate: %w", err)
	}

	if err := s.candidateRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}

	return nil
}
