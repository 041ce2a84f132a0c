package repository

import (
	"github.com/google/uuid"

	"github.com/mettlehq/ats-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByResetToken finds a user holding the given password-reset token
	FindByResetToken(token string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// JobFilter holds filtering options for listing jobs
type JobFilter struct {
	Status     *models.JobStatus
	Department *string
	Skip       int
	Limit      int
}

// JobRepository defines the interface for job data access
type JobRepository interface {
	// Create creates a new job
	Create(job *models.Job) error

	// FindByID finds a job by ID
	FindByID(id uuid.UUID) (*models.Job, error)

	// List retrieves jobs newest-first with filtering and pagination
	List(filter JobFilter) ([]models.Job, error)

	// Update persists changes to a job
	Update(job *models.Job) error

	// Delete removes a job and all of its applications atomically
	Delete(id uuid.UUID) error
}

// CandidateFilter holds filtering options for listing candidates
type CandidateFilter struct {
	Status *models.CandidateStatus
	Source *models.CandidateSource
	Skip   int
	Limit  int
}

// CandidateRepository defines the interface for candidate data access
type CandidateRepository interface {
	// Create creates a new candidate
	Create(candidate *models.Candidate) error

	// FindByID finds a candidate by ID
	FindByID(id uuid.UUID) (*models.Candidate, error)

	// FindByEmail finds a candidate by email
	FindByEmail(email string) (*models.Candidate, error)

	// List retrieves candidates newest-first with filtering and pagination
	List(filter CandidateFilter) ([]models.Candidate, error)

	// Update persists changes to a candidate
	Update(candidate *models.Candidate) error

	// Delete removes a candidate, cascades its applications, and adjusts the
	// applicants count of every affected job, all atomically
	Delete(id uuid.UUID) error
}

// ApplicationFilter holds filtering options for listing applications
type ApplicationFilter struct {
	JobID       *uuid.UUID
	CandidateID *uuid.UUID
	Stage       *string
}

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	// CreateWithCount inserts an application and increments the owning job's
	// applicants count within a single transaction
	CreateWithCount(application *models.Application) error

	// FindByID finds an application by ID
	FindByID(id uuid.UUID) (*models.Application, error)

	// FindByPair finds the application for an exact (candidate, job) pair
	FindByPair(candidateID, jobID uuid.UUID) (*models.Application, error)

	// List retrieves applications ordered by applied_at descending
	List(filter ApplicationFilter) ([]models.Application, error)

	// Update persists changes to an application
	Update(application *models.Application) error

	// DeleteWithCount removes an application and decrements the owning job's
	// applicants count (never below zero) within a single transaction
	DeleteWithCount(application *models.Application) error
}
