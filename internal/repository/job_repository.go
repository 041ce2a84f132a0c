package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mettlehq/ats-api/internal/models"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

// Create creates a new job
func (r *GormJobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// FindByID finds a job by ID
func (r *GormJobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves jobs newest-first with filtering and pagination
func (r *GormJobRepository) List(filter JobFilter) ([]models.Job, error) {
	var jobs []models.Job

	query := r.db.Model(&models.Job{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Skip).Limit(filter.Limit)
	}

	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update persists changes to a job
func (r *GormJobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// Delete removes a job and all of its applications atomically. The cascade is
// expressed here rather than left to schema annotations so it holds on every
// backing store and can be verified by test.
func (r *GormJobRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Job{}, "id = ?", id).Error
	})
}
