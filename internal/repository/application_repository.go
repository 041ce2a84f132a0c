package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mettlehq/ats-api/internal/models"
)

// GormApplicationRepository is a GORM implementation of ApplicationRepository
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// CreateWithCount inserts an application and increments the owning job's
// applicants count. Both writes happen inside one transaction: if either
// fails, neither persists.
func (r *GormApplicationRepository) CreateWithCount(application *models.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			return err
		}

		return tx.Model(&models.Job{}).
			Where("id = ?", application.JobID).
			UpdateColumn("applicants_count", gorm.Expr("applicants_count + 1")).Error
	})
}

// FindByID finds an application by ID
func (r *GormApplicationRepository) FindByID(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	if err := r.db.First(&application, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// FindByPair finds the application for an exact (candidate, job) pair
func (r *GormApplicationRepository) FindByPair(candidateID, jobID uuid.UUID) (*models.Application, error) {
	var application models.Application
	if err := r.db.Where("candidate_id = ? AND job_id = ?", candidateID, jobID).
		First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// List retrieves applications ordered by applied_at descending
func (r *GormApplicationRepository) List(filter ApplicationFilter) ([]models.Application, error) {
	var applications []models.Application

	query := r.db.Model(&models.Application{})
	if filter.JobID != nil {
		query = query.Where("job_id = ?", *filter.JobID)
	}
	if filter.CandidateID != nil {
		query = query.Where("candidate_id = ?", *filter.CandidateID)
	}
	if filter.Stage != nil {
		query = query.Where("stage = ?", *filter.Stage)
	}

	if err := query.Order("applied_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// Update persists changes to an application
func (r *GormApplicationRepository) Update(application *models.Application) error {
	return r.db.Save(application).Error
}

// DeleteWithCount removes an application and decrements the owning job's
// applicants count in the same transaction. The decrement applies only while
// the count is above zero, so it never goes negative; if the job row is
// already gone the update matches nothing and the removal still commits.
func (r *GormApplicationRepository) DeleteWithCount(application *models.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Application{}, "id = ?", application.ID).Error; err != nil {
			return err
		}

		return tx.Model(&models.Job{}).
			Where("id = ? AND applicants_count > 0", application.JobID).
			UpdateColumn("applicants_count", gorm.Expr("applicants_count - 1")).Error
	})
}
