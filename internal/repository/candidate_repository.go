package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mettlehq/ats-api/internal/models"
)

// GormCandidateRepository is a GORM implementation of CandidateRepository
type GormCandidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new CandidateRepository
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &GormCandidateRepository{db: db}
}

// Create creates a new candidate
func (r *GormCandidateRepository) Create(candidate *models.Candidate) error {
	return r.db.Create(candidate).Error
}

// FindByID finds a candidate by ID
func (r *GormCandidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.First(&candidate, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

// FindByEmail finds a candidate by email
func (r *GormCandidateRepository) FindByEmail(email string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("email = ?", email).First(&candidate).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

// List retrieves candidates newest-first with filtering and pagination
func (r *GormCandidateRepository) List(filter CandidateFilter) ([]models.Candidate, error) {
	var candidates []models.Candidate

	query := r.db.Model(&models.Candidate{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Source != nil {
		query = query.Where("source = ?", *filter.Source)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Skip).Limit(filter.Limit)
	}

	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// Update persists changes to a candidate
func (r *GormCandidateRepository) Update(candidate *models.Candidate) error {
	return r.db.Save(candidate).Error
}

// Delete removes a candidate and cascades its applications. Each affected
// job's applicants count is decremented in the same transaction so the count
// keeps matching the set of live applications. The pair uniqueness guarantees
// at most one application per job for this candidate, so a single decrement
// per job is exact.
func (r *GormCandidateRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var jobIDs []uuid.UUID
		if err := tx.Model(&models.Application{}).
			Where("candidate_id = ?", id).
			Pluck("job_id", &jobIDs).Error; err != nil {
			return err
		}

		if err := tx.Where("candidate_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		if len(jobIDs) > 0 {
			if err := tx.Model(&models.Job{}).
				Where("id IN ? AND applicants_count > 0", jobIDs).
				UpdateColumn("applicants_count", gorm.Expr("applicants_count - 1")).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Candidate{}, "id = ?", id).Error
	})
}
