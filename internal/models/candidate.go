package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CandidateSource string

const (
	SourceLinkedIn   CandidateSource = "LinkedIn"
	SourceGitHub     CandidateSource = "GitHub"
	SourceReferral   CandidateSource = "Referral"
	SourceCareerPage CandidateSource = "CareerPage"
	SourceIndeed     CandidateSource = "Indeed"
)

type CandidateStatus string

const (
	CandidateStatusNew       CandidateStatus = "New"
	CandidateStatusScreening CandidateStatus = "Screening"
	CandidateStatusInterview CandidateStatus = "Interview"
	CandidateStatusOffer     CandidateStatus = "Offer"
	CandidateStatusHired     CandidateStatus = "Hired"
	CandidateStatusRejected  CandidateStatus = "Rejected"
)

// WorkExperience is a single work-history entry stored on a candidate.
type WorkExperience struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Education is a single education entry stored on a candidate.
type Education struct {
	ID        string  `json:"id"`
	School    string  `json:"school"`
	Degree    string  `json:"degree"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	Grade     *string `json:"grade,omitempty"`
}

// Certification is a single certification entry stored on a candidate.
type Certification struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Issuer       string  `json:"issuer"`
	IssueDate    string  `json:"issue_date"`
	CredentialID *string `json:"credential_id,omitempty"`
}

type Candidate struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Email    string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone    *string         `gorm:"type:varchar(50)" json:"phone"`
	PhotoURL *string         `gorm:"type:varchar(500)" json:"photo_url"`
	Role     string          `gorm:"type:varchar(255);not null" json:"role"`
	Source   CandidateSource `gorm:"type:varchar(50);not null" json:"source"`
	Status   CandidateStatus `gorm:"type:varchar(50);not null;default:'New'" json:"status"`
	Score    int             `gorm:"not null;default:0" json:"score"`

	Location        *string  `gorm:"type:varchar(255)" json:"location"`
	Skills          []string `gorm:"serializer:json" json:"skills"`
	Tags            []string `gorm:"serializer:json" json:"tags"`
	ExperienceYears int      `gorm:"not null;default:0" json:"experience_years"`

	Summary   *string `gorm:"type:text" json:"summary"`
	ResumeURL *string `gorm:"type:varchar(500)" json:"resume_url"`

	Experience     []WorkExperience `gorm:"serializer:json" json:"experience"`
	Education      []Education      `gorm:"serializer:json" json:"education"`
	Certifications []Certification  `gorm:"serializer:json" json:"certifications"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Applications []Application `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
