package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mettlehq/ats-api/internal/dto"
	apierrors "github.com/mettlehq/ats-api/internal/errors"
	"github.com/mettlehq/ats-api/internal/models"
	"github.com/mettlehq/ats-api/internal/services"
	"github.com/mettlehq/ats-api/internal/utils"
)

// CandidateHandler coordinates candidate profile HTTP handlers.
type CandidateHandler struct {
	candidateService *services.CandidateService
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(candidateService *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		candidateService: candidateService,
	}
}

// ListCandidates returns candidates newest-first, filtered by optional status
// and source query parameters.
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	params := utils.GetListParams(c)

	input := services.ListCandidatesInput{
		Skip:  params.Skip,
		Limit: params.Limit,
	}
	if status := c.Query("status"); status != "" {
		candidateStatus := models.CandidateStatus(status)
		input.Status = &candidateStatus
	}
	if source := c.Query("source"); source != "" {
		candidateSource := models.CandidateSource(source)
		input.Source = &candidateSource
	}

	candidates, err := h.candidateService.ListCandidates(input)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateDTOs(candidates))
}

// GetCandidate returns a single candidate by ID.
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid candidate id")
		return
	}

	candidate, err := h.candidateService.GetCandidate(id)
	if err != nil {
		respondCandidateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateDTO(*candidate))
}

// CreateCandidate creates a new profile. Tags, experience_years, status, and
// score are derived server-side; caller-supplied values for them are ignored.
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	type CreateCandidateRequest struct {
		Name           string                  `json:"name" binding:"required"`
		Email          string                  `json:"email" binding:"required,email"`
		Phone          *string                 `json:"phone"`
		PhotoURL       *string                 `json:"photo_url"`
		Role           string                  `json:"role" binding:"required"`
		Source         string                  `json:"source" binding:"required,oneof=LinkedIn GitHub Referral CareerPage Indeed"`
		Location       *string                 `json:"location"`
		Skills         []string                `json:"skills"`
		Summary        *string                 `json:"summary"`
		ResumeURL      *string                 `json:"resume_url"`
		Experience     []models.WorkExperience `json:"experience"`
		Education      []models.Education      `json:"education"`
		Certifications []models.Certification  `json:"certifications"`
	}

	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	candidate, err := h.candidateService.CreateCandidate(services.CreateCandidateInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		PhotoURL:       req.PhotoURL,
		Role:           req.Role,
		Source:         models.CandidateSource(req.Source),
		Location:       req.Location,
		Skills:         req.Skills,
		Summary:        req.Summary,
		ResumeURL:      req.ResumeURL,
		Experience:     req.Experience,
		Education:      req.Education,
		Certifications: req.Certifications,
	})
	if err != nil {
		respondCandidateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCandidateDTO(*candidate))
}

// UpdateCandidate applies a partial update verbatim; derived fields are not
// recomputed here.
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid candidate id")
		return
	}

	type UpdateCandidateRequest struct {
		Name           *string                  `json:"name"`
		Email          *string                  `json:"email" binding:"omitempty,email"`
		Phone          *string                  `json:"phone"`
		PhotoURL       *string                  `json:"photo_url"`
		Role           *string                  `json:"role"`
		Source         *string                  `json:"source" binding:"omitempty,oneof=LinkedIn GitHub Referral CareerPage Indeed"`
		Status         *string                  `json:"status" binding:"omitempty,oneof=New Screening Interview Offer Hired Rejected"`
		Score          *int                     `json:"score" binding:"omitempty,min=0,max=100"`
		Location       *string                  `json:"location"`
		Skills         *[]string                `json:"skills"`
		Tags           *[]string                `json:"tags"`
		Summary        *string                  `json:"summary"`
		ResumeURL      *string                  `json:"resume_url"`
		Experience     *[]models.WorkExperience `json:"experience"`
		Education      *[]models.Education      `json:"education"`
		Certifications *[]models.Certification  `json:"certifications"`
	}

	var req UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateCandidateInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		PhotoURL:       req.PhotoURL,
		Role:           req.Role,
		Score:          req.Score,
		Location:       req.Location,
		Skills:         req.Skills,
		Tags:           req.Tags,
		Summary:        req.Summary,
		ResumeURL:      req.ResumeURL,
		Experience:     req.Experience,
		Education:      req.Education,
		Certifications: req.Certifications,
	}
	if req.Source != nil {
		source := models.CandidateSource(*req.Source)
		input.Source = &source
	}
	if req.Status != nil {
		status := models.CandidateStatus(*req.Status)
		input.Status = &status
	}

	candidate, err := h.candidateService.UpdateCandidate(id, input)
	if err != nil {
		respondCandidateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateDTO(*candidate))
}

// DeleteCandidate removes a candidate and all of their applications.
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid candidate id")
		return
	}

	if err := h.candidateService.DeleteCandidate(id); err != nil {
		respondCandidateError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondCandidateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCandidateNotFound):
		apierrors.NotFound(c, "Candidate not found")
	case errors.Is(err, services.ErrCandidateEmailTaken):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
