package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mettlehq/ats-api/internal/dto"
	apierrors "github.com/mettlehq/ats-api/internal/errors"
	"github.com/mettlehq/ats-api/internal/services"
)

// ApplicationHandler coordinates pipeline link HTTP handlers.
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// ListApplications returns applications ordered by applied_at descending,
// filtered by optional job_id, candidate_id, and stage query parameters.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var input services.ListApplicationsInput

	if jobIDStr := c.Query("job_id"); jobIDStr != "" {
		jobID, err := uuid.Parse(jobIDStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid job_id")
			return
		}
		input.JobID = &jobID
	}
	if candidateIDStr := c.Query("candidate_id"); candidateIDStr != "" {
		candidateID, err := uuid.Parse(candidateIDStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid candidate_id")
			return
		}
		input.CandidateID = &candidateID
	}
	if stage := c.Query("stage"); stage != "" {
		input.Stage = &stage
	}

	applications, err := h.applicationService.ListApplications(input)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTOs(applications))
}

// GetApplication returns a single application by ID.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid application id")
		return
	}

	application, err := h.applicationService.GetApplication(id)
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*application))
}

// CreateApplication links a candidate to a job.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	type CreateApplicationRequest struct {
		CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
		JobID       uuid.UUID `json:"job_id" binding:"required"`
		Stage       string    `json:"stage"`
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	application, err := h.applicationService.CreateApplication(services.CreateApplicationInput{
		CandidateID: req.CandidateID,
		JobID:       req.JobID,
		Stage:       req.Stage,
	})
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicationDTO(*application))
}

// UpdateApplication moves an application to a new pipeline stage. Stage is
// the only mutable field.
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid application id")
		return
	}

	type UpdateApplicationRequest struct {
		Stage string `json:"stage" binding:"required"`
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	application, err := h.applicationService.UpdateStage(id, req.Stage)
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*application))
}

// DeleteApplication removes an application and releases its slot in the
// job's applicants count.
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid application id")
		return
	}

	if err := h.applicationService.DeleteApplication(id); err != nil {
		respondApplicationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondApplicationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrApplicationNotFound):
		apierrors.NotFound(c, "Application not found")
	case errors.Is(err, services.ErrJobNotFound):
		apierrors.NotFound(c, "Job not found")
	case errors.Is(err, services.ErrCandidateNotFound):
		apierrors.NotFound(c, "Candidate not found")
	case errors.Is(err, services.ErrDuplicateApplication):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
