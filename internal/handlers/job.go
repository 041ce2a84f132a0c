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

// JobHandler coordinates job posting HTTP handlers.
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// ListJobs returns jobs newest-first, filtered by optional status and
// department query parameters.
func (h *JobHandler) ListJobs(c *gin.Context) {
	params := utils.GetListParams(c)

	input := services.ListJobsInput{
		Skip:  params.Skip,
		Limit: params.Limit,
	}
	if status := c.Query("status"); status != "" {
		jobStatus := models.JobStatus(status)
		input.Status = &jobStatus
	}
	if department := c.Query("department"); department != "" {
		input.Department = &department
	}

	jobs, err := h.jobService.ListJobs(input)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToJobDTOs(jobs))
}

// GetJob returns a single job by ID.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid job id")
		return
	}

	job, err := h.jobService.GetJob(id)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobDTO(*job))
}

// CreateJob creates a new posting. Status is forced to Draft server-side.
func (h *JobHandler) CreateJob(c *gin.Context) {
	type CreateJobRequest struct {
		Title        string  `json:"title" binding:"required"`
		Department   string  `json:"department" binding:"required,oneof=Engineering Sales Marketing HR Product"`
		Location     string  `json:"location" binding:"required"`
		JobType      string  `json:"job_type" binding:"required,oneof=Full-time Contract Remote"`
		Description  *string `json:"description"`
		Requirements []string `json:"requirements"`
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	job, err := h.jobService.CreateJob(services.CreateJobInput{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		JobType:      models.JobType(req.JobType),
		Description:  req.Description,
		Requirements: req.Requirements,
	})
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobDTO(*job))
}

// UpdateJob applies a partial update; unset fields keep their values.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid job id")
		return
	}

	type UpdateJobRequest struct {
		Title        *string   `json:"title"`
		Department   *string   `json:"department" binding:"omitempty,oneof=Engineering Sales Marketing HR Product"`
		Location     *string   `json:"location"`
		JobType      *string   `json:"job_type" binding:"omitempty,oneof=Full-time Contract Remote"`
		Status       *string   `json:"status" binding:"omitempty,oneof=Draft Open Closed"`
		Description  *string   `json:"description"`
		Requirements *[]string `json:"requirements"`
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateJobInput{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
	}
	if req.JobType != nil {
		jobType := models.JobType(*req.JobType)
		input.JobType = &jobType
	}
	if req.Status != nil {
		status := models.JobStatus(*req.Status)
		input.Status = &status
	}

	job, err := h.jobService.UpdateJob(id, input)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobDTO(*job))
}

// DeleteJob removes a job and all of its applications.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid job id")
		return
	}

	if err := h.jobService.DeleteJob(id); err != nil {
		respondJobError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		apierrors.NotFound(c, "Job not found")
	default:
		apierrors.InternalError(c, "")
	}
}
