package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// JobController handles job posting endpoints
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

// ListJobs handles GET /api/jobs with optional type, location and
// company filters
func (c *JobController) ListJobs(ctx *gin.Context) {
	var filter dto.JobFilter
	_ = ctx.ShouldBindQuery(&filter)

	jobs := c.jobService.ListJobs(ctx.Request.Context(), filter)

	ctx.JSON(http.StatusOK, dto.JobsListResponse{
		Jobs:  jobs,
		Total: len(jobs),
	})
}

// CreateJob handles POST /api/jobs
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if !bindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.JobResponse{
		Message: "Job posted successfully",
		Job:     job,
	})
}

// GetJob handles GET /api/jobs/:id
func (c *JobController) GetJob(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	job, err := c.jobService.GetJobByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobResponse{Job: job})
}

// UpdateJob handles PUT /api/jobs/:id
func (c *JobController) UpdateJob(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !bindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.UpdateJob(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobResponse{
		Message: "Job updated successfully",
		Job:     job,
	})
}

// DeleteJob handles DELETE /api/jobs/:id
func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.jobService.DeleteJob(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted successfully"})
}
