package services

import (
	"context"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// JobService handles job posting operations
type JobService struct {
	jobRepo *repositories.JobRepository
}

// NewJobService creates a new job service instance
func NewJobService(jobRepo *repositories.JobRepository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// CreateJob creates a new job posting with defaults applied
func (s *JobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	jobType := req.JobType
	if jobType == "" {
		jobType = models.DefaultJobType
	}
	experienceLevel := req.ExperienceLevel
	if experienceLevel == "" {
		experienceLevel = models.DefaultExperienceLevel
	}

	job := s.jobRepo.Create(ctx, models.Job{
		Title:           req.Title,
		Company:         req.Company,
		Description:     req.Description,
		Location:        req.Location,
		JobType:         jobType,
		ExperienceLevel: experienceLevel,
		SalaryRange:     req.SalaryRange,
		Requirements:    req.Requirements,
		ContactEmail:    req.ContactEmail,
		ApplicationURL:  req.ApplicationURL,
		PostedBy:        req.PostedBy,
		Status:          models.JobStatusActive,
		ExpiresAt:       req.ExpiresAt,
	})

	return &job, nil
}

// ListJobs returns all job postings matching the filter
func (s *JobService) ListJobs(ctx context.Context, filter dto.JobFilter) []models.Job {
	return s.jobRepo.List(ctx, repositories.JobListFilter{
		Type:     filter.Type,
		Location: filter.Location,
		Company:  filter.Company,
	})
}

// GetJobByID retrieves a job posting by id
func (s *JobService) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	job, ok := s.jobRepo.GetByID(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("Job not found")
	}
	return &job, nil
}

// UpdateJob merge-patches a job posting
func (s *JobService) UpdateJob(ctx context.Context, id int64, req *dto.UpdateJobRequest) (*models.Job, error) {
	updated, ok := s.jobRepo.Update(ctx, id, func(j models.Job) models.Job {
		if req.Title != nil {
			j.Title = *req.Title
		}
		if req.Company != nil {
			j.Company = *req.Company
		}
		if req.Description != nil {
			j.Description = *req.Description
		}
		if req.Location != nil {
			j.Location = *req.Location
		}
		if req.JobType != nil {
			j.JobType = *req.JobType
		}
		if req.ExperienceLevel != nil {
			j.ExperienceLevel = *req.ExperienceLevel
		}
		if req.SalaryRange != nil {
			j.SalaryRange = *req.SalaryRange
		}
		if req.Requirements != nil {
			j.Requirements = *req.Requirements
		}
		if req.ContactEmail != nil {
			j.ContactEmail = *req.ContactEmail
		}
		if req.ApplicationURL != nil {
			j.ApplicationURL = *req.ApplicationURL
		}
		if req.PostedBy != nil {
			j.PostedBy = *req.PostedBy
		}
		if req.Status != nil {
			j.Status = *req.Status
		}
		if req.ExpiresAt != nil {
			j.ExpiresAt = *req.ExpiresAt
		}
		return j
	})
	if !ok {
		return nil, apperrors.NewNotFoundError("Job not found")
	}

	return &updated, nil
}

// DeleteJob removes a job posting irreversibly
func (s *JobService) DeleteJob(ctx context.Context, id int64) error {
	if !s.jobRepo.Delete(ctx, id) {
		return apperrors.NewNotFoundError("Job not found")
	}
	return nil
}
