package services

import (
	"context"
	"errors"
	"strings"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/memstore"
	"github.com/alumniconnect/backend/internal/pkg/validation"
)

// AlumniService handles alumni profile operations
type AlumniService struct {
	alumniRepo *repositories.AlumniRepository
}

// NewAlumniService creates a new alumni service instance
func NewAlumniService(alumniRepo *repositories.AlumniRepository) *AlumniService {
	return &AlumniService{
		alumniRepo: alumniRepo,
	}
}

// CreateAlumnus creates a new alumni profile. Emails are validated and
// unique within the alumni collection, independently of user accounts.
func (s *AlumniService) CreateAlumnus(ctx context.Context, req *dto.CreateAlumnusRequest) (*models.Alumnus, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("Invalid email format")
	}

	alumnus, ok := s.alumniRepo.Create(ctx, models.Alumnus{
		Name:            req.Name,
		Email:           strings.ToLower(req.Email),
		Batch:           req.Batch,
		Department:      req.Department,
		Phone:           req.Phone,
		CurrentCompany:  req.CurrentCompany,
		CurrentPosition: req.CurrentPosition,
		Location:        req.Location,
		Bio:             req.Bio,
		LinkedIn:        req.LinkedIn,
		ProfileImage:    req.ProfileImage,
		GraduationYear:  req.GraduationYear,
	})
	if !ok {
		return nil, apperrors.NewConflictError("Alumni with this email already exists")
	}

	return &alumnus, nil
}

// ListAlumni returns all profiles matching the filter
func (s *AlumniService) ListAlumni(ctx context.Context, filter dto.AlumniFilter) []models.Alumnus {
	return s.alumniRepo.List(ctx, repositories.AlumniListFilter{
		Search:     filter.Search,
		Batch:      filter.Batch,
		Department: filter.Department,
		Company:    filter.Company,
	})
}

// GetAlumnusByID retrieves a profile by id
func (s *AlumniService) GetAlumnusByID(ctx context.Context, id int64) (*models.Alumnus, error) {
	alumnus, ok := s.alumniRepo.GetByID(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("Alumni not found")
	}
	return &alumnus, nil
}

// UpdateAlumnus merge-patches a profile. A changed email is re-validated
// for shape, and its uniqueness is enforced atomically with the write.
func (s *AlumniService) UpdateAlumnus(ctx context.Context, id int64, req *dto.UpdateAlumnusRequest) (*models.Alumnus, error) {
	if _, ok := s.alumniRepo.GetByID(ctx, id); !ok {
		return nil, apperrors.NewNotFoundError("Alumni not found")
	}

	newEmail := ""
	if req.Email != nil {
		if !validation.IsValidEmail(*req.Email) {
			return nil, apperrors.NewValidationError("Invalid email format")
		}
		newEmail = *req.Email
	}

	updated, err := s.alumniRepo.Update(ctx, id, newEmail, func(a models.Alumnus) models.Alumnus {
		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.Email != nil {
			a.Email = strings.ToLower(*req.Email)
		}
		if req.Batch != nil {
			a.Batch = *req.Batch
		}
		if req.Department != nil {
			a.Department = *req.Department
		}
		if req.Phone != nil {
			a.Phone = *req.Phone
		}
		if req.CurrentCompany != nil {
			a.CurrentCompany = *req.CurrentCompany
		}
		if req.CurrentPosition != nil {
			a.CurrentPosition = *req.CurrentPosition
		}
		if req.Location != nil {
			a.Location = *req.Location
		}
		if req.Bio != nil {
			a.Bio = *req.Bio
		}
		if req.LinkedIn != nil {
			a.LinkedIn = *req.LinkedIn
		}
		if req.ProfileImage != nil {
			a.ProfileImage = *req.ProfileImage
		}
		if req.GraduationYear != nil {
			a.GraduationYear = *req.GraduationYear
		}
		return a
	})
	switch {
	case errors.Is(err, memstore.ErrConflict):
		return nil, apperrors.NewConflictError("Email already exists for another alumni")
	case errors.Is(err, memstore.ErrNotFound):
		return nil, apperrors.NewNotFoundError("Alumni not found")
	case err != nil:
		return nil, err
	}

	return &updated, nil
}

// DeleteAlumnus removes a profile irreversibly
func (s *AlumniService) DeleteAlumnus(ctx context.Context, id int64) error {
	if !s.alumniRepo.Delete(ctx, id) {
		return apperrors.NewNotFoundError("Alumni not found")
	}
	return nil
}
