package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/memstore"
)

// AlumniListFilter selects alumni profiles in List. Zero-valued fields
// match everything.
type AlumniListFilter struct {
	Search     string // substring over name or current company, case-insensitive
	Batch      string // exact
	Department string // exact, case-insensitive
	Company    string // substring, case-insensitive
}

// AlumniRepository stores alumni profiles
type AlumniRepository struct {
	collection *memstore.Collection[models.Alumnus]
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository() *AlumniRepository {
	return &AlumniRepository{
		collection: memstore.New[models.Alumnus](),
	}
}

// Create stores a new profile, assigning the next id and timestamps.
// The email must not already belong to a profile (case-insensitive); the
// check and the insert are atomic, so concurrent creates cannot both win.
// Returns false when the email is taken.
func (r *AlumniRepository) Create(_ context.Context, alumnus models.Alumnus) (models.Alumnus, bool) {
	email := strings.ToLower(alumnus.Email)
	created, err := r.collection.InsertIf(
		func(a models.Alumnus) bool { return strings.ToLower(a.Email) == email },
		func(id int64) models.Alumnus {
			now := time.Now()
			alumnus.ID = id
			alumnus.CreatedAt = now
			alumnus.UpdatedAt = now
			return alumnus
		},
	)
	return created, err == nil
}

// GetByID returns the profile with the given id
func (r *AlumniRepository) GetByID(_ context.Context, id int64) (models.Alumnus, bool) {
	return r.collection.Find(func(a models.Alumnus) bool {
		return a.ID == id
	})
}

// List returns all profiles matching every supplied filter, in insertion order
func (r *AlumniRepository) List(_ context.Context, filter AlumniListFilter) []models.Alumnus {
	search := strings.ToLower(filter.Search)
	department := strings.ToLower(filter.Department)
	company := strings.ToLower(filter.Company)

	return r.collection.List(func(a models.Alumnus) bool {
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Name), search) &&
			!strings.Contains(strings.ToLower(a.CurrentCompany), search) {
			return false
		}
		if filter.Batch != "" && a.Batch != filter.Batch {
			return false
		}
		if department != "" && strings.ToLower(a.Department) != department {
			return false
		}
		if company != "" && !strings.Contains(strings.ToLower(a.CurrentCompany), company) {
			return false
		}
		return true
	})
}

// Update applies apply to the profile with the given id and stamps the
// update timestamp. A non-empty newEmail reserves that address atomically:
// the update fails with memstore.ErrConflict when any other profile already
// uses it, and memstore.ErrNotFound when the id does not exist.
func (r *AlumniRepository) Update(_ context.Context, id int64, newEmail string, apply func(models.Alumnus) models.Alumnus) (models.Alumnus, error) {
	var conflict func(models.Alumnus) bool
	if newEmail != "" {
		email := strings.ToLower(newEmail)
		conflict = func(a models.Alumnus) bool {
			return strings.ToLower(a.Email) == email
		}
	}

	return r.collection.UpdateIf(
		func(a models.Alumnus) bool { return a.ID == id },
		conflict,
		func(a models.Alumnus) models.Alumnus {
			a = apply(a)
			a.UpdatedAt = time.Now()
			return a
		},
	)
}

// Delete removes the profile with the given id
func (r *AlumniRepository) Delete(_ context.Context, id int64) bool {
	return r.collection.Delete(func(a models.Alumnus) bool {
		return a.ID == id
	})
}

// Count reports the number of stored profiles
func (r *AlumniRepository) Count() int {
	return r.collection.Len()
}
