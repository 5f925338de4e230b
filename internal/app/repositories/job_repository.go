package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/memstore"
)

// JobListFilter selects job postings in List. Zero-valued fields match
// everything.
type JobListFilter struct {
	Type     string // exact
	Location string // substring, case-insensitive
	Company  string // substring, case-insensitive
}

// JobRepository stores job postings
type JobRepository struct {
	collection *memstore.Collection[models.Job]
}

// NewJobRepository creates a new JobRepository
func NewJobRepository() *JobRepository {
	return &JobRepository{
		collection: memstore.New[models.Job](),
	}
}

// Create stores a new job posting, assigning the next id and timestamps
func (r *JobRepository) Create(_ context.Context, job models.Job) models.Job {
	return r.collection.Insert(func(id int64) models.Job {
		now := time.Now()
		job.ID = id
		job.CreatedAt = now
		job.UpdatedAt = now
		return job
	})
}

// GetByID returns the job posting with the given id
func (r *JobRepository) GetByID(_ context.Context, id int64) (models.Job, bool) {
	return r.collection.Find(func(j models.Job) bool {
		return j.ID == id
	})
}

// List returns all job postings matching every supplied filter, in
// insertion order
func (r *JobRepository) List(_ context.Context, filter JobListFilter) []models.Job {
	location := strings.ToLower(filter.Location)
	company := strings.ToLower(filter.Company)

	return r.collection.List(func(j models.Job) bool {
		if filter.Type != "" && j.JobType != filter.Type {
			return false
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			return false
		}
		if company != "" && !strings.Contains(strings.ToLower(j.Company), company) {
			return false
		}
		return true
	})
}

// Update applies apply to the job posting with the given id and stamps the
// update timestamp. Returns false when the id does not exist.
func (r *JobRepository) Update(_ context.Context, id int64, apply func(models.Job) models.Job) (models.Job, bool) {
	return r.collection.Update(
		func(j models.Job) bool { return j.ID == id },
		func(j models.Job) models.Job {
			j = apply(j)
			j.UpdatedAt = time.Now()
			return j
		},
	)
}

// Delete removes the job posting with the given id
func (r *JobRepository) Delete(_ context.Context, id int64) bool {
	return r.collection.Delete(func(j models.Job) bool {
		return j.ID == id
	})
}

// Count reports the number of stored job postings
func (r *JobRepository) Count() int {
	return r.collection.Len()
}
