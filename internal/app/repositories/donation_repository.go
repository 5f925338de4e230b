package repositories

import (
	"context"
	"time"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/memstore"
)

// DonationListFilter selects donations in List. A zero-valued field
// matches everything.
type DonationListFilter struct {
	Purpose string // exact
}

// DonationRepository stores donation records. Donations are append-only:
// no update or delete operation exists.
type DonationRepository struct {
	collection *memstore.Collection[models.Donation]
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository() *DonationRepository {
	return &DonationRepository{
		collection: memstore.New[models.Donation](),
	}
}

// Create stores a new donation, assigning the next id and creation timestamp
func (r *DonationRepository) Create(_ context.Context, donation models.Donation) models.Donation {
	return r.collection.Insert(func(id int64) models.Donation {
		donation.ID = id
		donation.CreatedAt = time.Now()
		return donation
	})
}

// GetByID returns the donation with the given id, unredacted
func (r *DonationRepository) GetByID(_ context.Context, id int64) (models.Donation, bool) {
	return r.collection.Find(func(d models.Donation) bool {
		return d.ID == id
	})
}

// List returns all donations matching the filter, in insertion order
func (r *DonationRepository) List(_ context.Context, filter DonationListFilter) []models.Donation {
	return r.collection.List(func(d models.Donation) bool {
		return filter.Purpose == "" || d.Purpose == filter.Purpose
	})
}

// Count reports the number of stored donations
func (r *DonationRepository) Count() int {
	return r.collection.Len()
}
