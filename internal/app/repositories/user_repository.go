package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/memstore"
)

// UserRepository stores registered user accounts
type UserRepository struct {
	collection *memstore.Collection[models.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		collection: memstore.New[models.User](),
	}
}

// Create stores a new user, assigning the next id and creation timestamp.
// The email must not already be registered (case-insensitive); the check and
// the insert are atomic, so concurrent registrations cannot both win.
// Returns false when the email is taken. The caller hashes the password.
func (r *UserRepository) Create(_ context.Context, user models.User) (models.User, bool) {
	email := strings.ToLower(user.Email)
	created, err := r.collection.InsertIf(
		func(u models.User) bool { return strings.ToLower(u.Email) == email },
		func(id int64) models.User {
			user.ID = id
			user.CreatedAt = time.Now()
			return user
		},
	)
	return created, err == nil
}

// GetByID returns the user with the given id
func (r *UserRepository) GetByID(_ context.Context, id int64) (models.User, bool) {
	return r.collection.Find(func(u models.User) bool {
		return u.ID == id
	})
}

// GetByEmail returns the user with the given email, compared case-insensitively
func (r *UserRepository) GetByEmail(_ context.Context, email string) (models.User, bool) {
	email = strings.ToLower(email)
	return r.collection.Find(func(u models.User) bool {
		return strings.ToLower(u.Email) == email
	})
}

// Count reports the number of registered users
func (r *UserRepository) Count() int {
	return r.collection.Len()
}
