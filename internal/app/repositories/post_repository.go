package repositories

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/memstore"
)

// PostListFilter selects posts in List. Zero-valued fields match everything.
type PostListFilter struct {
	Type   string // exact
	Author string // substring over author name, case-insensitive
}

// PostRepository stores feed posts
type PostRepository struct {
	collection *memstore.Collection[models.Post]
}

// NewPostRepository creates a new PostRepository
func NewPostRepository() *PostRepository {
	return &PostRepository{
		collection: memstore.New[models.Post](),
	}
}

// Create stores a new post, assigning the next id and timestamps
func (r *PostRepository) Create(_ context.Context, post models.Post) models.Post {
	return r.collection.Insert(func(id int64) models.Post {
		now := time.Now()
		post.ID = id
		post.CreatedAt = now
		post.UpdatedAt = now
		return post
	})
}

// GetByID returns the post with the given id
func (r *PostRepository) GetByID(_ context.Context, id int64) (models.Post, bool) {
	return r.collection.Find(func(p models.Post) bool {
		return p.ID == id
	})
}

// List returns all posts matching every supplied filter, newest first.
// Posts created in the same instant order by descending id.
func (r *PostRepository) List(_ context.Context, filter PostListFilter) []models.Post {
	author := strings.ToLower(filter.Author)

	posts := r.collection.List(func(p models.Post) bool {
		if filter.Type != "" && p.PostType != filter.Type {
			return false
		}
		if author != "" && !strings.Contains(strings.ToLower(p.AuthorName), author) {
			return false
		}
		return true
	})

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts
}

// Update applies apply to the post with the given id and stamps the update
// timestamp. The creation timestamp is preserved. Returns false when the id
// does not exist.
func (r *PostRepository) Update(_ context.Context, id int64, apply func(models.Post) models.Post) (models.Post, bool) {
	return r.collection.Update(
		func(p models.Post) bool { return p.ID == id },
		func(p models.Post) models.Post {
			createdAt := p.CreatedAt
			p = apply(p)
			p.CreatedAt = createdAt
			p.UpdatedAt = time.Now()
			return p
		},
	)
}

// Delete removes the post with the given id
func (r *PostRepository) Delete(_ context.Context, id int64) bool {
	return r.collection.Delete(func(p models.Post) bool {
		return p.ID == id
	})
}

// Count reports the number of stored posts
func (r *PostRepository) Count() int {
	return r.collection.Len()
}
