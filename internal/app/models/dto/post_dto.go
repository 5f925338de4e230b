package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// CreatePostRequest carries a new feed post
type CreatePostRequest struct {
	AuthorName  string   `json:"author_name" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	AuthorEmail string   `json:"author_email"`
	AuthorBatch string   `json:"author_batch"`
	PostType    string   `json:"post_type"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

// UpdatePostRequest is a merge-patch over the mutable post fields.
// created_at, likes and comments are not patchable.
type UpdatePostRequest struct {
	Content  *string   `json:"content"`
	PostType *string   `json:"post_type"`
	ImageURL *string   `json:"image_url"`
	Tags     *[]string `json:"tags"`
}

// PostFilter carries the list query parameters
type PostFilter struct {
	Type   string `form:"type"`
	Author string `form:"author"`
}

// PostResponse wraps a single post
type PostResponse struct {
	Message string       `json:"message,omitempty"`
	Post    *models.Post `json:"post"`
}

// PostsListResponse wraps a filtered post list, newest first
type PostsListResponse struct {
	Posts []models.Post `json:"posts"`
	Total int           `json:"total"`
}
