package models

import (
	"time"
)

// DefaultPostType is used when a post does not specify one.
const DefaultPostType = "general"

// PostComment defines a comment on a feed post. No endpoint appends
// comments yet; the slice is always empty.
type PostComment struct {
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// Post defines a social feed post
type Post struct {
	ID          int64         `json:"id" example:"1"`
	AuthorName  string        `json:"author_name" example:"Jane Doe"`
	AuthorEmail string        `json:"author_email"`
	AuthorBatch string        `json:"author_batch"`
	Content     string        `json:"content"`
	PostType    string        `json:"post_type" example:"general"`
	ImageURL    string        `json:"image_url"`
	Likes       int           `json:"likes"` // Always 0; no like endpoint exists
	Comments    []PostComment `json:"comments"`
	Tags        []string      `json:"tags"`
	CreatedAt   time.Time     `json:"created_at"` // Immutable after creation
	UpdatedAt   time.Time     `json:"updated_at"`
}
