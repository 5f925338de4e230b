package services

import (
	"context"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// PostService handles feed post operations
type PostService struct {
	postRepo *repositories.PostRepository
}

// NewPostService creates a new post service instance
func NewPostService(postRepo *repositories.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// CreatePost creates a new feed post with defaults applied
func (s *PostService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*models.Post, error) {
	postType := req.PostType
	if postType == "" {
		postType = models.DefaultPostType
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	post := s.postRepo.Create(ctx, models.Post{
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		AuthorBatch: req.AuthorBatch,
		Content:     req.Content,
		PostType:    postType,
		ImageURL:    req.ImageURL,
		Likes:       0,
		Comments:    []models.PostComment{},
		Tags:        tags,
	})

	return &post, nil
}

// ListPosts returns all posts matching the filter, newest first
func (s *PostService) ListPosts(ctx context.Context, filter dto.PostFilter) []models.Post {
	return s.postRepo.List(ctx, repositories.PostListFilter{
		Type:   filter.Type,
		Author: filter.Author,
	})
}

// GetPostByID retrieves a post by id
func (s *PostService) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	post, ok := s.postRepo.GetByID(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("Post not found")
	}
	return &post, nil
}

// UpdatePost merge-patches a post. Authorship, likes and comments stay
// as created.
func (s *PostService) UpdatePost(ctx context.Context, id int64, req *dto.UpdatePostRequest) (*models.Post, error) {
	updated, ok := s.postRepo.Update(ctx, id, func(p models.Post) models.Post {
		if req.Content != nil {
			p.Content = *req.Content
		}
		if req.PostType != nil {
			p.PostType = *req.PostType
		}
		if req.ImageURL != nil {
			p.ImageURL = *req.ImageURL
		}
		if req.Tags != nil {
			p.Tags = *req.Tags
		}
		return p
	})
	if !ok {
		return nil, apperrors.NewNotFoundError("Post not found")
	}

	return &updated, nil
}

// DeletePost removes a post irreversibly
func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	if !s.postRepo.Delete(ctx, id) {
		return apperrors.NewNotFoundError("Post not found")
	}
	return nil
}
