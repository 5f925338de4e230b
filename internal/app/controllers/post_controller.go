package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// PostController handles feed post endpoints
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// ListPosts handles GET /api/posts with optional type and author filters.
// Posts are returned newest first.
func (c *PostController) ListPosts(ctx *gin.Context) {
	var filter dto.PostFilter
	_ = ctx.ShouldBindQuery(&filter)

	posts := c.postService.ListPosts(ctx.Request.Context(), filter)

	ctx.JSON(http.StatusOK, dto.PostsListResponse{
		Posts: posts,
		Total: len(posts),
	})
}

// CreatePost handles POST /api/posts
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.postService.CreatePost(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.PostResponse{
		Message: "Post created successfully",
		Post:    post,
	})
}

// GetPost handles GET /api/posts/:id
func (c *PostController) GetPost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	post, err := c.postService.GetPostByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PostResponse{Post: post})
}

// UpdatePost handles PUT /api/posts/:id
func (c *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.postService.UpdatePost(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PostResponse{
		Message: "Post updated successfully",
		Post:    post,
	})
}

// DeletePost handles DELETE /api/posts/:id
func (c *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.postService.DeletePost(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Post deleted successfully"})
}
