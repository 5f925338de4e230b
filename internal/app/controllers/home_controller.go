package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
)

// HomeController serves the service banner and the health check
type HomeController struct {
	repos *repositories.Repositories
}

// NewHomeController creates a new HomeController
func NewHomeController(repos *repositories.Repositories) *HomeController {
	return &HomeController{
		repos: repos,
	}
}

// Banner handles GET / and lists the route families the API serves
func (c *HomeController) Banner(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.BannerResponse{
		Status:  "Alumni Connect Backend v1.0 - Running",
		Message: "API for Government Engineering College, Gujarat",
		Endpoints: map[string][]string{
			"auth":      {"/api/auth/register", "/api/auth/login"},
			"alumni":    {"/api/alumni", "/api/alumni/<id>"},
			"events":    {"/api/events", "/api/events/<id>"},
			"jobs":      {"/api/jobs", "/api/jobs/<id>"},
			"donations": {"/api/donations", "/api/donations/<id>"},
			"posts":     {"/api/posts", "/api/posts/<id>"},
			"messages":  {"/api/messages"},
		},
	})
}

// Health handles GET /api/health and reports per-collection record counts
func (c *HomeController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now(),
		DataCounts: c.repos.Counts(),
	})
}
