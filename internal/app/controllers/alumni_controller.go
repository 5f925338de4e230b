package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// AlumniController handles alumni profile endpoints
type AlumniController struct {
	alumniService *services.AlumniService
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService *services.AlumniService) *AlumniController {
	return &AlumniController{
		alumniService: alumniService,
	}
}

// ListAlumni handles GET /api/alumni with optional search, batch,
// department and company filters
func (c *AlumniController) ListAlumni(ctx *gin.Context) {
	var filter dto.AlumniFilter
	_ = ctx.ShouldBindQuery(&filter)

	alumni := c.alumniService.ListAlumni(ctx.Request.Context(), filter)

	ctx.JSON(http.StatusOK, dto.AlumniListResponse{
		Alumni: alumni,
		Total:  len(alumni),
	})
}

// CreateAlumnus handles POST /api/alumni
func (c *AlumniController) CreateAlumnus(ctx *gin.Context) {
	var req dto.CreateAlumnusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	alumnus, err := c.alumniService.CreateAlumnus(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AlumnusResponse{
		Message: "Alumni profile created successfully",
		Alumnus: alumnus,
	})
}

// GetAlumnus handles GET /api/alumni/:id
func (c *AlumniController) GetAlumnus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	alumnus, err := c.alumniService.GetAlumnusByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlumnusResponse{Alumnus: alumnus})
}

// UpdateAlumnus handles PUT /api/alumni/:id
func (c *AlumniController) UpdateAlumnus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAlumnusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	alumnus, err := c.alumniService.UpdateAlumnus(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlumnusResponse{
		Message: "Alumni profile updated successfully",
		Alumnus: alumnus,
	})
}

// DeleteAlumnus handles DELETE /api/alumni/:id
func (c *AlumniController) DeleteAlumnus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.alumniService.DeleteAlumnus(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Alumni profile deleted successfully"})
}
