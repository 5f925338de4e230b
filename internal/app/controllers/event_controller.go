package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// EventController handles event endpoints
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// ListEvents handles GET /api/events with optional type and status filters
func (c *EventController) ListEvents(ctx *gin.Context) {
	var filter dto.EventFilter
	_ = ctx.ShouldBindQuery(&filter)

	events := c.eventService.ListEvents(ctx.Request.Context(), filter)

	ctx.JSON(http.StatusOK, dto.EventsListResponse{
		Events: events,
		Total:  len(events),
	})
}

// CreateEvent handles POST /api/events
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if !bindJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EventResponse{
		Message: "Event created successfully",
		Event:   event,
	})
}

// GetEvent handles GET /api/events/:id
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.GetEventByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EventResponse{Event: event})
}

// UpdateEvent handles PUT /api/events/:id
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if !bindJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.UpdateEvent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EventResponse{
		Message: "Event updated successfully",
		Event:   event,
	})
}

// DeleteEvent handles DELETE /api/events/:id
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted successfully"})
}
