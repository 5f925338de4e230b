package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// MessageController handles direct message endpoints. Messages have no
// id-addressed routes; they are listed per participant only.
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// ListMessages handles GET /api/messages. The user_email query parameter is
// required; an optional type parameter narrows the result.
func (c *MessageController) ListMessages(ctx *gin.Context) {
	var filter dto.MessageFilter
	_ = ctx.ShouldBindQuery(&filter)

	messages, err := c.messageService.ListMessages(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessagesListResponse{
		Messages: messages,
		Total:    len(messages),
	})
}

// SendMessage handles POST /api/messages
func (c *MessageController) SendMessage(ctx *gin.Context) {
	var req dto.CreateMessageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	message, err := c.messageService.SendMessage(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageSentResponse{
		Message:     "Message sent successfully",
		MessageData: message,
	})
}
