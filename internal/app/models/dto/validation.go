package dto

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a request binding failure into the wire
// error payload and writes it with status 400. Field names come from the
// json struct tags (registered in bootstrap), so a missing field reports as
// e.g. "donor_name is required". Only the first violation is reported.
func HandleValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, NewErrorResponse(formatValidationError(verrs[0])))
		return
	}

	if errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, NewErrorResponse("Request body is required"))
		return
	}

	c.JSON(http.StatusBadRequest, NewErrorResponse("Invalid request format").WithDetails(err.Error()))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
