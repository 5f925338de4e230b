// Package controllers exposes the HTTP handlers for every route family.
package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
)

// bindJSON decodes the request body into obj. An absent body, a bare null
// or an empty object all count as "no body" and answer 400 before any field
// validation runs. Reports whether the handler may proceed.
func bindJSON(c *gin.Context, obj interface{}) bool {
	var data []byte
	if c.Request.Body != nil {
		var err error
		if data, err = io.ReadAll(c.Request.Body); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Request body is required"))
			return false
		}
	}
	if emptyJSONBody(data) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Request body is required"))
		return false
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(data))
	if err := c.ShouldBindJSON(obj); err != nil {
		dto.HandleValidationError(c, err)
		return false
	}
	return true
}

func emptyJSONBody(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return false
	}
	return len(fields) == 0
}

// parseIDParam reads the :id path parameter. A non-numeric id can only come
// from a URL that no resource route describes, so it reports as an unknown
// endpoint rather than a missing record.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Endpoint not found"))
		return 0, false
	}
	return id, true
}
