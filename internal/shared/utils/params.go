package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
)

// ParseUintParam parses a numeric entity ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "client_id").
// entityName is used in error messages (e.g., "client", "subscription").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ParsePagination extracts page/page_size query parameters with defaults.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
