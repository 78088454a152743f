package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/response"
)

// uuidParam reads a path parameter that names a stored record. Runs and
// report jobs are keyed by UUID, so any other value is answered with 404
// before it reaches the database.
func uuidParam(c *gin.Context, name, notFound string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, notFound))
		return "", false
	}
	return id, true
}
