package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/middleware"
	"commission-reporting-api/internal/models"
	"commission-reporting-api/internal/repositories"
	"commission-reporting-api/internal/services"
)

const (
	msgInternalError    = "Internal server error"
	msgValidationFailed = "Validation failed"
	msgInvalidBody      = "Invalid request body"
)

// respondSuccess writes a successful envelope.
func respondSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, models.APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// respondError writes a failed envelope.
func respondError(c *gin.Context, status int, message string, errs ...string) {
	c.JSON(status, models.APIResponse{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// handleServiceError maps a service error to a status and envelope.
// Validation and business rule failures are 400, missing records 404 and
// anything else 500 with the detail kept in the log.
func handleServiceError(c *gin.Context, logger *logrus.Logger, err error, operation string) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		respondError(c, http.StatusBadRequest, msgValidationFailed, validationErr.Messages...)
		return
	}

	var ruleErr *services.BusinessRuleError
	if errors.As(err, &ruleErr) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"operation":  operation,
		}).Warn(ruleErr.Message)
		respondError(c, http.StatusBadRequest, ruleErr.Message)
		return
	}

	if repositories.IsNotFound(err) {
		var repoErr *repositories.RepositoryError
		message := "Resource not found"
		if errors.As(err, &repoErr) && repoErr.Message != "" {
			message = repoErr.Message
		}
		respondError(c, http.StatusNotFound, message)
		return
	}

	logger.WithFields(logrus.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"operation":  operation,
		"error":      err.Error(),
	}).Error("Request failed")
	respondError(c, http.StatusInternalServerError, msgInternalError)
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s: must be a positive integer", param))
		return 0, false
	}
	return id, true
}

// optionalInt64Query reads an optional integer query parameter. ok is false
// when a 400 has already been written.
func optionalInt64Query(c *gin.Context, name string) (value *int64, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s: must be an integer", name))
		return nil, false
	}
	return &v, true
}

// optionalIntQuery is optionalInt64Query for int values.
func optionalIntQuery(c *gin.Context, name string) (*int, bool) {
	v, ok := optionalInt64Query(c, name)
	if !ok || v == nil {
		return nil, ok
	}
	i := int(*v)
	return &i, true
}

// optionalDateQuery reads an optional YYYY-MM-DD query parameter.
func optionalDateQuery(c *gin.Context, name string) (*models.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s: expected YYYY-MM-DD", name))
		return nil, false
	}
	return &d, true
}
