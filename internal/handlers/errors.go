package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/checkin/backend/internal/apierror"
	"github.com/JonnyWalker81/checkin/backend/internal/logger"
	"github.com/JonnyWalker81/checkin/backend/internal/models"
	"github.com/JonnyWalker81/checkin/backend/internal/service"
)

// userIDFrom returns the authenticated user id, writing a 401 when absent
func userIDFrom(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return "", false
	}
	return userID, true
}

// writeServiceError translates a service error into a problem response
func writeServiceError(c *gin.Context, err error, msg string) {
	requestID := apierror.GetRequestID(c)
	log := logger.Ctx(c.Request.Context())

	switch {
	case errors.Is(err, service.ErrInvalidUser):
		log.Warn(msg, logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInvalidUserError(requestID))
	case errors.Is(err, service.ErrInvalidDateRange):
		apierror.WriteProblem(c, apierror.NewInvalidDateRangeError(requestID, err.Error()))
	case errors.Is(err, service.ErrInvalidWindow):
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(),
			"Insights are available for weekly, monthly and alltime windows"))
	case errors.Is(err, service.ErrInvalidCheckin):
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(),
			"Scores must be between 1 and 10"))
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, err.Error(),
			"You have already checked in today. Update today's check-in instead."))
	case errors.Is(err, service.ErrCheckinNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "check-in", err.Error()))
	case errors.Is(err, service.ErrForbidden):
		apierror.WriteProblem(c, apierror.NewForbiddenError(requestID))
	case errors.Is(err, service.ErrRecordsUnavailable):
		log.Warn(msg, logger.Err(err))
		apierror.WriteProblem(c, apierror.NewServiceUnavailableError(requestID, apierror.DefaultRetryAfter))
	default:
		log.Error(msg, logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. ok is false
// after a problem response has been written.
func parseDateQuery(c *gin.Context, key string) (d models.Date, present, ok bool) {
	raw := c.Query(key)
	if raw == "" {
		return models.Date{}, false, true
	}

	d, err := models.ParseDate(raw)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{{
			Field:   key,
			Message: "must be a date in YYYY-MM-DD format",
			Code:    "invalid_format",
		}}))
		return models.Date{}, true, false
	}
	return d, true, true
}
