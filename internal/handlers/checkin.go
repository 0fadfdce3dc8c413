package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/checkin/backend/internal/apierror"
	"github.com/JonnyWalker81/checkin/backend/internal/models"
	"github.com/JonnyWalker81/checkin/backend/internal/service"
)

// DefaultListDays is the range listed when no from/to is given
const DefaultListDays = 30

type CheckinHandler struct {
	checkinService service.CheckinService
	cal            service.Calendar
}

// NewCheckinHandler creates a new check-in handler
func NewCheckinHandler(checkinService service.CheckinService, cal service.Calendar) *CheckinHandler {
	return &CheckinHandler{
		checkinService: checkinService,
		cal:            cal,
	}
}

// CreateCheckin handles POST /api/v1/checkins
func (h *CheckinHandler) CreateCheckin(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req models.CreateCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.FromBindError(apierror.GetRequestID(c), err))
		return
	}

	checkin, err := h.checkinService.CreateCheckin(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err, "failed to create checkin")
		return
	}

	c.JSON(http.StatusCreated, checkin)
}

// UpdateCheckin handles PATCH /api/v1/checkins/:id
// Only fields present in the body are changed.
func (h *CheckinHandler) UpdateCheckin(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req models.UpdateCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.FromBindError(apierror.GetRequestID(c), err))
		return
	}

	checkin, err := h.checkinService.UpdateCheckin(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err, "failed to update checkin")
		return
	}

	c.JSON(http.StatusOK, checkin)
}

// ListCheckins handles GET /api/v1/checkins?from=&to=
// Either bound defaults relative to today.
func (h *CheckinHandler) ListCheckins(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	from, hasFrom, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, hasTo, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}
	if !hasTo {
		to = h.cal.Today()
	}
	if !hasFrom {
		from = to.AddDays(-(DefaultListDays - 1))
	}

	checkins, err := h.checkinService.GetCheckins(c.Request.Context(), userID, from, to)
	if err != nil {
		writeServiceError(c, err, "failed to list checkins")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":     from,
		"to":       to,
		"checkins": checkins,
		"count":    len(checkins),
	})
}

// GetTodayCheckin handles GET /api/v1/checkins/today
func (h *CheckinHandler) GetTodayCheckin(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	checkin, err := h.checkinService.GetTodayCheckin(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "failed to get today's checkin")
		return
	}
	if checkin == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "check-in", "no check-in recorded today"))
		return
	}

	c.JSON(http.StatusOK, checkin)
}
