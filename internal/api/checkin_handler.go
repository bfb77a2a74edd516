package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"challenge-backend-go/internal/core"
	"challenge-backend-go/internal/models"
)

// CheckInHandler handles daily check-in API endpoints.
type CheckInHandler struct {
	checkInService core.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler.
func NewCheckInHandler(cs core.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: cs}
}

// RecordCheckIn handles POST /api/v1/checkins.
func (h *CheckInHandler) RecordCheckIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.RecordCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	result, err := h.checkInService.RecordCheckIn(c.Request.Context(), userID, req.Day, req.Tasks, req.PhotoRef, req.VideoRef)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrDayOutOfRange):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid day", Details: err.Error()})
		case errors.Is(err, core.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User profile not found"})
		default:
			log.Printf("RecordCheckIn Error: userID %s day %d: %v", userID, req.Day, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record check-in", Details: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// TogglePhotoVisibility handles POST /api/v1/checkins/:day/photo-visibility.
// Toggling a day without a check-in succeeds as a no-op.
func (h *CheckInHandler) TogglePhotoVisibility(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid day parameter", Details: err.Error()})
		return
	}

	if err := h.checkInService.TogglePhotoVisibility(c.Request.Context(), userID, day); err != nil {
		log.Printf("TogglePhotoVisibility Error: userID %s day %d: %v", userID, day, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to toggle photo visibility", Details: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
