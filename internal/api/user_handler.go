package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"challenge-backend-go/internal/core"
	"challenge-backend-go/internal/models"
)

// UserHandler handles user profile API endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// InitializeProfile handles POST /api/v1/users/initialize. Clients call it
// after a Firebase sign-in to ensure a backend profile exists; identity comes
// from the verified token, the body may carry the client's timezone.
func (h *UserHandler) InitializeProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	email := c.GetString("userEmail")
	displayName := c.GetString("userDisplayName")

	var req models.InitializeProfileRequest
	// Body is optional; ignore bind errors from an empty body.
	_ = c.ShouldBindJSON(&req)

	user, created, err := h.userService.GetOrCreate(c.Request.Context(), userID, email, displayName, req.Timezone)
	if err != nil {
		log.Printf("InitializeProfile Error: GetOrCreate failed for userID %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize user profile", Details: err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, user)
	} else {
		c.JSON(http.StatusOK, user)
	}
}

// GetCurrentUser handles GET /api/v1/users/me.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User profile not found"})
			return
		}
		log.Printf("GetCurrentUser Error: GetByID failed for userID %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve user profile", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetCurrentUserData handles GET /api/v1/users/me/data, returning the profile
// together with every recorded check-in (dashboard and calendar payload).
func (h *UserHandler) GetCurrentUserData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, checkIns, err := h.userService.GetUserData(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User profile not found"})
			return
		}
		log.Printf("GetCurrentUserData Error: GetUserData failed for userID %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve user data", Details: err.Error()})
		return
	}

	if checkIns == nil {
		checkIns = []*models.CheckIn{}
	}
	c.JSON(http.StatusOK, UserDataResponse{User: user, CheckIns: checkIns})
}
