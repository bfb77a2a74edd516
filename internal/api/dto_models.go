package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"challenge-backend-go/internal/models"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// UserDataResponse bundles a user profile with all of their check-ins.
type UserDataResponse struct {
	User     *models.User      `json:"user"`
	CheckIns []*models.CheckIn `json:"checkIns"`
}

// CreateGroupResponse returns the invite code of a freshly created group.
type CreateGroupResponse struct {
	Code string `json:"code"`
}

// JoinGroupResponse reports whether a join succeeded. A false value means no
// group exists for the submitted code.
type JoinGroupResponse struct {
	Joined bool `json:"joined"`
}

// GroupDetailResponse bundles a group with its resolved member profiles.
type GroupDetailResponse struct {
	Group   *models.Group  `json:"group"`
	Members []*models.User `json:"members"`
}

// ToggleReactionResponse reports whether the reaction is live after a toggle.
type ToggleReactionResponse struct {
	Live bool `json:"live"`
}

// currentUserID pulls the authenticated user's ID out of the Gin context
// (set by the auth middleware). On failure it writes the error response and
// returns false.
func currentUserID(c *gin.Context) (string, bool) {
	rawUserID, exists := c.Get("userID")
	if !exists {
		log.Println("currentUserID: userID not found in context. Auth middleware might not have run or failed.")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: User ID not found in context"})
		return "", false
	}
	userID, ok := rawUserID.(string)
	if !ok || userID == "" {
		log.Printf("currentUserID: userID in context is not a valid string or is empty. Value: %v", rawUserID)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID format in context"})
		return "", false
	}
	return userID, true
}
