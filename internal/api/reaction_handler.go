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

// ReactionHandler handles emoji reaction API endpoints.
type ReactionHandler struct {
	reactionService core.ReactionService
}

// NewReactionHandler creates a new ReactionHandler.
func NewReactionHandler(rs core.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionService: rs}
}

// ToggleReaction handles POST /api/v1/reactions.
func (h *ReactionHandler) ToggleReaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ToggleReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	live, err := h.reactionService.ToggleReaction(c.Request.Context(), userID, req.TargetUserID, req.Day, req.Emoji)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmojiRequired), errors.Is(err, core.ErrDayOutOfRange):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid reaction", Details: err.Error()})
		default:
			log.Printf("ToggleReaction Error: userID %s target %s day %d: %v", userID, req.TargetUserID, req.Day, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to toggle reaction", Details: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ToggleReactionResponse{Live: live})
}

// GetReactions handles GET /api/v1/users/:userId/checkins/:day/reactions,
// listing the live reactions on one user's check-in.
func (h *ReactionHandler) GetReactions(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	targetID := c.Param("userId")
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid day parameter", Details: err.Error()})
		return
	}

	reactions, err := h.reactionService.GetReactions(c.Request.Context(), targetID, day)
	if err != nil {
		log.Printf("GetReactions Error: target %s day %d: %v", targetID, day, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve reactions", Details: err.Error()})
		return
	}

	if reactions == nil {
		reactions = []*models.Reaction{}
	}
	c.JSON(http.StatusOK, reactions)
}
