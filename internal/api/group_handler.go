package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"challenge-backend-go/internal/core"
	"challenge-backend-go/internal/models"
)

// GroupHandler handles group membership and feed API endpoints.
type GroupHandler struct {
	groupService core.GroupService
	feedService  core.FeedService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(gs core.GroupService, fs core.FeedService) *GroupHandler {
	return &GroupHandler{groupService: gs, feedService: fs}
}

// CreateGroup handles POST /api/v1/groups.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	code, err := h.groupService.CreateGroup(c.Request.Context(), userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrGroupNameRequired):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Group name cannot be blank"})
		default:
			log.Printf("CreateGroup Error: userID %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create group", Details: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, CreateGroupResponse{Code: code})
}

// JoinGroup handles POST /api/v1/groups/join. An unknown code is not an
// error: the response reports joined=false.
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	joined, err := h.groupService.JoinGroup(c.Request.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidGroupCode):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid group code", Details: err.Error()})
		default:
			log.Printf("JoinGroup Error: userID %s code %s: %v", userID, req.Code, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to join group", Details: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, JoinGroupResponse{Joined: joined})
}

// LeaveGroup handles POST /api/v1/groups/:code/leave.
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.groupService.LeaveGroup(c.Request.Context(), userID, c.Param("code")); err != nil {
		log.Printf("LeaveGroup Error: userID %s code %s: %v", userID, c.Param("code"), err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to leave group", Details: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetGroup handles GET /api/v1/groups/:code, returning the group and its
// resolved member profiles.
func (h *GroupHandler) GetGroup(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	code := c.Param("code")

	group, err := h.groupService.GetGroup(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, core.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Group not found"})
			return
		}
		log.Printf("GetGroup Error: code %s: %v", code, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve group", Details: err.Error()})
		return
	}

	members, err := h.groupService.GetMembers(c.Request.Context(), code)
	if err != nil {
		log.Printf("GetGroup Error: members of code %s: %v", code, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve group members", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, GroupDetailResponse{Group: group, Members: members})
}

// GetGroupFeed handles GET /api/v1/groups/:code/feed, newest entries first.
func (h *GroupHandler) GetGroupFeed(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	code := c.Param("code")

	entries, err := h.feedService.GetGroupFeed(c.Request.Context(), code)
	if err != nil {
		log.Printf("GetGroupFeed Error: code %s: %v", code, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve group feed", Details: err.Error()})
		return
	}

	if entries == nil {
		entries = []*models.FeedEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
