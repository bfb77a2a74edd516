package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"challenge-backend-go/internal/config"
	"challenge-backend-go/internal/core"
	"challenge-backend-go/internal/db"
	"challenge-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes. Global middleware (logging,
// recovery, CORS) is expected to be applied to the router before this is
// called, typically in main.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	userService core.UserService,
	checkInService core.CheckInService,
	groupService core.GroupService,
	reactionService core.ReactionService,
	feedService core.FeedService,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized. Routes will not be set up.")
		panic("Firebase Auth client is nil during route setup")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	userHandler := NewUserHandler(userService)
	checkInHandler := NewCheckInHandler(checkInService)
	groupHandler := NewGroupHandler(groupService, feedService)
	reactionHandler := NewReactionHandler(reactionService)

	apiV1 := router.Group("/api/v1")
	{
		usersGroup := apiV1.Group("/users", authMW.VerifyToken())
		{
			// Called after client-side Firebase login/signup to ensure a
			// backend profile exists.
			usersGroup.POST("/initialize", userHandler.InitializeProfile)
			usersGroup.GET("/me", userHandler.GetCurrentUser)
			usersGroup.GET("/me/data", userHandler.GetCurrentUserData)
			usersGroup.GET("/:userId/checkins/:day/reactions", reactionHandler.GetReactions)
		}

		checkInsGroup := apiV1.Group("/checkins", authMW.VerifyToken())
		{
			checkInsGroup.POST("", checkInHandler.RecordCheckIn)
			checkInsGroup.POST("/:day/photo-visibility", checkInHandler.TogglePhotoVisibility)
		}

		groupsGroup := apiV1.Group("/groups", authMW.VerifyToken())
		{
			groupsGroup.POST("", groupHandler.CreateGroup)
			groupsGroup.POST("/join", groupHandler.JoinGroup)
			groupsGroup.POST("/:code/leave", groupHandler.LeaveGroup)
			groupsGroup.GET("/:code", groupHandler.GetGroup)
			groupsGroup.GET("/:code/feed", groupHandler.GetGroupFeed)
		}

		reactionsGroup := apiV1.Group("/reactions", authMW.VerifyToken())
		{
			reactionsGroup.POST("", reactionHandler.ToggleReaction)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
