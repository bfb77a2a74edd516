package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"challenge-backend-go/internal/api"
	"challenge-backend-go/internal/config"
	"challenge-backend-go/internal/core"
	"challenge-backend-go/internal/db"
	"challenge-backend-go/internal/middleware"
)

func main() {
	// --- Logger ---
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// --- Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}

	if strings.EqualFold(appConfig.GinMode, "release") {
		// Swap to a production logger once we know the mode.
		if prodLogger, perr := zap.NewProduction(); perr == nil {
			zapLogger = prodLogger
			defer zapLogger.Sync()
		}
	}

	// --- Firebase Admin SDK (Firestore + Auth) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firestore and Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized successfully.")

	firestoreClient := db.GetFirestoreClient()
	if firestoreClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firestore client is nil after initialization.")
	}
	defer firestoreClient.Close()

	// --- Repositories ---
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	checkInRepo := db.NewFirestoreCheckInRepository(firestoreClient)
	groupRepo := db.NewFirestoreGroupRepository(firestoreClient)
	feedRepo := db.NewFirestoreFeedRepository(firestoreClient)
	reactionRepo := db.NewFirestoreReactionRepository(firestoreClient)
	zapLogger.Info("Repositories initialized successfully.")

	// --- Services ---
	userService := core.NewUserService(userRepo, checkInRepo)
	checkInService := core.NewCheckInService(checkInRepo, userRepo, feedRepo)
	groupService := core.NewGroupService(groupRepo, userRepo)
	reactionService := core.NewReactionService(reactionRepo)
	feedService := core.NewFeedService(feedRepo)
	zapLogger.Info("Core services initialized successfully.")

	// --- Gin engine ---
	if strings.EqualFold(appConfig.GinMode, "release") {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// Middleware order matters: log first, recover next, then CORS.
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured.")
	}

	api.SetupRoutes(
		router,
		appConfig,
		zapLogger,
		userService,
		checkInService,
		groupService,
		reactionService,
		feedService,
	)

	// --- HTTP server with graceful shutdown ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
