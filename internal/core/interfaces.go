package core

import (
	"context"

	"challenge-backend-go/internal/models"
)

// UserService defines the interface for user profile operations.
type UserService interface {
	// GetOrCreate retrieves a user by ID, creating a fresh day-zero profile
	// if none exists. The bool reports whether a profile was created.
	GetOrCreate(ctx context.Context, userID, email, displayName, timezone string) (*models.User, bool, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// GetUserData returns the user together with all of their check-ins.
	GetUserData(ctx context.Context, userID string) (*models.User, []*models.CheckIn, error)
}

// CheckInService defines the interface for daily submissions.
type CheckInService interface {
	RecordCheckIn(ctx context.Context, userID string, day int, tasks models.TaskFlags, photoRef, videoRef string) (*CheckInResult, error)
	// TogglePhotoVisibility flips the photoIsPublic flag of one day's
	// check-in. A missing check-in is a silent no-op.
	TogglePhotoVisibility(ctx context.Context, userID string, day int) error
}

// GroupService defines the interface for group membership operations.
type GroupService interface {
	CreateGroup(ctx context.Context, userID, name string) (string, error)
	// JoinGroup reports false, without mutating anything, when no group
	// exists for the code.
	JoinGroup(ctx context.Context, userID, code string) (bool, error)
	LeaveGroup(ctx context.Context, userID, code string) error
	GetGroup(ctx context.Context, code string) (*models.Group, error)
	// GetMembers resolves the member user profiles of a group.
	GetMembers(ctx context.Context, code string) ([]*models.User, error)
}

// ReactionService defines the interface for emoji reactions on check-ins.
type ReactionService interface {
	// ToggleReaction reports whether the reaction is live after the toggle.
	ToggleReaction(ctx context.Context, reactorID, targetID string, day int, emoji string) (bool, error)
	GetReactions(ctx context.Context, targetID string, day int) ([]*models.Reaction, error)
}

// FeedService defines the interface for group activity timelines.
type FeedService interface {
	// GetGroupFeed returns the group's feed entries newest first.
	GetGroupFeed(ctx context.Context, code string) ([]*models.FeedEntry, error)
}
